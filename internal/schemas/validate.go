// Package schemas provides JSON Schema validation for résumé documents.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jonathan/resume-themes/internal/types"
	rootschemas "github.com/jonathan/resume-themes/schemas"
	"github.com/xeipuuv/gojsonschema"
)

// RootField is the field reported for errors on the document itself.
const RootField = "root"

// ResolveSchemaPath attempts to find a schema file by trying multiple common path resolutions.
// It tries paths relative to the current working directory, then paths relative to likely repo root locations.
// Returns the first path that exists, or empty string if none found.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}

	return ""
}

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string // dotted/indexed location, e.g. work[1].endDate
	Type    string // gojsonschema error type, e.g. "pattern", "format", "required"
	Message string
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateJSON validates a JSON file against a JSON Schema file
func ValidateJSON(schemaPath, jsonPath string) error {
	schemaAbsPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to resolve schema path: %w", err)
	}

	jsonAbsPath, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}

	if _, err := os.Stat(schemaAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("schema file not found: %s", schemaAbsPath)
	}

	if _, err := os.Stat(jsonAbsPath); os.IsNotExist(err) {
		return fmt.Errorf("JSON file not found: %s", jsonAbsPath)
	}

	schemaLoader := gojsonschema.NewReferenceLoader("file://" + schemaAbsPath)
	documentLoader := gojsonschema.NewReferenceLoader("file://" + jsonAbsPath)

	return validate(schemaLoader, documentLoader, schemaAbsPath)
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	return validate(
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewStringLoader(jsonContent),
		"(string schema)",
	)
}

func validate(schemaLoader, documentLoader gojsonschema.JSONLoader, schemaName string) error {
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaName,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	return fromResult(result)
}

func fromResult(result *gojsonschema.Result) error {
	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   NormalizeField(desc.Field()),
			Type:    desc.Type(),
			Message: desc.Description(),
		})
	}

	return validationErr
}

// NormalizeField converts a gojsonschema field ("work.0.startDate", "(root)") into
// the dotted/indexed form used in reports ("work[0].startDate", "root").
func NormalizeField(field string) string {
	if field == "" || field == "(root)" {
		return RootField
	}

	parts := strings.Split(field, ".")
	var sb strings.Builder
	for i, part := range parts {
		if _, err := strconv.Atoi(part); err == nil && i > 0 {
			sb.WriteString("[" + part + "]")
			continue
		}
		if i > 0 {
			sb.WriteString(".")
		}
		sb.WriteString(part)
	}
	return sb.String()
}

// ResumeValidator validates résumé files against the embedded JSON Resume schema.
// Validate returns nil when the document conforms, *ValidationError for schema
// violations and any other error when the document could not be validated at all.
type ResumeValidator struct {
	// Schema overrides the embedded schema when set.
	Schema []byte
}

// NewResumeValidator returns a validator using the embedded JSON Resume schema.
func NewResumeValidator() *ResumeValidator {
	return &ResumeValidator{Schema: rootschemas.ResumeSchema}
}

// Validate validates the résumé file at path.
func (v *ResumeValidator) Validate(path string) error {
	data, err := types.LoadDocument(path)
	if err != nil {
		return err
	}

	schemaBytes := v.Schema
	if len(schemaBytes) == 0 {
		schemaBytes = rootschemas.ResumeSchema
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaBytes))
	if err != nil {
		return &SchemaLoadError{
			Path:    rootschemas.ResumeSchemaFile,
			Message: "invalid résumé schema",
			Cause:   err,
		}
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return &types.DocumentError{
			Path:    path,
			Kind:    types.KindParse,
			Message: "invalid JSON",
			Cause:   err,
		}
	}
	return fromResult(result)
}
