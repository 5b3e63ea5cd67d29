package validation

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-themes/internal/allowlist"
	"github.com/jonathan/resume-themes/internal/schemas"
	"github.com/jonathan/resume-themes/internal/types"
)

// DefaultResumeFile is validated when no file is given.
const DefaultResumeFile = "resume-base.json"

// SchemaValidator validates a résumé file against the JSON Resume schema.
// It returns nil for a conforming document, *schemas.ValidationError when the
// document has schema violations, and any other error when validation could not run.
type SchemaValidator interface {
	Validate(path string) error
}

// ValidationError is one problem found in a résumé file
type ValidationError struct {
	Path     string   `json:"path"`
	Property *string  `json:"property"`
	Message  string   `json:"message"`
	Kind     string   `json:"kind,omitempty"`
	Hints    []string `json:"hints,omitempty"`
}

// IsDisallowedProperty reports whether the error comes from the allow-list.
func (e ValidationError) IsDisallowedProperty() bool {
	return e.Property != nil
}

// FileReport holds every error found in one file, allow-list errors first.
type FileReport struct {
	File   string            `json:"file"`
	Errors []ValidationError `json:"errors"`
}

// Valid reports whether the file has no errors.
func (r *FileReport) Valid() bool {
	return len(r.Errors) == 0
}

// PropertyErrors returns the number of disallowed-property errors.
func (r *FileReport) PropertyErrors() int {
	n := 0
	for _, e := range r.Errors {
		if e.IsDisallowedProperty() {
			n++
		}
	}
	return n
}

// RunReport is the outcome of validating several files, in input order
type RunReport struct {
	RunID uuid.UUID     `json:"run_id"`
	Files []*FileReport `json:"files"`
}

// TotalErrors returns the number of errors across all files.
func (r *RunReport) TotalErrors() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Errors)
	}
	return n
}

// FailedFiles returns the number of files with at least one error.
func (r *RunReport) FailedFiles() int {
	n := 0
	for _, f := range r.Files {
		if !f.Valid() {
			n++
		}
	}
	return n
}

// Valid reports whether every file validated.
func (r *RunReport) Valid() bool {
	return r.TotalErrors() == 0
}

// Err returns a *FailedError when the run has errors, nil otherwise.
func (r *RunReport) Err() error {
	if r.Valid() {
		return nil
	}
	return &FailedError{Files: r.FailedFiles(), Errors: r.TotalErrors()}
}

// Validator runs the allow-list check and the schema validator on résumé files
type Validator struct {
	Schema SchemaValidator
	// RestrictPaths rejects paths that are absolute, contain "..", or are not .json files.
	RestrictPaths bool
}

// New returns a Validator backed by the embedded JSON Resume schema.
func New() *Validator {
	return &Validator{Schema: schemas.NewResumeValidator()}
}

// ValidateFile validates one résumé file.
//
// The allow-list check always runs before the schema validator. Schema violations are
// appended to the report; any other validator failure is returned as the error and
// no report is produced.
func (v *Validator) ValidateFile(path string) (*FileReport, error) {
	if v.RestrictPaths {
		if err := CheckResumePath(path); err != nil {
			return nil, err
		}
	}

	doc, err := types.LoadRaw(path)
	if err != nil {
		return nil, err
	}

	report := &FileReport{File: path, Errors: []ValidationError{}}
	for _, violation := range allowlist.Check(doc) {
		property := violation.Property
		report.Errors = append(report.Errors, ValidationError{
			Path:     violation.Path,
			Property: &property,
			Message:  violation.Message(),
			Kind:     KindDisallowedProperty,
			Hints:    []string{hintDisallowedProperty},
		})
	}

	if v.Schema == nil {
		return report, nil
	}

	if err := v.Schema.Validate(path); err != nil {
		var schemaErr *schemas.ValidationError
		if !errors.As(err, &schemaErr) {
			return nil, err
		}
		for _, fe := range schemaErr.Errors {
			fieldPath := fe.Field
			if fieldPath == "" {
				fieldPath = allowlist.RootPath
			}
			report.Errors = append(report.Errors, ValidationError{
				Path:    fieldPath,
				Message: fe.Message,
				Kind:    fe.Type,
				Hints:   SchemaHints(fieldPath, fe.Type, fe.Message),
			})
		}
	}

	return report, nil
}

// ValidateFiles validates each file in order. The first structural failure
// (unreadable file, malformed JSON, validator crash) stops the run and is returned
// together with the reports gathered so far.
func (v *Validator) ValidateFiles(paths []string) (*RunReport, error) {
	run := &RunReport{RunID: uuid.New(), Files: make([]*FileReport, 0, len(paths))}
	for _, path := range paths {
		report, err := v.ValidateFile(path)
		if err != nil {
			return run, fmt.Errorf("failed to validate %s: %w", path, err)
		}
		run.Files = append(run.Files, report)
	}
	return run, nil
}

// CheckResumePath applies the CI guard on résumé paths: a relative .json file
// that does not climb out of the working directory.
func CheckResumePath(path string) error {
	switch {
	case !strings.HasSuffix(path, ".json"):
		return &PathError{Path: path, Message: "must be a JSON file"}
	case strings.Contains(path, ".."):
		return &PathError{Path: path, Message: "must not contain '..'"}
	case filepath.IsAbs(path) || strings.HasPrefix(path, "/"):
		return &PathError{Path: path, Message: "must be relative to the current directory"}
	}
	return nil
}
