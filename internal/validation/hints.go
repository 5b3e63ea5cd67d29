package validation

import "strings"

// SchemaReferenceURL is printed after a failed run.
const SchemaReferenceURL = "https://github.com/jsonresume/resume-schema/blob/master/schema.json"

// KindDisallowedProperty marks errors produced by the allow-list.
const KindDisallowedProperty = "disallowed_property"

const hintDisallowedProperty = "Please remove it or check if you misspelled a valid property name."

var (
	dateHints = []string{
		"Dates must be in ISO 8601 format: YYYY-MM-DD, YYYY-MM, or YYYY",
		`Examples: "2023-06", "2023", "2023-06-15"`,
	}
	uriHints = []string{
		`URLs must be valid URIs (e.g., "https://example.com")`,
		"Empty strings are not valid. Use a proper URL or remove the field.",
	}
)

// SchemaHints returns extra guidance for common schema errors: malformed dates
// and invalid URLs. It returns nil when there is nothing useful to add.
func SchemaHints(path, kind, message string) []string {
	switch kind {
	case "pattern":
		if strings.Contains(path, "Date") {
			return dateHints
		}
	case "format":
		if strings.Contains(message, "uri") {
			return uriHints
		}
	}
	return nil
}
