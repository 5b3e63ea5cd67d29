// Package validation combines the property allow-list with JSON Schema validation of résumé files.
package validation

import "fmt"

// Error represents a general validation error
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("validation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// PathError is returned when a résumé path is rejected before it is read
type PathError struct {
	Path    string
	Message string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid resume file path %s: %s", e.Path, e.Message)
}

// FailedError is returned once a run has reported schema or property violations.
// The violations themselves are in the RunReport; this only carries the count.
type FailedError struct {
	Files  int
	Errors int
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("resume validation failed with %d error(s) in %d file(s)", e.Errors, e.Files)
}
