// Package rendering renders JSON Resume documents into self-contained HTML through interchangeable themes.
package rendering

import (
	"fmt"
	"strings"
)

// TemplateError represents an error parsing or executing a theme template
type TemplateError struct {
	Theme   string
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	prefix := "template error"
	if e.Theme != "" {
		prefix = fmt.Sprintf("template error in theme %s", e.Theme)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// RenderError represents a general rendering failure
type RenderError struct {
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("render error: %s", e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

// UnknownThemeError is returned when a theme ID is not registered
type UnknownThemeError struct {
	ID        string
	Available []string
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("theme %q not found. Available themes: %s", e.ID, strings.Join(e.Available, ", "))
}
