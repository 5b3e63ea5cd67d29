package allowlist

import (
	"fmt"
	"strconv"

	"github.com/jonathan/resume-themes/internal/types"
)

// RootPath is the location reported for properties of the top-level object.
const RootPath = "root"

// Violation is a property that is not permitted at its location
type Violation struct {
	Path     string      `json:"path"`
	Property string      `json:"property"`
	Section  SectionKind `json:"-"`
}

// Message returns the human-readable description of the violation.
func (v Violation) Message() string {
	return fmt.Sprintf("Invalid property %q found at %s. This property is not part of the JSON Resume schema.", v.Property, v.Path)
}

// Check walks a decoded résumé from the root and returns every disallowed property,
// in depth-first document order. The result is empty (never nil) when nothing is flagged.
func Check(doc any) []Violation {
	return CheckAt(doc, RootPath, Root)
}

// CheckAt checks value as an object of section kind located at path.
//
// Objects may be *types.Object (keys visited in document order) or map[string]any
// (keys visited in sorted order). Anything else, including nil and arrays, yields no
// violations: arrays are only entered through the children table.
func CheckAt(value any, path string, kind SectionKind) []Violation {
	violations := []Violation{}
	walk(value, path, kind, &violations)
	return violations
}

func walk(value any, path string, kind SectionKind, out *[]Violation) {
	obj, ok := types.AsObject(value)
	if !ok {
		return
	}

	for _, key := range obj.Keys {
		if !kind.Allows(key) {
			*out = append(*out, Violation{Path: path, Property: key, Section: kind})
		}
	}

	for _, c := range children[kind] {
		v, present := obj.Get(c.Key)
		if !present {
			continue
		}

		childPath := c.Key
		if kind != Root {
			childPath = path + "." + c.Key
		}

		if !c.Array {
			walk(v, childPath, c.Kind, out)
			continue
		}

		items, isArray := v.([]any)
		if !isArray {
			continue
		}
		for i, item := range items {
			walk(item, childPath+"["+strconv.Itoa(i)+"]", c.Kind, out)
		}
	}
}
