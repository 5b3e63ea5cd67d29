// Package completeness lists résumé fields that are still blank.
package completeness

import (
	"strconv"

	"github.com/jonathan/resume-themes/internal/types"
)

// EmptyArraySuffix is appended to the path of an empty array.
const EmptyArraySuffix = " (empty array)"

// EmptyFields returns, depth first, the path of every empty string property and
// every empty array in doc. Strings inside arrays are not reported.
func EmptyFields(doc any) []string {
	fields := []string{}
	collect(doc, "", &fields)
	return fields
}

func collect(value any, path string, out *[]string) {
	if obj, ok := types.AsObject(value); ok {
		for _, key := range obj.Keys {
			childPath := key
			if path != "" {
				childPath = path + "." + key
			}
			switch v := obj.Values[key].(type) {
			case string:
				if v == "" {
					*out = append(*out, childPath)
				}
			default:
				collect(v, childPath, out)
			}
		}
		return
	}

	items, ok := value.([]any)
	if !ok {
		return
	}
	if len(items) == 0 {
		*out = append(*out, path+EmptyArraySuffix)
		return
	}
	for i, item := range items {
		collect(item, path+"["+strconv.Itoa(i)+"]", out)
	}
}
