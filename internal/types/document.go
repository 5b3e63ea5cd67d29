package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-yaml"
)

// DocumentErrorKind classifies why a résumé document could not be loaded
type DocumentErrorKind int

const (
	// KindRead means the file could not be read (missing, permissions)
	KindRead DocumentErrorKind = iota
	// KindParse means the file content is not valid JSON (or YAML)
	KindParse
)

// DocumentError represents a failure to read or parse a résumé document
type DocumentError struct {
	Path    string
	Kind    DocumentErrorKind
	Message string
	Cause   error
}

func (e *DocumentError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("document %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("document %s: %s", e.Path, e.Message)
}

func (e *DocumentError) Unwrap() error {
	return e.Cause
}

// LoadDocument reads a résumé file and returns its content as JSON bytes.
// Files ending in .yaml or .yml are converted to JSON.
func LoadDocument(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &DocumentError{Path: path, Kind: KindRead, Message: "failed to read file", Cause: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		converted, err := yaml.YAMLToJSON(data)
		if err != nil {
			return nil, &DocumentError{Path: path, Kind: KindParse, Message: "invalid YAML", Cause: err}
		}
		return converted, nil
	default:
		return data, nil
	}
}

// LoadResume reads and decodes a résumé file into a Resume.
func LoadResume(path string) (*Resume, error) {
	data, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}

	var resume Resume
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, &DocumentError{Path: path, Kind: KindParse, Message: "invalid JSON", Cause: err}
	}
	return &resume, nil
}

// Object is a JSON object that remembers the order its keys appeared in.
type Object struct {
	Keys   []string
	Values map[string]any
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (any, bool) {
	v, ok := o.Values[key]
	return v, ok
}

// Len returns the number of keys in the object.
func (o *Object) Len() int {
	return len(o.Keys)
}

// AsObject returns value as an *Object. A map[string]any is wrapped with its keys
// in sorted order. Any other value, including nil, reports false.
func AsObject(value any) (*Object, bool) {
	switch obj := value.(type) {
	case *Object:
		return obj, obj != nil
	case map[string]any:
		if obj == nil {
			return nil, false
		}
		keys := make([]string, 0, len(obj))
		for k := range obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return &Object{Keys: keys, Values: obj}, true
	default:
		return nil, false
	}
}

// DecodeRaw decodes JSON into a generic tree where objects are *Object
// (document key order preserved), arrays are []any and numbers are json.Number.
func DecodeRaw(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := &Object{Values: make(map[string]any)}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("object key is %T, not string", keyTok)
			}
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			// Duplicate keys keep their first position and the last value, like JSON.parse.
			if _, seen := obj.Values[key]; !seen {
				obj.Keys = append(obj.Keys, key)
			}
			obj.Values[key] = value
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil
	case '[':
		arr := []any{}
		for dec.More() {
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}

// LoadRaw reads a résumé file and decodes it with DecodeRaw.
func LoadRaw(path string) (any, error) {
	data, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	v, err := DecodeRaw(data)
	if err != nil {
		return nil, &DocumentError{Path: path, Kind: KindParse, Message: "invalid JSON", Cause: err}
	}
	return v, nil
}
