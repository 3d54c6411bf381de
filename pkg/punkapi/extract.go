package punkapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

const nameKey = "name"

// Extract parses data as JSON and returns the name of every beer record in it.
// An array root yields names in array order, an object root yields its own
// name, and any other root yields an empty result.
func Extract(data []byte) ([]string, error) {
	if !json.Valid(data) {
		var probe any
		return nil, &ParseError{Err: json.Unmarshal(data, &probe)}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, &ParseError{Err: err}
	}

	switch node := root.(type) {
	case []any:
		names := make([]string, 0, len(node))
		for i, elem := range node {
			name, err := recordName(i, elem)
			if err != nil {
				return nil, err
			}
			names = append(names, name)
		}
		return names, nil
	case map[string]any:
		name, err := recordName(0, node)
		if err != nil {
			return nil, err
		}
		return []string{name}, nil
	default:
		return []string{}, nil
	}
}

func recordName(idx int, node any) (string, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return "", &RecordError{Index: idx, Msg: fmt.Sprintf("expected object, got %s", kindOf(node))}
	}
	raw, ok := obj[nameKey]
	if !ok {
		return "", &RecordError{Index: idx, Msg: `missing "name" field`}
	}
	name, ok := raw.(string)
	if !ok {
		return "", &RecordError{Index: idx, Msg: fmt.Sprintf(`"name" is %s, not a string`, kindOf(raw))}
	}
	return name, nil
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
