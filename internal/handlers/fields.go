package handlers

import (
	"encoding/json"
	"strconv"
)

// Loosely typed body fields. JSON numbers are decoded as json.Number so that
// integer fields can be told apart from floats and strings.

func integerField(v any) (int64, bool) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	i, err := strconv.ParseInt(n.String(), 10, 64)
	if err != nil || i == 0 {
		return 0, false
	}
	return i, true
}

func stringField(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok && s != ""
}

// presentField reports whether a required value was given. null, "", 0,
// false and empty objects or arrays count as missing.
func presentField(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case bool:
		return t
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	return true
}

// textField renders a scalar value as column text. null stays nil; objects
// and arrays are not accepted.
func textField(v any) (*string, bool) {
	var s string
	switch t := v.(type) {
	case nil:
		return nil, true
	case string:
		s = t
	case json.Number:
		s = t.String()
	case bool:
		s = strconv.FormatBool(t)
	default:
		return nil, false
	}
	return &s, true
}
