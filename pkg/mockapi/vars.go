package mockapi

import "encoding/json"

// stringVar returns the string under key, or "".
func stringVar(vars map[string]any, key string) string {
	s, _ := vars[key].(string)
	return s
}

// stringsVar returns the string list under key. JSON decoding hands lists
// over as []any, so both forms are accepted.
func stringsVar(vars map[string]any, key string) []string {
	switch v := vars[key].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// nestedStringVar returns the string under an inner key of a nested
// object, or "".
func nestedStringVar(vars map[string]any, key, inner string) string {
	obj, _ := vars[key].(map[string]any)
	if obj == nil {
		return ""
	}
	s, _ := obj[inner].(string)
	return s
}

// unmarshalVar decodes the value under key into out via a JSON round trip,
// converting loosely-typed variable maps into their wire-shaped structs. A
// missing key leaves out untouched.
func unmarshalVar(vars map[string]any, key string, out any) error {
	raw, ok := vars[key]
	if !ok || raw == nil {
		return nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
