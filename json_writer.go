package pool

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append adds a new key-value pair to the JSON object. The value is marshaled
// to JSON using `json.Marshal`.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}

	valBytes, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal value for key %q: %w", key, err)
		return w
	}
	keyBytes, _ := json.Marshal(key)

	w.Write(keyBytes)
	w.WriteString(":")
	w.Write(valBytes)
	w.WriteString(",")
	return w
}

// MarshalJSON finalizes the JSON object construction, wraps the content in
// braces, and returns the complete JSON byte slice. It satisfies the
// `json.Marshaler` interface.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}

	content := bytes.TrimSuffix(w.Bytes(), []byte(","))
	final := make([]byte, 0, len(content)+2)
	final = append(final, '{')
	final = append(final, content...)
	final = append(final, '}')

	return final, nil
}

// jsonObjectReader reads a JSON object while keeping the order of its keys.
type jsonObjectReader struct {
	path   string // location in the document, for error messages
	keys   []string
	fields map[string]json.RawMessage
}

// readObject parses raw as a JSON object.
func readObject(path string, raw json.RawMessage) (*jsonObjectReader, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	t, err := dec.Token()
	if err != nil {
		return nil, formatErrorf(path, "not a correct json: %w", err)
	}
	if d, ok := t.(json.Delim); !ok || d != '{' {
		return nil, formatErrorf(path, "must be of type 'object'")
	}
	r := &jsonObjectReader{path: path, fields: make(map[string]json.RawMessage)}
	for dec.More() {
		t, err := dec.Token()
		if err != nil {
			return nil, formatErrorf(path, "not a correct json: %w", err)
		}
		key := t.(string) // object keys are always strings
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, formatErrorf(path, "not a correct json: %w", err)
		}
		if _, dup := r.fields[key]; !dup {
			r.keys = append(r.keys, key)
		}
		r.fields[key] = value
	}
	if _, err := dec.Token(); err != nil {
		return nil, formatErrorf(path, "not a correct json: %w", err)
	}
	return r, nil
}

func (r *jsonObjectReader) at(key string) string {
	if r.path == "" {
		return key
	}
	return r.path + "." + key
}

// property returns the raw value of a required key.
func (r *jsonObjectReader) property(key string) (json.RawMessage, error) {
	v, ok := r.fields[key]
	if !ok {
		return nil, formatErrorf(r.path, "missing the property %q", key)
	}
	return v, nil
}

// String reads a required string property.
func (r *jsonObjectReader) String(key string) (string, error) {
	raw, err := r.property(key)
	if err != nil {
		return "", err
	}
	var s string
	if !isJSONString(raw) || json.Unmarshal(raw, &s) != nil {
		return "", formatErrorf(r.at(key), "must be of type 'string'")
	}
	return s, nil
}

// Strings reads a required array of strings.
func (r *jsonObjectReader) Strings(key string) ([]string, error) {
	items, err := r.Array(key)
	if err != nil {
		return nil, err
	}
	list := make([]string, len(items))
	for i, raw := range items {
		if !isJSONString(raw) || json.Unmarshal(raw, &list[i]) != nil {
			return nil, formatErrorf(fmt.Sprintf("%s[%d]", r.at(key), i), "must be of type 'string'")
		}
	}
	return list, nil
}

// Array reads a required array.
func (r *jsonObjectReader) Array(key string) ([]json.RawMessage, error) {
	raw, err := r.property(key)
	if err != nil {
		return nil, err
	}
	var items []json.RawMessage
	if t := bytes.TrimSpace(raw); len(t) == 0 || t[0] != '[' || json.Unmarshal(raw, &items) != nil {
		return nil, formatErrorf(r.at(key), "must be of type 'array'")
	}
	return items, nil
}

// Object reads a required nested object.
func (r *jsonObjectReader) Object(key string) (*jsonObjectReader, error) {
	raw, err := r.property(key)
	if err != nil {
		return nil, err
	}
	return readObject(r.at(key), raw)
}

// Number reads a required JSON number, keeping all its digits.
func (r *jsonObjectReader) Number(key string) (json.Number, error) {
	raw, err := r.property(key)
	if err != nil {
		return "", err
	}
	var n json.Number
	t := bytes.TrimSpace(raw)
	if len(t) == 0 || !(t[0] == '-' || (t[0] >= '0' && t[0] <= '9')) || json.Unmarshal(t, &n) != nil {
		return "", formatErrorf(r.at(key), "must be of type 'number'")
	}
	return n, nil
}

func isJSONString(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '"'
}
