package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Output is a JSON-like object that keeps key insertion order. Projected
// payloads have shapes that vary per template and per custom field list, and
// both serializers must emit them deterministically, so a plain map cannot
// carry them. Values are strings, ints, float64s, bools, nil, []any or
// nested *Output.
type Output struct {
	keys   []string
	values map[string]any
}

func NewOutput() *Output {
	return &Output{values: make(map[string]any)}
}

// Set appends the key on first use; setting an existing key replaces its
// value in place without changing its position.
func (o *Output) Set(key string, value any) *Output {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
	return o
}

func (o *Output) Get(key string) (any, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not mutate it.
func (o *Output) Keys() []string {
	return o.keys
}

func (o *Output) Len() int {
	return len(o.keys)
}

// MarshalJSON emits the object with keys in insertion order. HTML escaping is
// disabled so sanitized fragments (&amp;, &lt;, &gt;) and non-ASCII text pass
// through verbatim.
func (o *Output) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encoded, err := encodeValue(key)
		if err != nil {
			return nil, err
		}
		buf.Write(encoded)
		buf.WriteByte(':')
		encoded, err = encodeValue(o.values[key])
		if err != nil {
			return nil, fmt.Errorf("encode output key %q: %w", key, err)
		}
		buf.Write(encoded)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON restores key order from the document order of the input.
func (o *Output) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("output: expected object, got %v", tok)
	}
	o.keys = nil
	o.values = make(map[string]any)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("output: expected string key, got %v", keyTok)
		}
		value, err := decodeValue(dec)
		if err != nil {
			return err
		}
		o.Set(key, value)
	}
	_, err = dec.Token()
	return err
}

func encodeValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			nested := NewOutput()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("output: expected string key, got %v", keyTok)
				}
				value, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				nested.Set(key, value)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return nested, nil
		case '[':
			items := []any{}
			for dec.More() {
				item, err := decodeValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return items, nil
		default:
			return nil, fmt.Errorf("output: unexpected delimiter %v", t)
		}
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return int(n), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return tok, nil
	}
}
