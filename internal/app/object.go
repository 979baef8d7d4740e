package app

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Field is one member of a JSON object. Value holds the member's raw JSON.
type Field struct {
	Key   string
	Value json.RawMessage
}

// Object is a JSON object that keeps its members in document order and
// leaves their values undecoded.
//
// An Object is treated as a value: With returns a modified copy and never
// touches the receiver's storage.
type Object struct {
	fields []Field
}

// NewObject builds an Object from fields. A repeated key keeps its first
// position and its last value.
func NewObject(fields ...Field) Object {
	var o Object
	for _, f := range fields {
		o.fields = setField(o.fields, f.Key, f.Value)
	}
	return o
}

// Get returns the raw value stored under key
func (o Object) Get(key string) (json.RawMessage, bool) {
	for _, f := range o.fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// With returns a copy of o with key set to value. An existing key is
// overwritten in place, a new key is appended.
func (o Object) With(key string, value json.RawMessage) Object {
	fields := make([]Field, len(o.fields), len(o.fields)+1)
	copy(fields, o.fields)
	return Object{fields: setField(fields, key, value)}
}

// MarshalJSON writes the members in order. Keys are written without HTML
// escaping; values are written as stored.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeKey(&buf, f.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if len(f.Value) == 0 {
			buf.WriteString("null")
			continue
		}
		buf.Write(f.Value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object keeping member order. Anything other
// than an object, including null, is rejected.
func (o *Object) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to read object: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %s", describeToken(tok))
	}

	var fields []Field
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("failed to read object key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %s", describeToken(tok))
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("failed to decode value of %q: %w", key, err)
		}
		fields = setField(fields, key, value)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("failed to close object: %w", err)
	}

	o.fields = fields
	return nil
}

func setField(fields []Field, key string, value json.RawMessage) []Field {
	for i := range fields {
		if fields[i].Key == key {
			fields[i].Value = value
			return fields
		}
	}
	return append(fields, Field{Key: key, Value: value})
}

func writeKey(buf *bytes.Buffer, key string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(key); err != nil {
		return fmt.Errorf("failed to encode key %q: %w", key, err)
	}
	// Encode terminates every value with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}

func describeToken(tok json.Token) string {
	switch v := tok.(type) {
	case nil:
		return "null"
	case json.Delim:
		return string(v)
	case string:
		return fmt.Sprintf("string %q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
