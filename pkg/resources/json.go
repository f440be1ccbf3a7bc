package resources

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON writes the record as a JSON object with fields in insertion
// order. HTML characters and non-ASCII text are written literally.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSONValue(&buf, key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSONValue(&buf, r.values[key]); err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object, keeping field order. Nested objects
// become Records and numbers are kept as json.Number so they are written
// back exactly as read.
func (r *Record) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("resource definition must be a JSON object, got %v", describeToken(tok))
	}

	rec, err := decodeObject(dec)
	if err != nil {
		return err
	}
	*r = rec
	return nil
}

// writeJSONValue encodes v without HTML escaping and without the trailing
// newline json.Encoder adds.
func writeJSONValue(buf *bytes.Buffer, v any) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return err
	}
	buf.Truncate(buf.Len() - 1)
	return nil
}

// decodeObject reads object members up to and including the closing brace.
// The opening brace must already be consumed.
func decodeObject(dec *json.Decoder) (Record, error) {
	var rec Record
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Record{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Record{}, fmt.Errorf("expected object key, got %v", describeToken(tok))
		}
		value, err := decodeValue(dec)
		if err != nil {
			return Record{}, fmt.Errorf("field %q: %w", key, err)
		}
		rec.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return Record{}, err
	}
	if rec.values == nil {
		rec.values = make(map[string]any)
	}
	return rec, nil
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
		return decodeObject(dec)
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
		return nil, fmt.Errorf("unexpected delimiter %v", delim)
	}
}

func describeToken(tok json.Token) string {
	switch t := tok.(type) {
	case nil:
		return "null"
	case json.Delim:
		if t == '[' {
			return "array"
		}
		return t.String()
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", tok)
	}
}
