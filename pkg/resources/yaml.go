package resources

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MarshalYAML returns the record as an ordered map so goccy/go-yaml keeps
// the field order.
func (r Record) MarshalYAML() (any, error) {
	ms := make(yaml.MapSlice, 0, len(r.keys))
	for _, key := range r.keys {
		ms = append(ms, yaml.MapItem{Key: key, Value: toYAMLValue(r.values[key])})
	}
	return ms, nil
}

// FromMapSlice builds a record from an ordered YAML mapping. Nested
// mappings become Records.
func FromMapSlice(ms yaml.MapSlice) Record {
	rec := Record{values: make(map[string]any, len(ms))}
	for _, item := range ms {
		rec.Set(fmt.Sprint(item.Key), fromYAMLValue(item.Value))
	}
	return rec
}

func toYAMLValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = toYAMLValue(item)
		}
		return out
	default:
		return v
	}
}

func fromYAMLValue(v any) any {
	switch t := v.(type) {
	case yaml.MapSlice:
		return FromMapSlice(t)
	case []any:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = fromYAMLValue(item)
		}
		return out
	default:
		return v
	}
}
