// Package resources defines the resource definition record shared by the
// loader, enhancer, merger and writer.
//
// A Record is an ordered mapping of field name to value. Field order is the
// order in which keys were first set, so a definition that is read, enriched
// and written back keeps its original layout with new fields appended.
package resources

import "slices"

// Well-known definition fields.
const (
	FieldName                      = "name"
	FieldSlug                      = "slug"
	FieldResource                  = "resource"
	FieldResourceProviderNamespace = "resource_provider_namespace"
	FieldOutOfDoc                  = "out_of_doc"
)

// Origin identifies which input collection a record was read from.
type Origin int

const (
	// OriginDocumented marks records listed in the official abbreviation docs.
	OriginDocumented Origin = iota
	// OriginUndocumented marks records from the out-of-docs collection.
	OriginUndocumented
)

// String returns the origin name.
func (o Origin) String() string {
	switch o {
	case OriginDocumented:
		return "documented"
	case OriginUndocumented:
		return "undocumented"
	default:
		return "unknown"
	}
}

// Record is one resource definition.
// The zero value is an empty record ready to use.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord creates a record from alternating key/value pairs.
// It panics if a key is not a string or the pair count is odd.
func NewRecord(kv ...any) Record {
	if len(kv)%2 != 0 {
		panic("resources: NewRecord requires key/value pairs")
	}
	var r Record
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic("resources: NewRecord keys must be strings")
		}
		r.Set(key, kv[i+1])
	}
	return r
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key is defined.
func (r *Record) Has(key string) bool {
	_, ok := r.values[key]
	return ok
}

// Set stores value under key. A new key is appended after the existing
// keys; an existing key keeps its position.
func (r *Record) Set(key string, value any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// SetDefault stores value under key only if key is not defined yet.
// It reports whether the value was stored.
func (r *Record) SetDefault(key string, value any) bool {
	if r.Has(key) {
		return false
	}
	r.Set(key, value)
	return true
}

// Delete removes key from the record.
func (r *Record) Delete(key string) {
	if !r.Has(key) {
		return
	}
	delete(r.values, key)
	r.keys = slices.DeleteFunc(r.keys, func(k string) bool { return k == key })
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	return slices.Clone(r.keys)
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return len(r.keys)
}

// String returns the string stored under key, or "" when the key is missing
// or holds another type.
func (r *Record) String(key string) string {
	s, _ := r.values[key].(string)
	return s
}

// Bool returns the boolean stored under key, or false when the key is
// missing or holds another type.
func (r *Record) Bool(key string) bool {
	b, _ := r.values[key].(bool)
	return b
}

// Name returns the resource type name. Records without a string name
// report "" so they sort first.
func (r *Record) Name() string {
	return r.String(FieldName)
}

// Clone returns a copy that shares no field storage with r.
// Values themselves are copied shallowly.
func (r *Record) Clone() Record {
	c := Record{keys: slices.Clone(r.keys)}
	if r.values != nil {
		c.values = make(map[string]any, len(r.values))
		for k, v := range r.values {
			c.values[k] = v
		}
	}
	return c
}

// Names returns the name of every record in order.
func Names(records []Record) []string {
	names := make([]string, len(records))
	for i := range records {
		names[i] = records[i].Name()
	}
	return names
}
