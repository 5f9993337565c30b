package types

import (
	"fmt"
	"strconv"
)

// Scalar is a single field value. In practice values are strings, int64s,
// float64s or bools; the hub never inspects them beyond formatting.
type Scalar = any

// Field is a single key/value pair used to build records.
type Field struct {
	Key   string
	Value Scalar
}

// Record is a schemaless key/value map that remembers the order keys were
// first set. Key order matters for display and for the delimited export
// header, so a plain Go map is not enough.
type Record struct {
	keys   []string
	values map[string]Scalar
}

// NewRecord builds a record from fields, preserving their order.
func NewRecord(fields ...Field) Record {
	r := Record{
		keys:   make([]string, 0, len(fields)),
		values: make(map[string]Scalar, len(fields)),
	}
	for _, f := range fields {
		r.Set(f.Key, f.Value)
	}
	return r
}

// Set stores a value under key. The first Set of a key fixes its position;
// later Sets overwrite in place.
func (r *Record) Set(key string, v Scalar) {
	if r.values == nil {
		r.values = make(map[string]Scalar)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Get returns the value for key and whether it was present.
func (r Record) Get(key string) (Scalar, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the record's keys in insertion order.
func (r Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.keys)
}

// Clone returns an independent copy of the record.
func (r Record) Clone() Record {
	out := Record{
		keys:   make([]string, len(r.keys)),
		values: make(map[string]Scalar, len(r.values)),
	}
	copy(out.keys, r.keys)
	for k, v := range r.values {
		out.values[k] = v
	}
	return out
}

// ID returns the record's "id" field coerced to an integer.
// Records without a usable id return (0, false).
func (r Record) ID() (int64, bool) {
	v, ok := r.values["id"]
	if !ok {
		return 0, false
	}
	return CoerceInt(v)
}

// CoerceInt converts the scalar forms an id can arrive in (native ints,
// floats from aggregation, strings from parsed files) to an int64.
func CoerceInt(v Scalar) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case float64:
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// FormatScalar renders a scalar the way exports and previews show it.
// Floats drop trailing zeros so 10.0 round-trips as "10".
func FormatScalar(v Scalar) string {
	switch n := v.(type) {
	case nil:
		return ""
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32)
	default:
		return fmt.Sprint(v)
	}
}

// ParseScalar is the inverse of FormatScalar for imported text: integers and
// floats regain their numeric types, everything else stays a string.
func ParseScalar(s string) Scalar {
	if s == "" {
		return ""
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
