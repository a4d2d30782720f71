// Package mapx performs strict validation of the untyped string-keyed
// mappings produced by unmarshalling JSON objects.
//
// A [Schema] declares the required fields of a record shape as an ordered
// list of (key, kind) pairs. [Schema.Validate] checks all the fields
// before exposing any value, so a caller observes either a fully
// validated [*Values] or an error, never a partial result.
package mapx

import (
	"fmt"
	"math"

	"github.com/placefetch/placefetch/internal/runtimex"
)

// Mapping is an untyped string-keyed mapping, typically obtained by
// unmarshalling a JSON object into a map.
type Mapping map[string]any

// Kind is the semantic type required for a field value.
type Kind int

const (
	// KindInt matches integral numbers. Because [encoding/json]
	// unmarshals every JSON number as float64, a float64 with zero
	// fractional part matches, along with int and int64.
	KindInt = Kind(iota)

	// KindFloat matches any number.
	KindFloat

	// KindString matches strings.
	KindString

	// KindBool matches booleans.
	KindBool

	// KindMapping matches nested JSON objects.
	KindMapping

	// KindSequence matches arrays whose every element is a JSON object.
	KindSequence
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Field declares a required field inside a [Schema].
type Field struct {
	// Key is the field's key inside the mapping.
	Key string

	// Kind is the kind of value the field must hold.
	Kind Kind
}

// ErrFieldValidation indicates that a required field was missing from
// the input mapping or held a value of the wrong kind.
type ErrFieldValidation struct {
	// Key is the key of the field that failed validation.
	Key string

	// Kind is the kind the field was required to hold.
	Kind Kind
}

var _ error = &ErrFieldValidation{}

// Error implements error.
func (err *ErrFieldValidation) Error() string {
	return fmt.Sprintf("mapx: field %q: missing or not a %s", err.Key, err.Kind)
}

// Schema is the ordered list of required fields of a record shape.
//
// The zero value is invalid; construct using [NewSchema].
type Schema struct {
	fields []Field
}

// NewSchema constructs a [*Schema] from the given fields. This function
// panics if two fields use the same key.
func NewSchema(fields ...Field) *Schema {
	seen := make(map[string]bool)
	for _, field := range fields {
		runtimex.Assert(!seen[field.Key], "mapx: duplicate key in schema")
		seen[field.Key] = true
	}
	return &Schema{fields}
}

// Validate checks that every field of the schema is present in the
// input with the required kind.
//
// On success it returns a [*Values] holding every validated field. On
// failure it returns a nil [*Values] and an [*ErrFieldValidation]
// naming the first field that failed; no value validated before the
// failing one is exposed.
func (sma *Schema) Validate(input Mapping) (*Values, error) {
	values := make(map[string]any, len(sma.fields))
	for _, field := range sma.fields {
		raw, found := input[field.Key]
		if !found {
			return nil, &ErrFieldValidation{Key: field.Key, Kind: field.Kind}
		}
		value, good := coerce(raw, field.Kind)
		if !good {
			return nil, &ErrFieldValidation{Key: field.Key, Kind: field.Kind}
		}
		values[field.Key] = value
	}
	return &Values{values}, nil
}

// coerce maps raw to the canonical Go representation of the given
// kind: int64, float64, string, bool, Mapping, or []Mapping.
func coerce(raw any, kind Kind) (any, bool) {
	switch kind {
	case KindInt:
		return coerceInt(raw)
	case KindFloat:
		return coerceFloat(raw)
	case KindString:
		value, good := raw.(string)
		return value, good
	case KindBool:
		value, good := raw.(bool)
		return value, good
	case KindMapping:
		return coerceMapping(raw)
	case KindSequence:
		return coerceSequence(raw)
	default:
		return nil, false
	}
}

func coerceInt(raw any) (any, bool) {
	switch value := raw.(type) {
	case float64:
		if math.Trunc(value) != value || math.IsInf(value, 0) {
			return nil, false
		}
		// only convert when the value fits into int64: converting an
		// out-of-range float64 yields an implementation-defined result
		if value < -(1 << 63) || value >= 1<<63 {
			return nil, false
		}
		return int64(value), true
	case int:
		return int64(value), true
	case int64:
		return value, true
	default:
		return nil, false
	}
}

func coerceFloat(raw any) (any, bool) {
	switch value := raw.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	default:
		return nil, false
	}
}

func coerceMapping(raw any) (any, bool) {
	switch value := raw.(type) {
	case Mapping:
		return value, true
	case map[string]any:
		return Mapping(value), true
	default:
		return nil, false
	}
}

func coerceSequence(raw any) (any, bool) {
	switch value := raw.(type) {
	case []Mapping:
		return value, true
	case []any:
		out := make([]Mapping, 0, len(value))
		for _, entry := range value {
			mapping, good := coerceMapping(entry)
			if !good {
				return nil, false
			}
			out = append(out, mapping.(Mapping))
		}
		return out, true
	default:
		return nil, false
	}
}

// Values holds the validated fields produced by [Schema.Validate].
//
// Each accessor panics when called with a key that was not validated
// with the corresponding kind, since that is a programmer error.
type Values struct {
	values map[string]any
}

// Int returns the validated integral field with the given key.
func (vals *Values) Int(key string) int64 {
	value, good := vals.values[key].(int64)
	runtimex.Assert(good, "mapx: no validated int field with this key")
	return value
}

// Float returns the validated number field with the given key.
func (vals *Values) Float(key string) float64 {
	value, good := vals.values[key].(float64)
	runtimex.Assert(good, "mapx: no validated float field with this key")
	return value
}

// String returns the validated string field with the given key.
func (vals *Values) String(key string) string {
	value, good := vals.values[key].(string)
	runtimex.Assert(good, "mapx: no validated string field with this key")
	return value
}

// Bool returns the validated boolean field with the given key.
func (vals *Values) Bool(key string) bool {
	value, good := vals.values[key].(bool)
	runtimex.Assert(good, "mapx: no validated bool field with this key")
	return value
}

// Mapping returns the validated nested-object field with the given key.
func (vals *Values) Mapping(key string) Mapping {
	value, good := vals.values[key].(Mapping)
	runtimex.Assert(good, "mapx: no validated mapping field with this key")
	return value
}

// Sequence returns the validated object-array field with the given key.
func (vals *Values) Sequence(key string) []Mapping {
	value, good := vals.values[key].([]Mapping)
	runtimex.Assert(good, "mapx: no validated sequence field with this key")
	return value
}
