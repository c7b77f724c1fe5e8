// Package patch models partial updates whose fields can be absent, explicitly
// null, or set to a value.
package patch

import (
	"bytes"
	"encoding/json"
)

// Field is one optional member of a partial update. The zero value is absent.
// When present, a null overwrites the target with its zero value (or nil for
// pointer targets). A value overwrites the target with that value.
type Field[T any] struct {
	present bool
	null    bool
	value   T
}

// Set returns a present field carrying v.
func Set[T any](v T) Field[T] {
	return Field[T]{present: true, value: v}
}

// Null returns a present field that clears its target.
func Null[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

// Present reports whether the patch mentions this field.
func (f Field[T]) Present() bool {
	return f.present
}

// IsZero reports whether the field is absent, so `omitzero` drops it.
func (f Field[T]) IsZero() bool {
	return !f.present
}

// Value returns the carried value and whether the field holds a non-null value.
func (f Field[T]) Value() (T, bool) {
	return f.value, f.present && !f.null
}

// Apply writes the field into dst when present.
func (f Field[T]) Apply(dst *T) {
	if !f.present {
		return
	}
	if f.null {
		var zero T
		*dst = zero
		return
	}
	*dst = f.value
}

// ApplyPtr writes the field into a nullable target when present.
func (f Field[T]) ApplyPtr(dst **T) {
	if !f.present {
		return
	}
	if f.null {
		*dst = nil
		return
	}
	v := f.value
	*dst = &v
}

// MarshalJSON implements json.Marshaler.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.present || f.null {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// UnmarshalJSON implements json.Unmarshaler. Any occurrence of the key marks
// the field present, including an explicit null.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.present = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.null = true
		f.value = zero
		return nil
	}
	f.null = false
	return json.Unmarshal(data, &f.value)
}
