// Package optional provides a field wrapper that tells an absent JSON key
// apart from an explicit null and from a concrete value.
package optional

import (
	"bytes"
	"encoding/json"
)

// Field is absent when Set is false. When Set is true the field either
// carries Value or was explicitly null.
type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Of returns a present field holding v.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null returns a present field that was explicitly cleared.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

// Get returns the value and whether the field carries one.
func (f Field[T]) Get() (T, bool) {
	if !f.Set || f.Null {
		var zero T
		return zero, false
	}
	return f.Value, true
}

// Ptr returns nil for absent or null fields and a pointer to the value otherwise.
func (f Field[T]) Ptr() *T {
	v, ok := f.Get()
	if !ok {
		return nil
	}
	return &v
}

// UnmarshalJSON is only invoked for keys present in the document.
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}
