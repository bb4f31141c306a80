package domain

import (
	"bytes"
	"encoding/json"
)

// Optional marks a field of a partial update. A field that is not Set is left
// untouched by the update; a Set field overwrites the stored value, even with
// its zero value.
//
// When decoded from JSON a key that is absent or null leaves the Optional unset.
type Optional[T any] struct {
	Value T
	Set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Set: true}
}

// Get returns the value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// Apply writes the value into dst when set and reports whether it did.
func (o Optional[T]) Apply(dst *T) bool {
	if !o.Set {
		return false
	}
	*dst = o.Value
	return true
}

// OrElse returns the value when set, fallback otherwise.
func (o Optional[T]) OrElse(fallback T) T {
	if o.Set {
		return o.Value
	}
	return fallback
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = Optional[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.Set {
		return []byte("null"), nil
	}
	return json.Marshal(o.Value)
}

// Nullable is a partial-update field for a column that may hold NULL. Unlike
// Optional, a JSON null is Set with a nil Value, which clears the column.
type Nullable[T any] struct {
	Value *T
	Set   bool
}

// SomeValue returns a Nullable holding v.
func SomeValue[T any](v T) Nullable[T] {
	return Nullable[T]{Value: &v, Set: true}
}

// Null returns a Nullable that clears the stored value.
func Null[T any]() Nullable[T] {
	return Nullable[T]{Set: true}
}

// Apply writes the value, or nil, into dst when set and reports whether it did.
func (n Nullable[T]) Apply(dst **T) bool {
	if !n.Set {
		return false
	}
	if n.Value == nil {
		*dst = nil
		return true
	}
	v := *n.Value
	*dst = &v
	return true
}

func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*n = Null[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = SomeValue(v)
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
