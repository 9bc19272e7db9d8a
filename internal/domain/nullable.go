package domain

import (
	"bytes"
	"encoding/json"
)

// Presence is implemented by values that may be absent.
// CheckPresence uses it to validate request fields and fetched rows alike.
type Presence interface {
	Present() bool
}

// Nullable holds a value that may be absent.
//
// When decoded from JSON, a missing key and an explicit null both leave Valid
// false. Zero values such as "" or 0 are present.
type Nullable[T any] struct {
	Value T
	Valid bool
}

// Of returns a present Nullable holding v.
func Of[T any](v T) Nullable[T] {
	return Nullable[T]{Value: v, Valid: true}
}

// Present reports whether the value is set.
func (n Nullable[T]) Present() bool {
	return n.Valid
}

// Ptr returns a pointer to the value, or nil when absent. Statement arguments
// use it so an absent optional field binds SQL NULL.
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Nullable[T]) UnmarshalJSON(b []byte) error {
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		*n = Nullable[T]{}
		return nil
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*n = Of(v)
	return nil
}

// MarshalJSON implements json.Marshaler. An absent value encodes as null.
func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}
