package domain

import "unique"

// InternedString is a value object that wraps a unique.Handle[string].
// Two interned strings built from the same character sequence compare equal
// with ==, regardless of which heap string they were created from. This is
// what gives source keys content identity instead of reference identity.
//
// The zero value carries no handle and is distinct from the interned empty
// string; Origin uses that distinction to tell a missing name from one
// named with the empty string.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString creates a new InternedString from a string.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// IsZero reports whether the value was never assigned a string.
func (is InternedString) IsZero() bool {
	var zero unique.Handle[string]
	return is.h == zero
}

// String returns the underlying string value.
func (is InternedString) String() string {
	if is.IsZero() {
		return ""
	}
	return is.h.Value()
}

// Value returns the underlying unique.Handle[string].
func (is InternedString) Value() unique.Handle[string] {
	return is.h
}

// MarshalText implements encoding.TextMarshaler.
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (is *InternedString) UnmarshalText(text []byte) error {
	is.h = unique.Make(string(text))
	return nil
}
