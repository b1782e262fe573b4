package algebra

import "github.com/npillmayer/lazyseg"

// Optional is a value which may be absent.
type Optional[T any] struct {
	Valid bool
	Value T
}

// Some creates a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Valid: true, Value: v}
}

// Rightmost combines optionals by keeping the rightmost present one. It is
// associative but not commutative.
type Rightmost[T any] struct{}

// Zero is part of interface lazyseg.Monoid.
func (Rightmost[T]) Zero() Optional[T] {
	return Optional[T]{}
}

// Add is part of interface lazyseg.Monoid.
func (Rightmost[T]) Add(left, right Optional[T]) Optional[T] {
	if right.Valid {
		return right
	}
	return left
}

// Overwriting applies assignments to optionals, making them present.
type Overwriting[T comparable] struct {
	Assigning[T]
}

// Apply is part of interface lazyseg.Action.
func (Overwriting[T]) Apply(v Optional[T], a Assignment[T]) Optional[T] {
	if a.Set {
		return Some(a.Value)
	}
	return v
}

// RightmostOverwrite is the algebra "query the rightmost present value of a
// range, overwrite a range".
func RightmostOverwrite[T comparable]() lazyseg.Config[Optional[T], Assignment[T]] {
	return lazyseg.Config[Optional[T], Assignment[T]]{
		Combine: Rightmost[T]{},
		Update:  Overwriting[T]{},
	}
}
