package algebra

import (
	"github.com/npillmayer/lazyseg"
	"golang.org/x/exp/constraints"
)

// Maximum is the combine monoid of ordered values under max. Floor is its
// neutral element and must not be greater than any leaf value, e.g. 0 for
// heights or the minimum of T.
type Maximum[T constraints.Ordered] struct {
	Floor T
}

// Zero is part of interface lazyseg.Monoid.
func (m Maximum[T]) Zero() T {
	return m.Floor
}

// Add is part of interface lazyseg.Monoid.
func (m Maximum[T]) Add(left, right T) T {
	if right > left {
		return right
	}
	return left
}

// Minimum is the combine monoid of ordered values under min. Ceiling is its
// neutral element.
type Minimum[T constraints.Ordered] struct {
	Ceiling T
}

// Zero is part of interface lazyseg.Monoid.
func (m Minimum[T]) Zero() T {
	return m.Ceiling
}

// Add is part of interface lazyseg.Monoid.
func (m Minimum[T]) Add(left, right T) T {
	if right < left {
		return right
	}
	return left
}

// Assignment is an update which overwrites leaves with Value, if Set.
// The zero Assignment leaves everything untouched.
type Assignment[T comparable] struct {
	Set   bool
	Value T
}

// Assign creates an assignment of value v.
func Assign[T comparable](v T) Assignment[T] {
	return Assignment[T]{Set: true, Value: v}
}

// Assigning is the update algebra of assignments: the later assignment wins.
type Assigning[T comparable] struct{}

// Zero is part of interface lazyseg.Action.
func (Assigning[T]) Zero() Assignment[T] {
	return Assignment[T]{}
}

// Add is part of interface lazyseg.Action.
func (Assigning[T]) Add(first, second Assignment[T]) Assignment[T] {
	if second.Set {
		return second
	}
	return first
}

// Apply is part of interface lazyseg.Action.
func (Assigning[T]) Apply(v T, a Assignment[T]) T {
	if a.Set {
		return a.Value
	}
	return v
}

// Shifting adds a delta to ordered values. Applying a delta to a maximum or a
// minimum shifts it by the same amount.
type Shifting[T Number] struct{}

// Zero is part of interface lazyseg.Action.
func (Shifting[T]) Zero() T {
	return 0
}

// Add is part of interface lazyseg.Action.
func (Shifting[T]) Add(first, second T) T {
	return first + second
}

// Apply is part of interface lazyseg.Action.
func (Shifting[T]) Apply(v T, delta T) T {
	return v + delta
}

// MaxAssign is the algebra for range maxima with range assignments.
func MaxAssign[T constraints.Ordered](floor T) lazyseg.Config[T, Assignment[T]] {
	return lazyseg.Config[T, Assignment[T]]{
		Combine: Maximum[T]{Floor: floor},
		Update:  Assigning[T]{},
	}
}

// MinAssign is the algebra for range minima with range assignments.
func MinAssign[T constraints.Ordered](ceiling T) lazyseg.Config[T, Assignment[T]] {
	return lazyseg.Config[T, Assignment[T]]{
		Combine: Minimum[T]{Ceiling: ceiling},
		Update:  Assigning[T]{},
	}
}

// MaxAdd is the algebra for range maxima with range additions.
//
// Adding to the floor is not neutral; the tree never updates padding leaves,
// but clients should choose a floor far enough from overflow.
func MaxAdd[T Number](floor T) lazyseg.Config[T, T] {
	return lazyseg.Config[T, T]{
		Combine: Maximum[T]{Floor: floor},
		Update:  Shifting[T]{},
	}
}

// MinAdd is the algebra for range minima with range additions.
func MinAdd[T Number](ceiling T) lazyseg.Config[T, T] {
	return lazyseg.Config[T, T]{
		Combine: Minimum[T]{Ceiling: ceiling},
		Update:  Shifting[T]{},
	}
}
