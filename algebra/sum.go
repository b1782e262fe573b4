package algebra

import "github.com/npillmayer/lazyseg"

// Sized is a sum together with the number of leaves it has been summed over.
// Adding a delta to every leaf of a range has to know how many leaves there
// are, hence sums carry their length.
type Sized[T Number] struct {
	Sum T
	Len int
}

// Sizes wraps plain leaf values into sums of length 1.
func Sizes[T Number](values []T) []Sized[T] {
	sized := make([]Sized[T], len(values))
	for i, v := range values {
		sized[i] = Sized[T]{Sum: v, Len: 1}
	}
	return sized
}

// Summation is the combine monoid for Sized values.
type Summation[T Number] struct{}

// Zero is part of interface lazyseg.Monoid.
func (Summation[T]) Zero() Sized[T] {
	return Sized[T]{}
}

// Add is part of interface lazyseg.Monoid.
func (Summation[T]) Add(left, right Sized[T]) Sized[T] {
	return Sized[T]{Sum: left.Sum + right.Sum, Len: left.Len + right.Len}
}

// Addition adds a delta to every leaf of a sum.
type Addition[T Number] struct{}

// Zero is part of interface lazyseg.Action.
func (Addition[T]) Zero() T {
	return 0
}

// Add is part of interface lazyseg.Action.
func (Addition[T]) Add(first, second T) T {
	return first + second
}

// Apply is part of interface lazyseg.Action.
func (Addition[T]) Apply(v Sized[T], delta T) Sized[T] {
	return Sized[T]{Sum: v.Sum + delta*T(v.Len), Len: v.Len}
}

// SumAdd is the algebra for range sums with range additions.
// Leaves have to be created with Sizes or carry Len 1. The Zero of Summation
// has Len 0, so a tree from lazyseg.New ignores all additions; use
// lazyseg.Build(SumAdd[T](), Sizes(values)) or
// lazyseg.Fill(SumAdd[T](), n, Sized[T]{Len: 1}).
func SumAdd[T Number]() lazyseg.Config[Sized[T], T] {
	return lazyseg.Config[Sized[T], T]{
		Combine: Summation[T]{},
		Update:  Addition[T]{},
	}
}
