package algebra

import "github.com/npillmayer/lazyseg"

// Affine is the map x ↦ A·x + B, applied to every leaf of a range.
type Affine[T Number] struct {
	A, B T
}

// Affinity is the update algebra of affine maps. Composition is not
// commutative: Add(f, g) is "f, then g", i.e. g∘f.
type Affinity[T Number] struct{}

// Zero is part of interface lazyseg.Action. It is the identity map.
func (Affinity[T]) Zero() Affine[T] {
	return Affine[T]{A: 1, B: 0}
}

// Add is part of interface lazyseg.Action.
func (Affinity[T]) Add(first, second Affine[T]) Affine[T] {
	return Affine[T]{
		A: second.A * first.A,
		B: second.A*first.B + second.B,
	}
}

// Apply is part of interface lazyseg.Action.
func (Affinity[T]) Apply(v Sized[T], f Affine[T]) Sized[T] {
	return Sized[T]{Sum: f.A*v.Sum + f.B*T(v.Len), Len: v.Len}
}

// AffineSum is the algebra for range sums with range affine maps.
// Leaves have to be created with Sizes or carry Len 1. As with SumAdd, create
// trees with lazyseg.Build or lazyseg.Fill, not lazyseg.New.
func AffineSum[T Number]() lazyseg.Config[Sized[T], Affine[T]] {
	return lazyseg.Config[Sized[T], Affine[T]]{
		Combine: Summation[T]{},
		Update:  Affinity[T]{},
	}
}
