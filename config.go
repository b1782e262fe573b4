package lazyseg

import "fmt"

// Monoid defines how values are combined. It is used twice by a tree: once for
// the aggregates stored at the nodes (the combine algebra), and once for the
// pending updates waiting to be pushed down (the update algebra).
//
// For values s, t, u, Add should be associative:
//
//	Add(Add(s, t), u) == Add(s, Add(t, u))
//
// and Zero should be the neutral element:
//
//	Add(Zero(), s) == s == Add(s, Zero())
//
// Add need not be commutative. The tree always combines in left-to-right
// order of the leaves.
type Monoid[T any] interface {
	Zero() T
	Add(left, right T) T
}

// Action is the update algebra of a tree. It composes pending updates and
// applies them to aggregate values.
//
// Add(first, second) is the update "first, then second". Apply has to be a
// homomorphism for both monoids:
//
//	Apply(Apply(v, l1), l2) == Apply(v, Add(l1, l2))
//	Apply(combine(v1, v2), l) == combine(Apply(v1, l), Apply(v2, l))
//
// Violating one of these laws will not be detected by the tree; it will
// silently produce wrong aggregates. Package algebra offers a law checker for
// sampled values.
type Action[V, L any] interface {
	Monoid[L]
	Apply(v V, l L) V
}

// Config configures a lazy segment tree.
type Config[V any, L comparable] struct {
	// Combine aggregates leaf values up the tree.
	Combine Monoid[V]
	// Update composes pending updates and applies them to aggregates.
	Update Action[V, L]
}

func (cfg Config[V, L]) validate() error {
	if cfg.Combine == nil {
		return fmt.Errorf("%w: combine monoid is required", ErrInvalidConfig)
	}
	if cfg.Update == nil {
		return fmt.Errorf("%w: update action is required", ErrInvalidConfig)
	}
	return nil
}

// --- Closure adapters ------------------------------------------------------

// MonoidFuncs is a Monoid made of two functions. It is handy for ad-hoc
// algebras which do not deserve a type of their own.
type MonoidFuncs[T any] struct {
	ZeroFunc func() T
	AddFunc  func(left, right T) T
}

// Zero is part of interface Monoid.
func (m MonoidFuncs[T]) Zero() T {
	return m.ZeroFunc()
}

// Add is part of interface Monoid.
func (m MonoidFuncs[T]) Add(left, right T) T {
	return m.AddFunc(left, right)
}

// ActionFuncs is an Action made of three functions.
type ActionFuncs[V, L any] struct {
	ZeroFunc    func() L
	ComposeFunc func(first, second L) L
	ApplyFunc   func(v V, l L) V
}

// Zero is part of interface Action.
func (a ActionFuncs[V, L]) Zero() L {
	return a.ZeroFunc()
}

// Add is part of interface Action.
func (a ActionFuncs[V, L]) Add(first, second L) L {
	return a.ComposeFunc(first, second)
}

// Apply is part of interface Action.
func (a ActionFuncs[V, L]) Apply(v V, l L) V {
	return a.ApplyFunc(v, l)
}
