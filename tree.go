package lazyseg

import (
	"fmt"
	"math/bits"

	"github.com/npillmayer/schuko/tracing"
)

// Tree is a lazy-propagation segment tree over a fixed number of leaves.
//
// V is the type of aggregate values, combined with cfg.Combine. L is the type
// of pending updates, composed and applied with cfg.Update. L has to be
// comparable, as the tree tests pending updates against the identity update to
// skip needless propagation.
//
// Nodes live in two flat slices, 1-based: the root is at index 1, the children
// of node k are 2k and 2k+1, and leaf i is at index Size()+i. data[k] is the
// aggregate of k's subtree, not yet including lazy[k] nor any pending update of
// an ancestor which has not been pushed down.
//
// A Tree is not safe for concurrent use. Even Query mutates internal state.
type Tree[V any, L comparable] struct {
	cfg    Config[V, L]
	n      int // logical number of leaves
	size   int // number of leaves including padding, a power of two
	height int // number of levels; 1 for a single leaf
	none   L   // identity of the update algebra
	data   []V
	lazy   []L
}

// New creates a tree with n leaves, all of them set to cfg.Combine.Zero().
//
// n must be at least 1; an empty tree is not supported and New will return
// ErrInvalidSize.
//
// Algebras whose aggregates carry the number of leaves (algebra.SumAdd,
// algebra.AffineSum) have a Zero of length 0, and updates leave such leaves
// unchanged. Create those trees with Fill or Build instead.
func New[V any, L comparable](cfg Config[V, L], n int) (*Tree[V, L], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrInvalidSize, n)
	}
	size := 1
	if n > 1 {
		size = 1 << bits.Len(uint(n-1))
	}
	t := &Tree[V, L]{
		cfg:    cfg,
		n:      n,
		size:   size,
		height: bits.Len(uint(size)),
		none:   cfg.Update.Zero(),
		data:   make([]V, 2*size),
		lazy:   make([]L, 2*size),
	}
	zero := cfg.Combine.Zero()
	for k := range t.data {
		t.data[k] = zero
		t.lazy[k] = t.none
	}
	tracer().Infof("lazyseg: new tree with %d leaves (%d padded), height %d", n, size, t.height)
	return t, nil
}

// Build creates a tree with leaves initialized from values. The number of
// leaves is len(values), which must not be 0.
//
// Leaves beyond len(values), up to the next power of two, are padded with
// cfg.Combine.Zero(). They never take part in queries or updates.
func Build[V any, L comparable](cfg Config[V, L], values []V) (*Tree[V, L], error) {
	t, err := New(cfg, len(values))
	if err != nil {
		return nil, err
	}
	copy(t.data[t.size:], values)
	t.rebuild()
	return t, nil
}

// Fill creates a tree with n leaves, all of them set to leaf. Padding leaves
// are set to cfg.Combine.Zero(), as with Build.
func Fill[V any, L comparable](cfg Config[V, L], n int, leaf V) (*Tree[V, L], error) {
	t, err := New(cfg, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		t.data[t.size+i] = leaf
	}
	t.rebuild()
	return t, nil
}

// rebuild recomputes all inner aggregates from the leaves. Tags have to be
// clean.
func (t *Tree[V, L]) rebuild() {
	for k := t.size - 1; k >= 1; k-- {
		t.data[k] = t.cfg.Combine.Add(t.data[2*k], t.data[2*k+1])
	}
}

// Config returns the algebra configuration of the tree.
func (t *Tree[V, L]) Config() Config[V, L] {
	return t.cfg
}

// Len returns the number of leaves the tree has been created with.
func (t *Tree[V, L]) Len() int {
	return t.n
}

// Size returns the number of leaves including padding. It is the smallest
// power of two not less than Len().
func (t *Tree[V, L]) Size() int {
	return t.size
}

// Height returns the number of levels of the tree, where 1 means that the
// root is the single leaf.
func (t *Tree[V, L]) Height() int {
	return t.height
}

// Query returns the combination of the leaves in [l, r), from left to right,
// reflecting every update applied so far. An empty range yields
// cfg.Combine.Zero().
func (t *Tree[V, L]) Query(l, r int) (V, error) {
	if err := t.checkRange(l, r); err != nil {
		var zero V
		return zero, err
	}
	combine := t.cfg.Combine
	if l == r {
		return combine.Zero(), nil
	}
	t.pushPath(l, r)
	accL, accR := combine.Zero(), combine.Zero()
	lo, hi := l+t.size, r+t.size-1
	for lo <= hi {
		if lo&1 == 1 {
			t.push(lo)
			accL = combine.Add(accL, t.data[lo])
			lo++
		}
		if hi&1 == 0 {
			t.push(hi)
			accR = combine.Add(t.data[hi], accR)
			hi--
		}
		lo >>= 1
		hi >>= 1
	}
	return combine.Add(accL, accR), nil
}

// Update applies tag to every leaf in [l, r). An empty range or an identity
// tag leave the tree unchanged.
//
// The range is validated before the tree is touched; on error nothing has
// been modified.
func (t *Tree[V, L]) Update(l, r int, tag L) error {
	if err := t.checkRange(l, r); err != nil {
		return err
	}
	if l == r || tag == t.none {
		return nil
	}
	if tr := tracer(); tr.GetTraceLevel() >= tracing.LevelDebug {
		tr.Debugf("lazyseg: update [%d,%d) with %v", l, r, tag)
	}
	t.pushPath(l, r)
	update := t.cfg.Update
	lo, hi := l+t.size, r+t.size-1
	for lo <= hi {
		if lo&1 == 1 {
			t.lazy[lo] = update.Add(t.lazy[lo], tag)
			t.push(lo)
			lo++
		}
		if hi&1 == 0 {
			t.lazy[hi] = update.Add(t.lazy[hi], tag)
			t.push(hi)
			hi--
		}
		lo >>= 1
		hi >>= 1
	}
	t.pull(l+t.size, r+t.size-1)
	return nil
}

// Get returns the current value of leaf i.
func (t *Tree[V, L]) Get(i int) (V, error) {
	return t.Query(i, i+1)
}

// All returns the combination of all leaves.
func (t *Tree[V, L]) All() V {
	v, _ := t.Query(0, t.n) // [0, n) is always valid
	return v
}

// Values returns the current values of all leaves, in order. It pushes every
// pending update down to the leaves, which costs O(Size()).
func (t *Tree[V, L]) Values() []V {
	for k := 1; k < t.size+t.n; k++ {
		t.push(k) // parents have smaller indices than their children
	}
	values := make([]V, t.n)
	copy(values, t.data[t.size:t.size+t.n])
	return values
}

func (t *Tree[V, L]) checkRange(l, r int) error {
	if l < 0 || l > r || r > t.n {
		return fmt.Errorf("%w: [%d,%d) for %d leaves", ErrInvalidRange, l, r, t.n)
	}
	return nil
}
