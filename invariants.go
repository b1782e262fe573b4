package lazyseg

import "fmt"

// Check validates the structural invariants of the tree, using eq to compare
// aggregates:
//
//   - every internal node k holds the combination of its children's aggregates,
//     each with the child's own pending update applied;
//   - padding leaves hold Zero() and never carry a pending update.
//
// Check does not push anything and leaves the tree unchanged. It is intended
// for tests and costs O(Size()).
func (t *Tree[V, L]) Check(eq func(a, b V) bool) error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvariant)
	}
	if len(t.data) != 2*t.size || len(t.lazy) != 2*t.size {
		return fmt.Errorf("%w: storage size mismatch (%d, %d for %d leaves)",
			ErrInvariant, len(t.data), len(t.lazy), t.size)
	}
	if t.size&(t.size-1) != 0 || t.n < 1 || t.n > t.size {
		return fmt.Errorf("%w: bad dimensions n=%d size=%d", ErrInvariant, t.n, t.size)
	}
	combine, update := t.cfg.Combine, t.cfg.Update
	effective := func(k int) V {
		if t.lazy[k] == t.none {
			return t.data[k]
		}
		return update.Apply(t.data[k], t.lazy[k])
	}
	for k := t.size - 1; k >= 1; k-- {
		want := combine.Add(effective(2*k), effective(2*k+1))
		if !eq(t.data[k], want) {
			return fmt.Errorf("%w: node %d holds %v, children combine to %v",
				ErrInvariant, k, t.data[k], want)
		}
	}
	zero := combine.Zero()
	for k := t.size + t.n; k < 2*t.size; k++ {
		if t.lazy[k] != t.none {
			return fmt.Errorf("%w: padding leaf %d carries pending update %v",
				ErrInvariant, k-t.size, t.lazy[k])
		}
		if !eq(t.data[k], zero) {
			return fmt.Errorf("%w: padding leaf %d holds %v", ErrInvariant, k-t.size, t.data[k])
		}
	}
	return nil
}
