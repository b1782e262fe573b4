package lazyseg

// Node is a copy of the state of a single tree node, for inspection only.
type Node[V, L any] struct {
	Index     int  // 1-based node index; leaf i has index Size()+i
	Aggregate V    // stored aggregate, without Pending
	Pending   L    // update not yet pushed to the children
	Dirty     bool // Pending is not the identity update
	Padding   bool // node covers padding leaves only
}

// Snapshot holds copies of all nodes of a tree, level by level, starting with
// the root level.
type Snapshot[V, L any] struct {
	Len    int
	Levels [][]Node[V, L]
}

// Snapshot copies the current internal state of the tree. It does not push
// pending updates, so it shows the tree exactly as it is, which is what
// debugging output wants to see. Modifying the snapshot does not affect the
// tree.
func (t *Tree[V, L]) Snapshot() Snapshot[V, L] {
	s := Snapshot[V, L]{
		Len:    t.n,
		Levels: make([][]Node[V, L], t.height),
	}
	for d := 0; d < t.height; d++ {
		first := 1 << d
		level := make([]Node[V, L], first)
		span := t.size >> d // leaves covered by a node on this level
		for i := range level {
			k := first + i
			level[i] = Node[V, L]{
				Index:     k,
				Aggregate: t.data[k],
				Pending:   t.lazy[k],
				Dirty:     t.lazy[k] != t.none,
				Padding:   i*span >= t.n,
			}
		}
		s.Levels[d] = level
	}
	return s
}
