package lazyseg

// push applies the pending update of node k to k's aggregate and defers it to
// k's children, if k has any.
//
// A child's own pending update has been issued before the one of its parent,
// so the parent's update composes on the right.
func (t *Tree[V, L]) push(k int) {
	pending := t.lazy[k]
	if pending == t.none {
		return
	}
	update := t.cfg.Update
	if k < t.size {
		t.lazy[2*k] = update.Add(t.lazy[2*k], pending)
		t.lazy[2*k+1] = update.Add(t.lazy[2*k+1], pending)
	}
	t.data[k] = update.Apply(t.data[k], pending)
	t.lazy[k] = t.none
}

// pushPath pushes, from the root downwards, every ancestor of the boundary
// leaves of [l, r) together with its sibling. Afterwards every node visited by
// the bottom-up decomposition of [l, r) has no unpushed ancestor.
//
// l < r is required.
func (t *Tree[V, L]) pushPath(l, r int) {
	lo, hi := l+t.size, r+t.size-1
	for d := t.height - 1; d >= 0; d-- {
		a, b := lo>>d, hi>>d
		t.pushWithSibling(a)
		if a>>1 != b>>1 {
			t.pushWithSibling(b)
		}
	}
}

func (t *Tree[V, L]) pushWithSibling(k int) {
	t.push(k)
	if k > 1 {
		t.push(k ^ 1)
	}
}

// pull recomputes the aggregates of the ancestors of the boundary leaves lo
// and hi (inclusive) which are not aligned with the boundary, bottom-up.
// These are exactly the nodes above the canonical nodes of an update.
func (t *Tree[V, L]) pull(lo, hi int) {
	combine := t.cfg.Combine
	for d := 1; d < t.height; d++ {
		mask := 1<<d - 1
		if lo&mask != 0 {
			k := lo >> d
			t.data[k] = combine.Add(t.data[2*k], t.data[2*k+1])
		}
		if (hi+1)&mask != 0 {
			k := hi >> d
			t.data[k] = combine.Add(t.data[2*k], t.data[2*k+1])
		}
	}
}
