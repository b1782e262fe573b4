package maxflow

import "fmt"

// Selection is the result of ProjectSelection.
type Selection struct {
	Profit int64
	Chosen []bool
}

// ProjectSelection chooses projects for a maximum profit. Project i earns
// rewards[i] and costs cost. Choosing a project j listed in requires[i]
// forces choosing project i as well.
//
// This is solved as a minimum cut: the source connects to every project with
// its reward, every project connects to the sink with the cost, and every
// dependency is an edge of infinite capacity from j to i. Projects on the
// source side of the cut are chosen; the profit is Σ rewards − maxflow.
func ProjectSelection(rewards []int64, cost int64, requires [][]int) (Selection, error) {
	n := len(rewards)
	if len(requires) > n {
		return Selection{}, fmt.Errorf("%w: dependencies for %d of %d projects",
			ErrInvalidVertex, len(requires), n)
	}
	if cost < 0 {
		return Selection{}, fmt.Errorf("%w: cost %d", ErrInvalidCapacity, cost)
	}
	nw, err := New(n + 2)
	if err != nil {
		return Selection{}, err
	}
	source, sink := n, n+1
	var total int64
	for i, a := range rewards {
		if _, err := nw.AddEdge(source, i, a); err != nil {
			return Selection{}, err
		}
		if _, err := nw.AddEdge(i, sink, cost); err != nil {
			return Selection{}, err
		}
		total += a
	}
	infinite := total + 1 // larger than any cut without dependency edges
	for i, deps := range requires {
		for _, j := range deps {
			if j == source || j == sink {
				return Selection{}, fmt.Errorf("%w: project %d", ErrInvalidVertex, j)
			}
			if _, err := nw.AddEdge(j, i, infinite); err != nil {
				return Selection{}, err
			}
		}
	}
	flow, err := nw.MaxFlow(source, sink)
	if err != nil {
		return Selection{}, err
	}
	side, err := nw.MinCut(source)
	if err != nil {
		return Selection{}, err
	}
	sel := Selection{Profit: total - flow, Chosen: side[:n]}
	tracer().Infof("maxflow: %d projects, profit %d", n, sel.Profit)
	return sel, nil
}
