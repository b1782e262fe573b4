/*
Package maxflow computes maximum flows and minimum cuts in directed networks,
using Dinic's algorithm: repeatedly build a level graph by breadth-first
search from the source, then saturate it with blocking flows found by
depth-first search, remembering the current arc of every vertex.
*/
package maxflow

import (
	"errors"
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'lazyseg'
func tracer() tracing.Trace {
	return tracing.Select("lazyseg")
}

var (
	// ErrInvalidVertex signals a vertex outside of the network, or a source
	// equal to the sink.
	ErrInvalidVertex = errors.New("maxflow: invalid vertex")
	// ErrInvalidCapacity signals a negative edge capacity.
	ErrInvalidCapacity = errors.New("maxflow: invalid capacity")
	// ErrInvalidEdge signals an unknown edge id.
	ErrInvalidEdge = errors.New("maxflow: invalid edge")
)

// Edge describes an edge of a network together with its flow.
type Edge struct {
	ID       int
	From, To int
	Capacity int64
	Flow     int64
}

// arc is one direction of an edge in the residual network. Edge k is arc 2k,
// its reverse is arc 2k+1.
type arc struct {
	to  int
	cap int64 // residual capacity
}

// Network is a directed flow network over vertices 0…n-1.
// A Network is not safe for concurrent use.
type Network struct {
	n        int
	adj      [][]int // arc ids per vertex
	arcs     []arc
	capacity []int64 // per edge
	level    []int   // BFS depth
	ptr      []int   // current arc per vertex
	queue    []int
}

// New creates a network with n vertices and no edges.
func New(n int) (*Network, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: network needs vertices, have %d", ErrInvalidVertex, n)
	}
	return &Network{
		n:     n,
		adj:   make([][]int, n),
		level: make([]int, n),
		ptr:   make([]int, n),
		queue: make([]int, 0, n),
	}, nil
}

// Len returns the number of vertices.
func (nw *Network) Len() int {
	return nw.n
}

// AddEdge adds a directed edge and returns its id. Parallel edges and loops
// are allowed.
func (nw *Network) AddEdge(from, to int, capacity int64) (int, error) {
	if err := nw.checkVertex(from); err != nil {
		return -1, err
	}
	if err := nw.checkVertex(to); err != nil {
		return -1, err
	}
	if capacity < 0 {
		return -1, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	id := len(nw.capacity)
	nw.capacity = append(nw.capacity, capacity)
	nw.adj[from] = append(nw.adj[from], len(nw.arcs))
	nw.arcs = append(nw.arcs, arc{to: to, cap: capacity})
	nw.adj[to] = append(nw.adj[to], len(nw.arcs))
	nw.arcs = append(nw.arcs, arc{to: from, cap: 0})
	return id, nil
}

// MaxFlow computes a maximum flow from s to t and returns its value. Flows of
// earlier calls are discarded.
func (nw *Network) MaxFlow(s, t int) (int64, error) {
	if err := nw.checkVertex(s); err != nil {
		return 0, err
	}
	if err := nw.checkVertex(t); err != nil {
		return 0, err
	}
	if s == t {
		return 0, fmt.Errorf("%w: source equals sink (%d)", ErrInvalidVertex, s)
	}
	for k, c := range nw.capacity {
		nw.arcs[2*k].cap, nw.arcs[2*k+1].cap = c, 0
	}
	var flow int64
	phases := 0
	for nw.bfs(s, t) {
		phases++
		for i := range nw.ptr {
			nw.ptr[i] = 0
		}
		for {
			pushed := nw.dfs(s, t, math.MaxInt64)
			if pushed == 0 {
				break
			}
			flow += pushed
		}
	}
	tracer().Debugf("maxflow: flow %d from %d to %d after %d phases", flow, s, t, phases)
	return flow, nil
}

// bfs builds the level graph of the residual network.
func (nw *Network) bfs(s, t int) bool {
	for i := range nw.level {
		nw.level[i] = -1
	}
	nw.level[s] = 0
	nw.queue = append(nw.queue[:0], s)
	for len(nw.queue) > 0 {
		v := nw.queue[0]
		nw.queue = nw.queue[1:]
		for _, a := range nw.adj[v] {
			if w := nw.arcs[a].to; nw.arcs[a].cap > 0 && nw.level[w] < 0 {
				nw.level[w] = nw.level[v] + 1
				nw.queue = append(nw.queue, w)
			}
		}
	}
	return nw.level[t] >= 0
}

// dfs finds an augmenting path in the level graph and returns the flow
// pushed along it.
func (nw *Network) dfs(v, t int, limit int64) int64 {
	if v == t || limit == 0 {
		return limit
	}
	for ; nw.ptr[v] < len(nw.adj[v]); nw.ptr[v]++ {
		a := nw.adj[v][nw.ptr[v]]
		w := nw.arcs[a].to
		if nw.arcs[a].cap == 0 || nw.level[w] != nw.level[v]+1 {
			continue
		}
		if pushed := nw.dfs(w, t, min(limit, nw.arcs[a].cap)); pushed > 0 {
			nw.arcs[a].cap -= pushed
			nw.arcs[a^1].cap += pushed
			return pushed
		}
	}
	return 0
}

// Flow returns the flow on an edge after the last call to MaxFlow.
func (nw *Network) Flow(id int) (int64, error) {
	if id < 0 || id >= len(nw.capacity) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidEdge, id)
	}
	return nw.arcs[2*id+1].cap, nil
}

// Edges returns all edges with their current flows, in order of their ids.
func (nw *Network) Edges() []Edge {
	edges := make([]Edge, len(nw.capacity))
	for k := range edges {
		edges[k] = Edge{
			ID:       k,
			From:     nw.arcs[2*k+1].to,
			To:       nw.arcs[2*k].to,
			Capacity: nw.capacity[k],
			Flow:     nw.arcs[2*k+1].cap,
		}
	}
	return edges
}

// UsedEdges returns the edges carrying a positive flow after the last call
// to MaxFlow.
func (nw *Network) UsedEdges() []Edge {
	var used []Edge
	for _, e := range nw.Edges() {
		if e.Flow > 0 {
			used = append(used, e)
		}
	}
	return used
}

// MinCut returns the source side of a minimum cut after the last call to
// MaxFlow: the vertices reachable from s in the residual network.
func (nw *Network) MinCut(s int) ([]bool, error) {
	if err := nw.checkVertex(s); err != nil {
		return nil, err
	}
	reached := make([]bool, nw.n)
	reached[s] = true
	stack := []int{s}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, a := range nw.adj[v] {
			if w := nw.arcs[a].to; nw.arcs[a].cap > 0 && !reached[w] {
				reached[w] = true
				stack = append(stack, w)
			}
		}
	}
	return reached, nil
}

func (nw *Network) checkVertex(v int) error {
	if v < 0 || v >= nw.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrInvalidVertex, v, nw.n)
	}
	return nil
}
