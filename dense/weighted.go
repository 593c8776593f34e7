// SPDX-License-Identifier: MIT

package dense

import (
	"fmt"
	"math"
)

// Operation names used when wrapping sentinels.
const (
	opConnect      = "Connect"
	opWeightOfEdge = "WeightOfEdge"
	opPath         = "Path"
)

// Weighted is a dense directed graph with real-valued edge weights.
//
// The matrix is stored row-major in two parallel buffers: weights holds the
// value, present says whether the cell holds an edge at all. Absent cells
// keep weight 0 and are never read as weights.
type Weighted struct {
	n       int
	weights []float64
	present []bool
	edges   int // number of present cells
}

// NewWeighted returns a Weighted graph with n vertices and no edges.
// Returns ErrBadShape if n < 0 or n×n overflows int.
// Complexity: O(n²) time and memory.
func NewWeighted(n int) (*Weighted, error) {
	if !validOrder(n) {
		return nil, fmt.Errorf("NewWeighted(%d): %w", n, ErrBadShape)
	}

	return &Weighted{
		n:       n,
		weights: make([]float64, n*n),
		present: make([]bool, n*n),
	}, nil
}

// Order returns the number of vertices.
func (g *Weighted) Order() int { return g.n }

// EdgeCount returns the number of directed edges currently stored.
func (g *Weighted) EdgeCount() int { return g.edges }

// Connect creates (or overwrites) the directed edge a→b with the given weight.
// An undirected edge is made by calling Connect(a, b, w) and Connect(b, a, w).
//
// Errors: ErrVertexOutOfRange, ErrSelfLoop, ErrInvalidWeight.
// Complexity: O(1).
func (g *Weighted) Connect(a, b int, weight float64) error {
	if err := checkPair(g.n, a, b); err != nil {
		return denseErrorf(opConnect, a, b, err)
	}
	if a == b {
		return denseErrorf(opConnect, a, b, ErrSelfLoop)
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return denseErrorf(opConnect, a, b, ErrInvalidWeight)
	}

	idx := a*g.n + b
	if !g.present[idx] {
		g.present[idx] = true
		g.edges++
	}
	g.weights[idx] = weight

	return nil
}

// HasEdge reports whether the directed edge a→b exists.
// Out-of-range vertices simply have no edges.
func (g *Weighted) HasEdge(a, b int) bool {
	if checkPair(g.n, a, b) != nil {
		return false
	}

	return g.present[a*g.n+b]
}

// WeightOfEdge returns the weight of the directed edge a→b.
// Returns ErrEdgeNotFound if the edge does not exist.
// Complexity: O(1).
func (g *Weighted) WeightOfEdge(a, b int) (float64, error) {
	if err := checkPair(g.n, a, b); err != nil {
		return 0, denseErrorf(opWeightOfEdge, a, b, err)
	}
	idx := a*g.n + b
	if !g.present[idx] {
		return 0, denseErrorf(opWeightOfEdge, a, b, ErrEdgeNotFound)
	}

	return g.weights[idx], nil
}

// Bifurcate returns a new Unweighted graph with the same vertex count in
// which a→b is set iff a→b exists here. The receiver is not modified and
// the result shares no storage with it.
// Complexity: O(n²).
func (g *Weighted) Bifurcate() *Unweighted {
	out := &Unweighted{n: g.n, adj: make([]bool, len(g.present))}
	copy(out.adj, g.present)

	return out
}

// validOrder reports whether an n×n matrix can be allocated without the
// cell count overflowing int.
func validOrder(n int) bool {
	return n >= 0 && (n == 0 || n <= math.MaxInt/n)
}

// checkPair validates both endpoints against the vertex count n.
func checkPair(n, a, b int) error {
	if a < 0 || a >= n || b < 0 || b >= n {
		return ErrVertexOutOfRange
	}

	return nil
}
