// SPDX-License-Identifier: MIT

package dense

import "fmt"

// Unweighted is a dense directed graph with boolean adjacency, stored
// row-major: adj[a*n+b] is true iff the edge a→b exists.
type Unweighted struct {
	n   int
	adj []bool
}

// NewUnweighted returns an Unweighted graph with n vertices and no edges.
// Returns ErrBadShape if n < 0 or n×n overflows int.
func NewUnweighted(n int) (*Unweighted, error) {
	if !validOrder(n) {
		return nil, fmt.Errorf("NewUnweighted(%d): %w", n, ErrBadShape)
	}

	return &Unweighted{n: n, adj: make([]bool, n*n)}, nil
}

// Order returns the number of vertices.
func (g *Unweighted) Order() int { return g.n }

// Connect sets the directed edge a→b. Call it twice for an undirected edge.
// Errors: ErrVertexOutOfRange, ErrSelfLoop.
func (g *Unweighted) Connect(a, b int) error {
	if err := checkPair(g.n, a, b); err != nil {
		return denseErrorf(opConnect, a, b, err)
	}
	if a == b {
		return denseErrorf(opConnect, a, b, ErrSelfLoop)
	}
	g.adj[a*g.n+b] = true

	return nil
}

// Adjacent reports whether the directed edge a→b exists.
func (g *Unweighted) Adjacent(a, b int) bool {
	if checkPair(g.n, a, b) != nil {
		return false
	}

	return g.adj[a*g.n+b]
}

// OutDegree returns the number of edges leaving v (0 for an unknown vertex).
// Complexity: O(n).
func (g *Unweighted) OutDegree(v int) int {
	if v < 0 || v >= g.n {
		return 0
	}
	deg := 0
	for _, set := range g.adj[v*g.n : (v+1)*g.n] {
		if set {
			deg++
		}
	}

	return deg
}
