// SPDX-License-Identifier: MIT

package dense

import (
	"cmp"
	"slices"
)

// Coloring is a proper vertex coloring: Colors[v] is the color of v, in
// [0, Count). Adjacent vertices (edge in either direction) never share a color.
type Coloring struct {
	Colors []int
	Count  int
}

// DegreeOrder returns all vertices sorted by ascending out-degree.
// The sort is stable: vertices of equal degree keep ascending index order,
// which makes the coloring reproducible.
// Complexity: O(n²) for the degrees + O(n log n) for the sort.
func (g *Unweighted) DegreeOrder() []int {
	degree := make([]int, g.n)
	order := make([]int, g.n)
	for v := 0; v < g.n; v++ {
		degree[v] = g.OutDegree(v)
		order[v] = v
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(degree[a], degree[b])
	})

	return order
}

// GreedyColoring colors the graph greedily, highest out-degree first.
//
// Steps:
//  1. Order vertices with DegreeOrder and walk that order from the end.
//  2. For each vertex collect the colors of already-colored neighbors,
//     where an edge in either direction counts (the matrix is read as undirected).
//  3. Take the lowest color no neighbor uses, or open a new one.
//
// The result is an upper bound on the chromatic number, not necessarily tight.
// Complexity: O(n²).
func (g *Unweighted) GreedyColoring() Coloring {
	const uncolored = -1

	order := g.DegreeOrder()
	colors := make([]int, g.n)
	for v := range colors {
		colors[v] = uncolored
	}

	count := 0
	taken := make([]bool, 0, g.n)
	for idx := len(order) - 1; idx >= 0; idx-- {
		v := order[idx]

		taken = taken[:count]
		clear(taken)
		for u := 0; u < g.n; u++ {
			if colors[u] == uncolored {
				continue
			}
			if g.adj[v*g.n+u] || g.adj[u*g.n+v] {
				taken[colors[u]] = true
			}
		}

		color := slices.Index(taken, false)
		if color < 0 {
			color = count
			count++
		}
		colors[v] = color
	}

	return Coloring{Colors: colors, Count: count}
}

// EstimateChromaticNumber returns the number of colors used by GreedyColoring.
// It is 0 for an empty graph and at least 1 otherwise.
func (g *Unweighted) EstimateChromaticNumber() int {
	return g.GreedyColoring().Count
}
