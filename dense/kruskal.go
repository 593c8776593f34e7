// SPDX-License-Identifier: MIT

package dense

import "github.com/katalvlaran/radiomesh/disjointset"

// Edge is a weighted directed edge From→To, the unit of a spanning tree.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// KruskalMEST computes a minimum (Euclidean) spanning tree with Kruskal's
// algorithm, reading the matrix as an undirected graph.
//
// Steps:
//  1. n == 0 → ErrNoSingleMST; n == 1 → empty tree, weight 0.
//  2. Repeat exactly n-1 times:
//     scan every cell row-major for the smallest present weight (i,j) whose
//     endpoints lie in different components. Only a strictly smaller weight
//     replaces the current candidate, so ties keep row-major scan order.
//     The diagonal is always empty, and find(i) == find(i) would skip it anyway.
//  3. No candidate before n-1 edges are collected → ErrNoSingleMST.
//     A partial forest is never returned.
//
// Returns the tree edges in insertion order (ascending weight) and their sum.
// Complexity: O(n³) time (n-1 full scans), O(n) extra memory.
func (g *Weighted) KruskalMEST() ([]Edge, float64, error) {
	if g.n == 0 {
		return nil, 0, ErrNoSingleMST
	}

	var (
		tree     = make([]Edge, 0, g.n-1)
		forest   = disjointset.New(g.n)
		total    float64
		i, j     int
		idx      int
		found    bool
		best     Edge
		rootI    int
		rowStart int
	)

	for k := 0; k < g.n-1; k++ {
		found = false

		for i = 0; i < g.n; i++ {
			rowStart = i * g.n
			rootI = forest.Find(i)
			for j = 0; j < g.n; j++ {
				idx = rowStart + j
				if !g.present[idx] {
					continue
				}
				if found && g.weights[idx] >= best.Weight {
					continue // only a strictly lighter edge can win
				}
				if rootI == forest.Find(j) {
					continue // would close a cycle
				}
				best = Edge{From: i, To: j, Weight: g.weights[idx]}
				found = true
			}
		}

		if !found {
			return nil, 0, ErrNoSingleMST
		}

		tree = append(tree, best)
		total += best.Weight
		forest.Union(best.From, best.To)
	}

	return tree, total, nil
}
