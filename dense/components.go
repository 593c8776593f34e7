// SPDX-License-Identifier: MIT

package dense

import "slices"

// Components groups the vertices into connected components, treating an
// edge in either direction as a link. Each component is sorted ascending and
// components are ordered by their smallest vertex.
//
// Time:   O(n²) (one adjacency row and column scan per vertex).
// Memory: O(n) for visited flags and the queue.
func (g *Unweighted) Components() [][]int {
	seen := make([]bool, g.n)
	var comps [][]int

	for v0 := 0; v0 < g.n; v0++ {
		if seen[v0] {
			continue
		}
		// BFS to collect component
		queue := []int{v0}
		seen[v0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for w := 0; w < g.n; w++ {
				if seen[w] || !(g.adj[u*g.n+w] || g.adj[w*g.n+u]) {
					continue
				}
				seen[w] = true
				queue = append(queue, w)
			}
		}
		slices.Sort(queue)
		comps = append(comps, queue)
	}

	return comps
}
