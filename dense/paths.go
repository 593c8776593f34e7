// SPDX-License-Identifier: MIT

package dense

import "slices"

// Path returns the vertices of a shortest i→j path, both endpoints included.
// Path(i, i) is [i]. Returns ErrUnreachable if j cannot be reached from i.
//
// The path is rebuilt backwards from j by following Predecessor(i, ·) until
// a vertex with no predecessor (a direct neighbor of i) is reached.
// Complexity: O(path length).
func (sp *ShortestPaths) Path(i, j int) ([]int, error) {
	if err := checkPair(sp.n, i, j); err != nil {
		return nil, denseErrorf(opPath, i, j, err)
	}
	hops, ok := sp.Distance(i, j)
	if !ok {
		return nil, denseErrorf(opPath, i, j, ErrUnreachable)
	}
	if i == j {
		return []int{i}, nil
	}

	path := make([]int, 0, hops+1)
	path = append(path, j)
	for p, ok := sp.Predecessor(i, j); ok; p, ok = sp.Predecessor(i, p) {
		path = append(path, p)
	}
	path = append(path, i)
	slices.Reverse(path)

	return path, nil
}

// Diameter returns the largest finite distance over all pairs i < j.
//
// Unreachable pairs are skipped, so on a disconnected graph the value is the
// longest finite shortest path, not a true diameter: check Connected first
// when that matters. Returns 0 for graphs with fewer than two vertices.
// Complexity: O(n²).
func (sp *ShortestPaths) Diameter() int {
	diameter := 0
	for i := 0; i < sp.n; i++ {
		for j := i + 1; j < sp.n; j++ {
			if d := sp.dist[i*sp.n+j]; d != unreachable && d > diameter {
				diameter = d
			}
		}
	}

	return diameter
}

// Connected reports whether every vertex can reach every other vertex.
func (sp *ShortestPaths) Connected() bool {
	return !slices.Contains(sp.dist, unreachable)
}
