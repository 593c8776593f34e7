// SPDX-License-Identifier: MIT

package dense

// Sentinel cell values of a ShortestPaths table.
const (
	// unreachable marks a pair with no path. It is never used in arithmetic.
	unreachable = -1

	// NoVertex is the predecessor of a pair that has none: the pair is the
	// same vertex, directly adjacent, or unreachable.
	NoVertex = -1
)

// ShortestPaths is the all-pairs shortest-path table of an Unweighted graph:
// a hop distance and a predecessor for every ordered pair (i, j).
// It is computed wholesale by ShortestPathsFW and never updated afterwards.
type ShortestPaths struct {
	n    int
	dist []int // row-major hop counts, unreachable when no path exists
	pred []int // row-major predecessor of j on a shortest i→j path, or NoVertex
}

// ShortestPathsFW computes all-pairs shortest hop counts with Floyd–Warshall.
//
// Initialization:
//
//	dist(i,i) = 0; dist(i,j) = 1 if the edge i→j exists, else unreachable;
//	pred(i,j) = NoVertex for every pair.
//
// Relaxation, loop order fixed (k → i → j):
//
//	if dist(i,k) and dist(k,j) are both finite and dist(i,k)+dist(k,j) is
//	strictly smaller than dist(i,j), update dist(i,j) and set pred(i,j) to
//	the vertex right before j on the k→j leg: pred(k,j), or k itself when
//	k→j is a single hop.
//
// Unreachable operands are checked before summing, so no overflow can occur.
// Complexity: O(n³) time, O(n²) memory.
func (g *Unweighted) ShortestPathsFW() *ShortestPaths {
	n := g.n
	sp := &ShortestPaths{
		n:    n,
		dist: make([]int, n*n),
		pred: make([]int, n*n),
	}

	// Seed distances from the forward adjacency.
	var i, j, k int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			idx := i*n + j
			sp.pred[idx] = NoVertex
			switch {
			case i == j:
				sp.dist[idx] = 0
			case g.adj[idx]:
				sp.dist[idx] = 1
			default:
				sp.dist[idx] = unreachable
			}
		}
	}

	var (
		baseI, baseK int
		ik, kj, cand int
		ij           int
	)
	dist, pred := sp.dist, sp.pred
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			baseI = i * n
			ik = dist[baseI+k]
			if ik == unreachable {
				continue // no route i→k, nothing to relax through k
			}
			for j = 0; j < n; j++ {
				kj = dist[baseK+j]
				if kj == unreachable {
					continue
				}
				cand = ik + kj
				ij = dist[baseI+j]
				if ij != unreachable && cand >= ij {
					continue // strict improvement only
				}
				dist[baseI+j] = cand
				if p := pred[baseK+j]; p != NoVertex {
					pred[baseI+j] = p
				} else {
					pred[baseI+j] = k
				}
			}
		}
	}

	return sp
}

// Order returns the number of vertices the table was computed for.
func (sp *ShortestPaths) Order() int { return sp.n }

// Distance returns the hop count of a shortest i→j path and true, or
// 0 and false when j is unreachable from i (or an index is out of range).
func (sp *ShortestPaths) Distance(i, j int) (int, bool) {
	if checkPair(sp.n, i, j) != nil {
		return 0, false
	}
	d := sp.dist[i*sp.n+j]
	if d == unreachable {
		return 0, false
	}

	return d, true
}

// Reachable reports whether a path i→j exists.
func (sp *ShortestPaths) Reachable(i, j int) bool {
	_, ok := sp.Distance(i, j)

	return ok
}

// Predecessor returns the vertex immediately preceding j on a shortest i→j
// path. The boolean is false (and the vertex NoVertex) when i == j, when i
// and j are adjacent, or when j is unreachable.
func (sp *ShortestPaths) Predecessor(i, j int) (int, bool) {
	if checkPair(sp.n, i, j) != nil {
		return NoVertex, false
	}
	p := sp.pred[i*sp.n+j]

	return p, p != NoVertex
}
