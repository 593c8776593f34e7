// SPDX-License-Identifier: MIT

package dense_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/radiomesh/dense"
	"github.com/stretchr/testify/require"
)

// point is a minimal 2-D coordinate for fixtures.
type point struct{ x, y float64 }

// mustWeighted allocates an n-vertex Weighted graph or fails the test.
func mustWeighted(t testing.TB, n int) *dense.Weighted {
	t.Helper()
	g, err := dense.NewWeighted(n)
	require.NoError(t, err)

	return g
}

// mustUnweighted allocates an n-vertex Unweighted graph or fails the test.
func mustUnweighted(t testing.TB, n int) *dense.Unweighted {
	t.Helper()
	g, err := dense.NewUnweighted(n)
	require.NoError(t, err)

	return g
}

// connectBoth adds a→b and b→a with the same weight.
func connectBoth(t testing.TB, g *dense.Weighted, a, b int, w float64) {
	t.Helper()
	require.NoError(t, g.Connect(a, b, w))
	require.NoError(t, g.Connect(b, a, w))
}

// linkBoth adds a→b and b→a to an unweighted graph.
func linkBoth(t testing.TB, g *dense.Unweighted, a, b int) {
	t.Helper()
	require.NoError(t, g.Connect(a, b))
	require.NoError(t, g.Connect(b, a))
}

// radiusGraph connects every pair of points within radius in both directions,
// weighting each edge with the Euclidean distance.
func radiusGraph(t testing.TB, pts []point, radius float64) *dense.Weighted {
	t.Helper()
	g := mustWeighted(t, len(pts))
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			d := math.Hypot(pts[i].x-pts[j].x, pts[i].y-pts[j].y)
			if d <= radius {
				connectBoth(t, g, i, j, d)
			}
		}
	}

	return g
}

// scenarioPoints is the four-radio fixture: a unit right triangle plus a far radio.
func scenarioPoints() []point {
	return []point{{0, 0}, {1, 0}, {0, 1}, {5, 5}}
}

// randomSymmetric builds an undirected unweighted graph on n vertices where
// each pair is linked with probability p, using a fixed seed.
func randomSymmetric(t testing.TB, n int, p float64, seed int64) *dense.Unweighted {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g := mustUnweighted(t, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if r.Float64() < p {
				linkBoth(t, g, i, j)
			}
		}
	}

	return g
}

// bfsHops returns hop counts from src following forward edges; -1 when unreachable.
func bfsHops(g *dense.Unweighted, src int) []int {
	n := g.Order()
	hops := make([]int, n)
	for i := range hops {
		hops[i] = -1
	}
	hops[src] = 0
	queue := []int{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v := 0; v < n; v++ {
			if g.Adjacent(u, v) && hops[v] < 0 {
				hops[v] = hops[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return hops
}
