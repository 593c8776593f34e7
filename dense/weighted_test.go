// SPDX-License-Identifier: MIT

package dense_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/radiomesh/dense"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeighted_Shape(t *testing.T) {
	_, err := dense.NewWeighted(-1)
	assert.ErrorIs(t, err, dense.ErrBadShape)

	g, err := dense.NewWeighted(0)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Order())
	assert.Equal(t, 0, g.EdgeCount())

	// n*n would wrap around to a tiny buffer.
	_, err = dense.NewWeighted(1 << 32)
	assert.ErrorIs(t, err, dense.ErrBadShape)
	_, err = dense.NewUnweighted(1 << 32)
	assert.ErrorIs(t, err, dense.ErrBadShape)
	_, err = dense.NewUnweighted(-1)
	assert.ErrorIs(t, err, dense.ErrBadShape)
}

// TestWeighted_ConnectValidation covers every guarded precondition of Connect.
func TestWeighted_ConnectValidation(t *testing.T) {
	g := mustWeighted(t, 3)

	cases := []struct {
		name string
		a, b int
		w    float64
		want error
	}{
		{"negative tail", -1, 0, 1, dense.ErrVertexOutOfRange},
		{"head too large", 0, 3, 1, dense.ErrVertexOutOfRange},
		{"self loop", 1, 1, 1, dense.ErrSelfLoop},
		{"NaN", 0, 1, math.NaN(), dense.ErrInvalidWeight},
		{"+Inf", 0, 1, math.Inf(1), dense.ErrInvalidWeight},
		{"-Inf", 0, 1, math.Inf(-1), dense.ErrInvalidWeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, g.Connect(tc.a, tc.b, tc.w), tc.want)
		})
	}
	assert.Equal(t, 0, g.EdgeCount(), "rejected edges must not be stored")

	// math.MaxFloat64 is an ordinary weight now that absence is explicit.
	require.NoError(t, g.Connect(0, 1, math.MaxFloat64))
	w, err := g.WeightOfEdge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, math.MaxFloat64, w)
}

// TestWeighted_RoundTrip sets every off-diagonal cell, overwrites it once,
// and reads back exactly the last value.
func TestWeighted_RoundTrip(t *testing.T) {
	const n = 5
	g := mustWeighted(t, n)
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if a == b {
				continue
			}
			require.NoError(t, g.Connect(a, b, -1))
			require.NoError(t, g.Connect(a, b, float64(a*10+b)+0.25))
		}
	}
	assert.Equal(t, n*(n-1), g.EdgeCount())

	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if a == b {
				assert.False(t, g.HasEdge(a, b))
				continue
			}
			w, err := g.WeightOfEdge(a, b)
			require.NoError(t, err)
			assert.Equal(t, float64(a*10+b)+0.25, w)
		}
	}
}

func TestWeighted_WeightOfMissingEdge(t *testing.T) {
	g := mustWeighted(t, 2)
	require.NoError(t, g.Connect(0, 1, 3))

	_, err := g.WeightOfEdge(1, 0)
	assert.ErrorIs(t, err, dense.ErrEdgeNotFound, "edges are directed")

	_, err = g.WeightOfEdge(0, 2)
	assert.ErrorIs(t, err, dense.ErrVertexOutOfRange)
	assert.False(t, g.HasEdge(0, 2))
}

// TestBifurcate_Projection checks that every present weighted edge, and only
// those, becomes an unweighted edge, and that the projection is idempotent.
func TestBifurcate_Projection(t *testing.T) {
	g := radiusGraph(t, scenarioPoints(), 1.5)
	require.NoError(t, g.Connect(3, 0, 9)) // one directed extra edge

	u1 := g.Bifurcate()
	u2 := g.Bifurcate()
	require.Equal(t, g.Order(), u1.Order())

	for a := 0; a < g.Order(); a++ {
		for b := 0; b < g.Order(); b++ {
			assert.Equal(t, g.HasEdge(a, b), u1.Adjacent(a, b), "(%d,%d)", a, b)
			assert.Equal(t, u1.Adjacent(a, b), u2.Adjacent(a, b), "(%d,%d)", a, b)
		}
	}
	assert.True(t, u1.Adjacent(3, 0))
	assert.False(t, u1.Adjacent(0, 3))
}

// TestBifurcate_NoAliasing ensures that later mutations on either side do
// not leak into the other graph.
func TestBifurcate_NoAliasing(t *testing.T) {
	g := mustWeighted(t, 3)
	u := g.Bifurcate()

	require.NoError(t, g.Connect(0, 1, 1))
	assert.False(t, u.Adjacent(0, 1))

	require.NoError(t, u.Connect(1, 2))
	assert.False(t, g.HasEdge(1, 2))
}
