// SPDX-License-Identifier: MIT

package builder_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/radiomesh/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linkRadius sits just above the unit spacing used below.
const linkRadius = 1 + 1e-9

func TestGridPoints(t *testing.T) {
	pts, err := builder.GridPoints(2, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, []builder.Point{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
		{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
	}, pts)

	g, err := builder.RadiusGraph(pts, linkRadius)
	require.NoError(t, err)
	// 2×3 grid: 3 vertical + 4 horizontal links, stored both ways.
	assert.Equal(t, 14, g.EdgeCount())
	assert.False(t, g.HasEdge(0, 4), "diagonal out of range")
}

func TestRingPoints(t *testing.T) {
	const n = 8
	pts, err := builder.RingPoints(n, 1)
	require.NoError(t, err)
	require.Len(t, pts, n)
	for i := range pts {
		d := builder.Euclidean(pts[i], pts[(i+1)%n])
		assert.InDelta(t, 1.0, d, 1e-9, "chord %d", i)
	}

	g, err := builder.RadiusGraph(pts, linkRadius)
	require.NoError(t, err)
	assert.Equal(t, 2*n, g.EdgeCount(), "a cycle")
	assert.Equal(t, n/2, g.Bifurcate().ShortestPathsFW().Diameter())
}

func TestStarPoints(t *testing.T) {
	pts, err := builder.StarPoints(5, 2)
	require.NoError(t, err)
	require.Len(t, pts, 6)
	assert.Equal(t, builder.Point{}, pts[0])
	for i := 1; i < len(pts); i++ {
		assert.InDelta(t, 2.0, math.Hypot(pts[i].X, pts[i].Y), 1e-9)
	}

	g, err := builder.RadiusGraph(pts, 2+1e-9)
	require.NoError(t, err)
	assert.Equal(t, 10, g.EdgeCount(), "hub to each spoke, both ways")
	assert.Equal(t, 2, g.Bifurcate().EstimateChromaticNumber())
}

func TestLayouts_Errors(t *testing.T) {
	_, err := builder.GridPoints(0, 3, 1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.RingPoints(2, 1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.StarPoints(0, 1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err = builder.GridPoints(1, 1, bad)
		assert.ErrorIs(t, err, builder.ErrInvalidSpacing, "%v", bad)
		_, err = builder.RingPoints(3, bad)
		assert.ErrorIs(t, err, builder.ErrInvalidSpacing, "%v", bad)
		_, err = builder.StarPoints(1, bad)
		assert.ErrorIs(t, err, builder.ErrInvalidSpacing, "%v", bad)
	}
}
