// SPDX-License-Identifier: MIT
// Package: radiomesh/builder
//
// layouts.go — regular radio placements.
//
// Contract (all layouts):
//   • spacing is the distance between neighboring radios; it must be a
//     positive finite number (else ErrInvalidSpacing).
//   • Points are emitted in a stable, documented order, so vertex i of the
//     resulting graph is always the same radio.
//   • Under RadiusGraph with a radius just above spacing (rounding in the
//     trigonometric layouts) the links are exactly the intended ones:
//     grid → 4-neighborhood, ring (n ≥ 4) → cycle, star (spokes ≤ 5) → hub
//     plus spokes.
//
// Complexity: O(n) for every layout.

package builder

import "math"

// Method names used in error context.
const (
	MethodGridPoints = "GridPoints"
	MethodRingPoints = "RingPoints"
	MethodStarPoints = "StarPoints"
)

// Layout minima.
const (
	minGridDim = 1
	minRing    = 3
	minSpokes  = 1
)

// GridPoints places rows×cols radios on an orthogonal grid, row-major:
// point r*cols+c is (c*spacing, r*spacing).
func GridPoints(rows, cols int, spacing float64) ([]Point, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, builderErrorf(MethodGridPoints, ErrTooFewVertices,
			"rows=%d, cols=%d (each must be ≥ %d)", rows, cols, minGridDim)
	}
	if err := checkSpacing(MethodGridPoints, spacing); err != nil {
		return nil, err
	}

	points := make([]Point, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			points = append(points, Point{X: float64(c) * spacing, Y: float64(r) * spacing})
		}
	}

	return points, nil
}

// RingPoints places n radios evenly on a circle centered at the origin,
// counter-clockwise from the positive x axis, so that consecutive radios
// (including n-1 and 0) are spacing apart.
func RingPoints(n int, spacing float64) ([]Point, error) {
	if n < minRing {
		return nil, builderErrorf(MethodRingPoints, ErrTooFewVertices, "n=%d (must be ≥ %d)", n, minRing)
	}
	if err := checkSpacing(MethodRingPoints, spacing); err != nil {
		return nil, err
	}

	// chord = 2·R·sin(π/n)
	step := 2 * math.Pi / float64(n)
	circle := spacing / (2 * math.Sin(math.Pi/float64(n)))
	points := make([]Point, n)
	for i := range points {
		angle := step * float64(i)
		points[i] = Point{X: circle * math.Cos(angle), Y: circle * math.Sin(angle)}
	}

	return points, nil
}

// StarPoints places a hub at the origin (point 0) and spokes radios around
// it at distance spacing, evenly spread counter-clockwise from the positive
// x axis (points 1..spokes).
func StarPoints(spokes int, spacing float64) ([]Point, error) {
	if spokes < minSpokes {
		return nil, builderErrorf(MethodStarPoints, ErrTooFewVertices, "spokes=%d (must be ≥ %d)", spokes, minSpokes)
	}
	if err := checkSpacing(MethodStarPoints, spacing); err != nil {
		return nil, err
	}

	step := 2 * math.Pi / float64(spokes)
	points := make([]Point, spokes+1)
	for i := 1; i <= spokes; i++ {
		angle := step * float64(i-1)
		points[i] = Point{X: spacing * math.Cos(angle), Y: spacing * math.Sin(angle)}
	}

	return points, nil
}

func checkSpacing(method string, spacing float64) error {
	if !(spacing > 0) || math.IsInf(spacing, 0) {
		return builderErrorf(method, ErrInvalidSpacing, "spacing=%g", spacing)
	}

	return nil
}
