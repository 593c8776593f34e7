// SPDX-License-Identifier: MIT

package builder

import "math"

// Point is a radio position in the plane.
type Point struct {
	X float64 `toml:"x" yaml:"x"`
	Y float64 `toml:"y" yaml:"y"`
}

// valid reports whether both coordinates are finite.
func (p Point) valid() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// DistanceFn measures the distance between two points. It must be
// symmetric, non-negative and finite for finite inputs.
type DistanceFn func(a, b Point) float64

// Euclidean is the straight-line distance √(dx²+dy²).
func Euclidean(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Manhattan is the taxicab distance |dx|+|dy|.
func Manhattan(a, b Point) float64 {
	return math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)
}

// Chebyshev is the chessboard distance max(|dx|, |dy|).
func Chebyshev(a, b Point) float64 {
	return math.Max(math.Abs(a.X-b.X), math.Abs(a.Y-b.Y))
}
