// SPDX-License-Identifier: MIT

package builder

import (
	"math"

	"github.com/katalvlaran/radiomesh/dense"
)

// Method names used in error context.
const (
	MethodRadiusGraph  = "RadiusGraph"
	MethodRandomPoints = "RandomPoints"
)

// RadiusGraph builds the connectivity graph of a radio network: vertex i is
// points[i], and every unordered pair {i, j} with distance(i, j) ≤ radius is
// connected in both directions with weight distance(i, j).
//
// Errors:
//   - ErrInvalidRadius:   radius < 0, NaN or ±Inf.
//   - ErrInvalidPoint:    a coordinate is NaN or ±Inf.
//   - ErrConstructFailed: the distance function produced an unusable weight.
//
// Complexity: O(n²) time and memory.
func RadiusGraph(points []Point, radius float64, opts ...Option) (*dense.Weighted, error) {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius < 0 {
		return nil, builderErrorf(MethodRadiusGraph, ErrInvalidRadius, "radius=%g", radius)
	}
	for i, p := range points {
		if !p.valid() {
			return nil, builderErrorf(MethodRadiusGraph, ErrInvalidPoint, "point %d = (%g, %g)", i, p.X, p.Y)
		}
	}
	cfg := newBuilderConfig(opts...)

	g, err := dense.NewWeighted(len(points))
	if err != nil {
		return nil, builderErrorf(MethodRadiusGraph, ErrConstructFailed, "%v", err)
	}

	// Upper triangle only; each accepted pair is mirrored.
	var d float64
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d = cfg.distanceFn(points[i], points[j])
			if !(d <= radius) {
				continue // farther than radius, or NaN
			}
			if err = g.Connect(i, j, d); err != nil {
				return nil, builderErrorf(MethodRadiusGraph, ErrConstructFailed, "%v", err)
			}
			if err = g.Connect(j, i, d); err != nil {
				return nil, builderErrorf(MethodRadiusGraph, ErrConstructFailed, "%v", err)
			}
		}
	}

	return g, nil
}
