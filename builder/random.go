// SPDX-License-Identifier: MIT

package builder

// RandomPoints scatters n points uniformly over the configured bounds
// (WithBounds, default DefaultWidth×DefaultHeight).
//
// An RNG is mandatory so that every generated network can be reproduced:
// pass WithSeed or WithRand, otherwise ErrNeedRandSource is returned.
// n < 0 returns ErrTooFewVertices; n == 0 returns an empty slice.
// Complexity: O(n).
func RandomPoints(n int, opts ...Option) ([]Point, error) {
	if n < 0 {
		return nil, builderErrorf(MethodRandomPoints, ErrTooFewVertices, "n must be ≥ 0, got %d", n)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, builderErrorf(MethodRandomPoints, ErrNeedRandSource, "use WithSeed or WithRand")
	}

	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			X: cfg.rng.Float64() * cfg.width,
			Y: cfg.rng.Float64() * cfg.height,
		}
	}

	return points, nil
}
