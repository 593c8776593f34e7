// SPDX-License-Identifier: MIT
// Package: radiomesh/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • distanceFn = Euclidean
//   • rng        = nil      (RandomPoints refuses to guess a seed)
//   • bounds     = 100 × 100

package builder

import "math/rand"

// Default RandomPoints area.
const (
	DefaultWidth  = 100.0
	DefaultHeight = 100.0
)

// builderConfig aggregates all knobs used by the builders.
type builderConfig struct {
	distanceFn DistanceFn
	rng        *rand.Rand
	width      float64
	height     float64
}

// newBuilderConfig starts from the defaults and applies opts in order.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		distanceFn: Euclidean,
		width:      DefaultWidth,
		height:     DefaultHeight,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
