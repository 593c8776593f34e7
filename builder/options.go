// SPDX-License-Identifier: MIT
// Package: radiomesh/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builders themselves MUST NOT panic.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.

package builder

import (
	"math"
	"math/rand"
)

// Option customizes a builder call by mutating a builderConfig before
// construction begins.
type Option func(*builderConfig)

// WithDistanceFn sets the metric used to weight edges and to compare
// against the radius. Panics on nil.
func WithDistanceFn(fn DistanceFn) Option {
	if fn == nil {
		panic("builder: WithDistanceFn(nil)")
	}
	return func(c *builderConfig) {
		c.distanceFn = fn
	}
}

// WithRand provides an explicit RNG for RandomPoints. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use it in tests and examples to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBounds sets the area [0,width)×[0,height) RandomPoints draws from.
// Panics unless both sides are positive and finite.
func WithBounds(width, height float64) Option {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		panic("builder: WithBounds requires positive finite width and height")
	}
	return func(c *builderConfig) {
		c.width, c.height = width, height
	}
}
