// SPDX-License-Identifier: MIT

// Package builder turns radio positions into graphs for the dense engine.
//
// What:
//
//   - RadiusGraph: connects every unordered pair of points whose distance is
//     within the connectivity radius, in both directions, weighted by that
//     distance. The result is a *dense.Weighted ready for KruskalMEST.
//   - RandomPoints: seeded, uniformly scattered radio positions for fixtures,
//     benchmarks and the CLI "generate" command.
//
// Options (functional, applied in order; later overrides earlier):
//
//   - WithDistanceFn(fn) : distance metric (default Euclidean).
//   - WithSeed(seed)     : deterministic RNG for RandomPoints.
//   - WithRand(r)        : explicit RNG for RandomPoints.
//   - WithBounds(w, h)   : RandomPoints area [0,w)×[0,h) (default 100×100).
//
// Option constructors panic on nonsensical values (programmer error).
// Builders never panic; they return the sentinels from errors.go.
//
// Complexity:
//
//   - RadiusGraph: O(n²) distance evaluations, O(n²) memory.
//   - RandomPoints: O(n).
package builder
