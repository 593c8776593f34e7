// Package builder contains unit tests for the configuration primitives
// (builderConfig and Option) to ensure correct application and override behavior.
package builder

import (
	"math/rand"
	"testing"
)

// TestConfigDefaults verifies the deterministic defaults of newBuilderConfig.
func TestConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	if got := cfg.distanceFn(Point{}, Point{X: 3, Y: 4}); got != 5 {
		t.Errorf("default distanceFn: expected Euclidean 5, got %v", got)
	}
	if cfg.rng != nil {
		t.Errorf("default rng: expected nil, got %v", cfg.rng)
	}
	if cfg.width != DefaultWidth || cfg.height != DefaultHeight {
		t.Errorf("default bounds: expected %v×%v, got %v×%v", DefaultWidth, DefaultHeight, cfg.width, cfg.height)
	}
}

// TestOptionsOverride verifies that options apply in order (later wins)
// and that nil options are skipped.
func TestOptionsOverride(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig(
		WithDistanceFn(Manhattan),
		nil,
		WithDistanceFn(Chebyshev),
		WithBounds(1, 2),
		WithBounds(3, 4),
	)
	if got := cfg.distanceFn(Point{}, Point{X: 3, Y: 4}); got != 4 {
		t.Errorf("distanceFn override: expected Chebyshev 4, got %v", got)
	}
	if cfg.width != 3 || cfg.height != 4 {
		t.Errorf("bounds override: expected 3×4, got %v×%v", cfg.width, cfg.height)
	}
}

// TestRandOptions verifies that WithSeed and WithRand with equal seeds
// yield identical sequences and that the last RNG option wins.
func TestRandOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(42))
	b := newBuilderConfig(WithRand(rand.New(rand.NewSource(1))), WithRand(rand.New(rand.NewSource(42))))
	for i := 0; i < 5; i++ {
		if x, y := a.rng.Int63(), b.rng.Int63(); x != y {
			t.Fatalf("draw %d: expected equal sequences, got %d and %d", i, x, y)
		}
	}
}
