// SPDX-License-Identifier: MIT
// Package: radiomesh/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context (method name, offending value) is attached with %w via builderErrorf.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a negative point count.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that RandomPoints was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidRadius indicates a negative, NaN or infinite connectivity radius.
var ErrInvalidRadius = errors.New("builder: invalid radius")

// ErrInvalidPoint indicates a point with a NaN or infinite coordinate.
var ErrInvalidPoint = errors.New("builder: invalid point")

// ErrInvalidSpacing indicates a non-positive, NaN or infinite layout spacing.
var ErrInvalidSpacing = errors.New("builder: invalid spacing")

// ErrConstructFailed indicates that the underlying dense graph rejected an
// allocation or an edge, e.g. a distance function returned NaN.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a sentinel with the method name and a formatted detail.
func builderErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
