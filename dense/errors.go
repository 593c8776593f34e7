// SPDX-License-Identifier: MIT

package dense

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every message is prefixed with "dense:"; callers match
// them with errors.Is, never by string.
var (
	// ErrBadShape is returned when a graph is requested with a negative vertex count.
	ErrBadShape = errors.New("dense: invalid vertex count")

	// ErrVertexOutOfRange indicates a vertex index outside [0, n).
	ErrVertexOutOfRange = errors.New("dense: vertex out of range")

	// ErrSelfLoop indicates an attempt to connect a vertex to itself.
	ErrSelfLoop = errors.New("dense: self-loops are not allowed")

	// ErrInvalidWeight indicates a NaN or ±Inf edge weight.
	ErrInvalidWeight = errors.New("dense: invalid edge weight")

	// ErrEdgeNotFound is returned by WeightOfEdge when the edge does not exist.
	ErrEdgeNotFound = errors.New("dense: edge not found")

	// ErrNoSingleMST indicates the graph has more than one connected component
	// (or no vertices), so no single spanning tree exists.
	ErrNoSingleMST = errors.New("dense: no single MST exists for a disconnected graph")

	// ErrUnreachable indicates that no path leads from the source to the target.
	ErrUnreachable = errors.New("dense: vertex unreachable")
)

// denseErrorf attaches the operation and vertex context to a sentinel.
func denseErrorf(op string, a, b int, err error) error {
	return fmt.Errorf("%s(%d,%d): %w", op, a, b, err)
}
