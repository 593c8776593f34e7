// SPDX-License-Identifier: MIT

// Package dense implements the radio-network graph engine over densely
// numbered vertices 0..n-1 stored as adjacency matrices.
//
// What:
//
//   - Weighted: directed graph with real edge weights. Each matrix cell is an
//     explicit present/absent value, so "no edge" never collides with a
//     legitimate weight. Owns Kruskal's minimum spanning tree (KruskalMEST)
//     and the unweighted projection (Bifurcate).
//   - Unweighted: directed graph with boolean adjacency. Owns Floyd–Warshall
//     all-pairs shortest paths over hop counts (ShortestPathsFW), the graph
//     diameter and a greedy chromatic-number estimate.
//
// Why matrices:
//
//	Radio networks built from a connectivity radius are small and often
//	dense; O(n²) storage keeps every edge query O(1) and lets the O(n³)
//	Floyd–Warshall run over flat row-major buffers.
//
// Conventions:
//
//   - An undirected edge is two directed edges with equal weight.
//   - Self-loops are rejected (ErrSelfLoop); the diagonal is always empty.
//   - Public mutators and queries validate vertex indices and return
//     ErrVertexOutOfRange instead of panicking.
//   - Nothing is synchronized. Build a graph on one goroutine, then share it
//     read-only.
//
// Complexity:
//
//   - Connect, WeightOfEdge, HasEdge: O(1).
//   - Bifurcate: O(n²).
//   - KruskalMEST: O(n³) (a full matrix scan per tree edge) + O(α(n)) finds.
//   - ShortestPathsFW: O(n³) time, O(n²) memory.
//   - EstimateChromaticNumber: O(n²) + O(n log n) for the stable degree sort.
//
// Errors:
//
//   - ErrBadShape:         negative vertex count.
//   - ErrVertexOutOfRange: vertex index outside [0, n).
//   - ErrSelfLoop:         a == b in Connect.
//   - ErrInvalidWeight:    NaN or ±Inf weight.
//   - ErrEdgeNotFound:     WeightOfEdge on an absent edge.
//   - ErrNoSingleMST:      KruskalMEST on a disconnected (or empty) graph.
//   - ErrUnreachable:      Path to a vertex that cannot be reached.
package dense
