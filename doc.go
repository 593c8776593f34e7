// Package radiomesh is an in-memory analysis engine for radio networks.
//
// Given radio positions and a connectivity radius it builds a weighted
// graph, finds the minimum spanning tree, projects the graph to hop-count
// reachability, computes all-pairs shortest paths with routes and the
// network diameter, and estimates how many frequencies the radios need
// (greedy chromatic number).
//
// Packages, leaves first:
//
//	disjointset/        union-find forest with iterative, path-compressing Find
//	dense/              dense Weighted/Unweighted graphs: Kruskal, Floyd–Warshall,
//	                    paths, diameter, components, greedy coloring
//	builder/            radius graphs from points, random and regular layouts
//	radiofile/          scenario files: classic line format and TOML
//	analysis/           the end-to-end pipeline with zap logging
//	report/             text, styled and YAML renderings of a result
//	cmd/radiomesh/      the CLI: analyze, generate, version
//
// Quick ASCII example (radius 2, side 2):
//
//	1───2
//	│   │
//	4───3
//
// yields a spanning tree of weight 6.00, diameter 2 and two colors.
//
//	go install github.com/katalvlaran/radiomesh/cmd/radiomesh@latest
package radiomesh
