// Package analysis runs the full radio-network pipeline over a scenario:
//
//  1. build the weighted radius graph (builder.RadiusGraph),
//  2. compute its minimum spanning tree (KruskalMEST),
//  3. project it to an unweighted reachability graph (Bifurcate),
//  4. compute all-pairs shortest paths, routes from the source, the diameter
//     and the radio clusters,
//  5. estimate the chromatic number.
//
// Stages are logged at debug level through an injected zap.Logger.
package analysis

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/radiomesh/builder"
	"github.com/katalvlaran/radiomesh/dense"
	"github.com/katalvlaran/radiomesh/radiofile"
)

// ErrInvalidSource indicates a route source outside [0, n).
var ErrInvalidSource = errors.New("analysis: source vertex out of range")

// Route is the shortest hop path from the source to Target.
// Path and Hops are meaningful only when Reachable is true.
type Route struct {
	Target    int
	Path      []int
	Hops      int
	Reachable bool
}

// Result collects the output of every stage.
type Result struct {
	Radios     int
	Radius     float64
	Tree       []dense.Edge
	TreeWeight float64
	TreeErr    error // set only under WithAllowDisconnected
	Source     int
	Routes     []Route // one per vertex other than Source, ascending Target
	Diameter   int
	Connected  bool    // every radio reaches every other radio
	Clusters   [][]int // connected components, ordered by smallest radio
	Coloring   dense.Coloring
}

// ChromaticNumber returns the number of colors of the greedy estimate.
func (r *Result) ChromaticNumber() int { return r.Coloring.Count }

// Run executes the pipeline on s.
//
// Errors:
//   - builder sentinels (ErrInvalidRadius, ErrInvalidPoint) for a bad scenario;
//   - ErrInvalidSource when the source is not a radio;
//   - dense.ErrNoSingleMST when the radios do not form one connected network.
//     No partial result is returned in that case unless WithAllowDisconnected
//     is set.
func Run(s *radiofile.Scenario, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	log := cfg.logger.With(zap.Int("radios", len(s.Points)), zap.Float64("radius", s.Radius))

	n := len(s.Points)
	if n > 0 && (cfg.source < 0 || cfg.source >= n) {
		return nil, fmt.Errorf("source %d of %d radios: %w", cfg.source, n, ErrInvalidSource)
	}

	res := &Result{Radios: n, Radius: s.Radius, Source: cfg.source}

	start := time.Now()
	g, err := builder.RadiusGraph(s.Points, s.Radius, builder.WithDistanceFn(cfg.distanceFn))
	if err != nil {
		return nil, fmt.Errorf("build graph: %w", err)
	}
	log.Debug("graph built", zap.Int("edges", g.EdgeCount()), zap.Duration("took", time.Since(start)))

	start = time.Now()
	res.Tree, res.TreeWeight, err = g.KruskalMEST()
	switch {
	case err != nil && !cfg.partial:
		return nil, fmt.Errorf("spanning tree: %w", err)
	case err != nil:
		log.Warn("spanning tree unavailable", zap.Error(err))
		res.TreeErr = err
	default:
		log.Debug("spanning tree computed",
			zap.Int("edges", len(res.Tree)),
			zap.Float64("weight", res.TreeWeight),
			zap.Duration("took", time.Since(start)))
	}

	reach := g.Bifurcate()

	start = time.Now()
	sp := reach.ShortestPathsFW()
	res.Routes = routesFrom(sp, cfg.source)
	res.Diameter = sp.Diameter()
	res.Connected = sp.Connected()
	res.Clusters = reach.Components()
	log.Debug("shortest paths computed",
		zap.Int("diameter", res.Diameter),
		zap.Bool("connected", res.Connected),
		zap.Duration("took", time.Since(start)))
	if !res.Connected {
		log.Warn("reachability graph is disconnected; diameter covers reachable pairs only",
			zap.Int("clusters", len(res.Clusters)))
	}

	start = time.Now()
	res.Coloring = reach.GreedyColoring()
	log.Debug("coloring estimated",
		zap.Int("colors", res.Coloring.Count),
		zap.Duration("took", time.Since(start)))

	return res, nil
}

// routesFrom rebuilds the path from src to every other vertex.
func routesFrom(sp *dense.ShortestPaths, src int) []Route {
	n := sp.Order()
	if n == 0 {
		return nil
	}
	routes := make([]Route, 0, n-1)
	for v := 0; v < n; v++ {
		if v == src {
			continue
		}
		r := Route{Target: v}
		if path, err := sp.Path(src, v); err == nil {
			r.Path, r.Hops, r.Reachable = path, len(path)-1, true
		}
		routes = append(routes, r)
	}

	return routes
}
