package analysis

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/radiomesh/builder"
)

// Option configures Run.
type Option func(*config)

type config struct {
	logger     *zap.Logger
	source     int
	distanceFn builder.DistanceFn
	partial    bool
}

func defaultConfig() config {
	return config{
		logger:     zap.NewNop(),
		source:     0,
		distanceFn: builder.Euclidean,
	}
}

// WithLogger routes stage logs to logger. A nil logger keeps the no-op default.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSource sets the vertex routes are reported from (default 0).
func WithSource(v int) Option {
	return func(c *config) {
		c.source = v
	}
}

// WithDistanceFn sets the metric used to build the radius graph.
func WithDistanceFn(fn builder.DistanceFn) Option {
	return func(c *config) {
		if fn != nil {
			c.distanceFn = fn
		}
	}
}

// WithAllowDisconnected keeps the pipeline going when the radios do not form
// one network: the spanning-tree failure is recorded in Result.TreeErr and
// the remaining stages still run.
func WithAllowDisconnected(allow bool) Option {
	return func(c *config) {
		c.partial = allow
	}
}
