// Package config resolves radiomesh settings from command-line flags,
// RADIOMESH_* environment variables and an optional YAML config file, in
// that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/radiomesh/builder"
	"github.com/katalvlaran/radiomesh/internal/logging"
	"github.com/katalvlaran/radiomesh/report"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "RADIOMESH"

// DefaultFile is the config file name searched for in the working and home
// directories when no explicit path is given.
const DefaultFile = ".radiomesh.yaml"

// Log rotation defaults.
const (
	DefaultLogMaxSize    = 10
	DefaultLogMaxBackups = 3
)

// Layout names accepted by generate.
const (
	LayoutRandom = "random"
	LayoutGrid   = "grid"
	LayoutRing   = "ring"
	LayoutStar   = "star"
)

// Metric names.
const (
	MetricEuclidean = "euclidean"
	MetricManhattan = "manhattan"
	MetricChebyshev = "chebyshev"
)

var (
	// ErrInvalid indicates a setting with an unsupported value.
	ErrInvalid = errors.New("config: invalid setting")
	// ErrRead indicates a config file that exists but cannot be read or parsed.
	ErrRead = errors.New("config: cannot read config file")
)

// Config holds every setting the CLI understands. Keys match flag names.
type Config struct {
	Format            string  `mapstructure:"format"`
	Source            int     `mapstructure:"source"` // 1-based radio number
	Radius            float64 `mapstructure:"radius"` // >0 overrides the scenario radius
	Metric            string  `mapstructure:"metric"`
	AllowDisconnected bool    `mapstructure:"allow-disconnected"`
	Verbose           bool    `mapstructure:"verbose"`

	LogFile       string `mapstructure:"log-file"`
	LogMaxSize    int    `mapstructure:"log-max-size"`    // megabytes
	LogMaxBackups int    `mapstructure:"log-max-backups"` // rotated files kept
	LogCompress   bool   `mapstructure:"log-compress"`

	Count   int     `mapstructure:"count"`
	Seed    int64   `mapstructure:"seed"`
	Width   float64 `mapstructure:"width"`
	Height  float64 `mapstructure:"height"`
	Layout  string  `mapstructure:"layout"`
	Spacing float64 `mapstructure:"spacing"`
	TOML    bool    `mapstructure:"toml"`
}

// Load binds flags to v and decodes the merged settings.
//
// When file is empty, DefaultFile is looked up in "." and the user's home
// directory and a missing file is not an error. An explicit file must exist.
func Load(v *viper.Viper, flags *pflag.FlagSet, file string) (Config, error) {
	var cfg Config

	v.SetDefault("log-max-size", DefaultLogMaxSize)
	v.SetDefault("log-max-backups", DefaultLogMaxBackups)
	v.SetDefault("log-compress", false)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return cfg, fmt.Errorf("bind flags: %w", err)
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("%s: %w: %v", file, ErrRead, err)
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFile, filepath.Ext(DefaultFile)))
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return cfg, fmt.Errorf("%w: %v", ErrRead, err)
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode settings: %w", err)
	}

	return cfg, cfg.Validate()
}

// Validate reports the first setting with an unsupported value.
func (c Config) Validate() error {
	switch c.Format {
	case "", report.FormatText, report.FormatStyled, report.FormatYAML:
	default:
		return fmt.Errorf("format %q: %w", c.Format, ErrInvalid)
	}
	if _, ok := metrics[c.metric()]; !ok {
		return fmt.Errorf("metric %q: %w", c.Metric, ErrInvalid)
	}
	switch strings.ToLower(c.Layout) {
	case "", LayoutRandom, LayoutGrid, LayoutRing, LayoutStar:
	default:
		return fmt.Errorf("layout %q: %w", c.Layout, ErrInvalid)
	}
	if c.LogMaxSize < 0 || c.LogMaxBackups < 0 {
		return fmt.Errorf("log rotation %d MB × %d: %w", c.LogMaxSize, c.LogMaxBackups, ErrInvalid)
	}
	if c.Radius < 0 {
		return fmt.Errorf("radius %v: %w", c.Radius, ErrInvalid)
	}

	return nil
}

var metrics = map[string]builder.DistanceFn{
	MetricEuclidean: builder.Euclidean,
	MetricManhattan: builder.Manhattan,
	MetricChebyshev: builder.Chebyshev,
}

func (c Config) metric() string {
	if c.Metric == "" {
		return MetricEuclidean
	}

	return strings.ToLower(c.Metric)
}

// Logging returns the logger options for these settings.
func (c Config) Logging() logging.Options {
	return logging.Options{
		Verbose:    c.Verbose,
		File:       c.LogFile,
		MaxSize:    c.LogMaxSize,
		MaxBackups: c.LogMaxBackups,
		Compress:   c.LogCompress,
	}
}

// DistanceFn returns the builder metric named by Metric.
func (c Config) DistanceFn() builder.DistanceFn {
	if fn, ok := metrics[c.metric()]; ok {
		return fn
	}

	return builder.Euclidean
}
