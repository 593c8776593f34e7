package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/radiomesh/analysis"
	"github.com/katalvlaran/radiomesh/internal/config"
	"github.com/katalvlaran/radiomesh/internal/logging"
	"github.com/katalvlaran/radiomesh/radiofile"
	"github.com/katalvlaran/radiomesh/report"
)

// DefaultScenario is read by analyze when no file argument is given.
const DefaultScenario = "GraphData.txt"

func (a *app) analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a radio scenario",
		Long: `Analyze reads a scenario (line format, or TOML for *.toml files) and prints
the spanning tree, routes from the source radio, the diameter and the
chromatic number estimate. Radios are numbered from 1.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.load(cmd)
			if err != nil {
				return err
			}
			path := DefaultScenario
			if len(args) == 1 {
				path = args[0]
			}

			logger, closeLog := logging.New(cfg.Logging())
			defer func() {
				_ = logger.Sync()
				_ = closeLog()
			}()
			logger = logger.With(zap.String("scenario", path))

			s, err := radiofile.Load(path)
			if err != nil {
				return err
			}
			if cfg.Radius > 0 {
				logger.Debug("radius overridden", zap.Float64("from", s.Radius), zap.Float64("to", cfg.Radius))
				s.Radius = cfg.Radius
			}

			res, err := analysis.Run(s,
				analysis.WithLogger(logger),
				analysis.WithSource(cfg.Source-1),
				analysis.WithDistanceFn(cfg.DistanceFn()),
				analysis.WithAllowDisconnected(cfg.AllowDisconnected),
			)
			if err != nil {
				return fmt.Errorf("analyze %s: %w", path, err)
			}

			return report.Write(cmd.OutOrStdout(), cfg.Format, report.FromResult(res))
		},
	}

	f := cmd.Flags()
	f.StringP("format", "f", report.FormatText, "output format: text, styled or yaml")
	f.IntP("source", "s", 1, "radio routes are reported from, numbered from 1")
	f.Float64P("radius", "r", 0, "override the scenario radius when > 0")
	f.String("metric", config.MetricEuclidean, "distance metric: euclidean, manhattan or chebyshev")
	f.Bool("allow-disconnected", false, "keep going when the radios do not form one network")

	return cmd
}
