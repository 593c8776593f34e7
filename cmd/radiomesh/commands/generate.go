package commands

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/radiomesh/builder"
	"github.com/katalvlaran/radiomesh/internal/config"
	"github.com/katalvlaran/radiomesh/radiofile"
)

func (a *app) generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a random radio scenario to stdout",
		Long: `Generate scatters radios uniformly over a width x height area and writes the
scenario in the line format, or TOML with --toml. --layout places the radios
on a grid, a ring or a star instead, spacing neighbors --spacing apart.

Every layout needs at least one radio; a ring needs three and a star two (the
hub plus one spoke).

A zero seed picks one from the clock and reports it on stderr so a random
scenario can be reproduced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.load(cmd)
			if err != nil {
				return err
			}
			if !(cfg.Width > 0) || !(cfg.Height > 0) || math.IsInf(cfg.Width, 0) || math.IsInf(cfg.Height, 0) {
				return fmt.Errorf("bounds %vx%v: %w", cfg.Width, cfg.Height, config.ErrInvalid)
			}

			if cfg.Count < 1 {
				return fmt.Errorf("count %d (must be ≥ 1): %w", cfg.Count, config.ErrInvalid)
			}

			seed := cfg.Seed
			if seed == 0 && layout(cfg) == config.LayoutRandom {
				seed = time.Now().UnixNano()
				fmt.Fprintf(cmd.ErrOrStderr(), "seed %d\n", seed)
			}

			points, err := layoutPoints(cfg, seed)
			if err != nil {
				return err
			}
			s := &radiofile.Scenario{Points: points, Radius: cfg.Radius}

			if cfg.TOML {
				return radiofile.EncodeTOML(cmd.OutOrStdout(), s)
			}

			return radiofile.Encode(cmd.OutOrStdout(), s)
		},
	}

	f := cmd.Flags()
	f.IntP("count", "n", 10, "number of radios, at least 1 (ring needs 3, star 2)")
	f.Int64("seed", 0, "random seed; 0 picks one from the clock")
	f.Float64("width", builder.DefaultWidth, "area width")
	f.Float64("height", builder.DefaultHeight, "area height")
	f.Float64P("radius", "r", 20, "connectivity radius written to the scenario")
	f.StringP("layout", "l", config.LayoutRandom, "placement: random, grid, ring or star")
	f.Float64("spacing", 10, "neighbor distance for the grid, ring and star layouts")
	f.Bool("toml", false, "write TOML instead of the line format")

	return cmd
}

func layout(cfg config.Config) string {
	if cfg.Layout == "" {
		return config.LayoutRandom
	}

	return strings.ToLower(cfg.Layout)
}

// layoutPoints places cfg.Count radios. The grid is the smallest near-square
// grid holding them, filled row by row; the star uses one radio as the hub.
func layoutPoints(cfg config.Config, seed int64) ([]builder.Point, error) {
	switch layout(cfg) {
	case config.LayoutGrid:
		rows, cols := 0, 0
		if cfg.Count > 0 {
			cols = int(math.Ceil(math.Sqrt(float64(cfg.Count))))
			rows = (cfg.Count + cols - 1) / cols
		}
		points, err := builder.GridPoints(rows, cols, cfg.Spacing)
		if err != nil {
			return nil, err
		}

		return points[:cfg.Count], nil
	case config.LayoutRing:
		return builder.RingPoints(cfg.Count, cfg.Spacing)
	case config.LayoutStar:
		return builder.StarPoints(cfg.Count-1, cfg.Spacing)
	default:
		return builder.RandomPoints(cfg.Count,
			builder.WithSeed(seed),
			builder.WithBounds(cfg.Width, cfg.Height),
		)
	}
}
