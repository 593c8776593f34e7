// Package commands wires the radiomesh cobra command tree.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/radiomesh/internal/config"
)

// Version is stamped at build time with -ldflags "-X ...commands.Version=...".
var Version = "dev"

// app carries per-invocation state shared by the subcommands.
type app struct {
	v       *viper.Viper
	cfgFile string
}

// NewRootCmd builds a fresh command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "radiomesh",
		Short: "Radio network analysis",
		Long: `radiomesh reads radio positions and a connectivity radius and reports the
minimum spanning tree, hop routes from a source radio, the network diameter
and an estimate of how many frequencies the radios need.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default ./"+config.DefaultFile+" or ~/"+config.DefaultFile+")")
	root.PersistentFlags().BoolP("verbose", "v", false, "log every pipeline stage")
	root.PersistentFlags().String("log-file", "", "write logs to this file, rotated by size, instead of stderr")

	root.AddCommand(a.analyzeCmd(), a.generateCmd(), versionCmd())

	return root
}

// load resolves the settings for cmd from its flags, env and config file.
func (a *app) load(cmd *cobra.Command) (config.Config, error) {
	return config.Load(a.v, cmd.Flags(), a.cfgFile)
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the radiomesh version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "radiomesh", Version)
		},
	}
}
