package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool

	logger zerolog.Logger
)

// rootCmd is the base command. See SPEC_FULL.md §6: the CLI surface is
// deliberately minimal — a PDDL front end is out of scope, so every
// subcommand reads the bundled YAML domain/problem stand-in via
// domain.LoadYAML.
var rootCmd = &cobra.Command{
	Use:   "striplan",
	Short: "striplan runs STRIPS-style classical planning over a YAML domain/problem pair",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
		zerolog.DefaultContextLogger = &logger
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(watchCmd)
}
