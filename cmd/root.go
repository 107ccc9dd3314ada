// Package cmd wires the three analysis pipelines into one CLI.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/darealghost7/data-vis/pkg/config"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string

	cfg    *config.Config
	logger zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "datavis",
	Short: "Statistical summaries and chart rendering for three small datasets",
	Long: `datavis runs three independent analysis pipelines:

  steps   generate a synthetic step-count cohort and report statistics
  income  clean the adult income dataset and render a four-panel chart
  salary  plot experience vs salary with per-location regression fits`,
	SilenceUsage: true,
}

// Execute is the entry point called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentPreRunE = setup
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./datavis.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "logging level: trace|debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "logging format: text|json")
}

// setup loads configuration and builds the logger. Flags override the file.
func setup(_ *cobra.Command, _ []string) error {
	c, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	cfg = c

	flags := rootCmd.PersistentFlags()
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
	}

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	var w io.Writer
	switch strings.ToLower(cfg.LogFormat) {
	case "json":
		w = os.Stderr
	case "text":
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	default:
		return fmt.Errorf("invalid logging format: %s", cfg.LogFormat)
	}

	logger = zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return nil
}
