// Package cmd implements the CLI commands using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"ytkit/internal/config"
	"ytkit/internal/render"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Global flags
var (
	flagJSON    bool
	flagDebug   bool
	flagNoColor bool
)

// cfg holds the loaded configuration (merged: defaults < config file < flags).
var cfg *config.Config

var logger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "ytkit",
	Level:  log.InfoLevel,
})

var rootCmd = &cobra.Command{
	Use:   "ytkit",
	Short: "Inspect YouTube URLs and format download metadata",
	Long: `ytkit validates YouTube links, extracts video identifiers, normalizes
quality descriptors and formats sizes, durations and file names.`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Output results as JSON")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "x", false, "Debug logging to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable styled output")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(idCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(sizeCmd)
	rootCmd.AddCommand(durationCmd)
	rootCmd.AddCommand(sanitizeCmd)
	rootCmd.AddCommand(titleCmd)
	rootCmd.AddCommand(qualityCmd)
	rootCmd.AddCommand(dlidCmd)
	rootCmd.AddCommand(greetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads and merges configuration: defaults < config file < CLI flags.
func loadConfig(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// CLI flags override config file values
	if flagJSON {
		cfg.Output = config.OutputJSON
	}
	if flagNoColor {
		cfg.Color = false
	}
	if flagDebug {
		cfg.Debug = true
	}

	// Re-validate after flag overrides
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.Debug {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportTimestamp(true)
	}

	return nil
}

// debugf logs a message if debug mode is enabled.
func debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// printer returns a renderer for the command's stdout.
func printer(cmd *cobra.Command) *render.Printer {
	return render.New(cmd.OutOrStdout(), cfg.JSON(), cfg.Color)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printer(cmd).Emit(map[string]string{"version": Version}, render.Row{Value: Version})
	},
}
