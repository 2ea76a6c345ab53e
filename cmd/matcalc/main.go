// Command matcalc is a calculator over integer matrix files in the
// plain-text format of package textcodec.
//
// Compute commands (add, mul, transpose, scale) read operand files, run one
// pure matrix operation and save the result. Generator commands (identity,
// random) create files from scratch. equal compares two files and reports
// through the exit code; show pretty-prints a file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/intmat/matrix"
	"github.com/katalvlaran/intmat/textcodec"
)

var (
	// Global flags
	verbose    bool
	strict     bool
	configPath string

	// Logger; nil until the command tree runs. Tests inject their own
	// (e.g. zap.NewNop()) before Execute and PersistentPreRunE keeps it.
	logger *zap.Logger
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "matcalc",
	Short: "matcalc - integer matrix file calculator",
	Long: `matcalc operates on integer matrices stored as plain text:
one row per line, decimal values separated by single spaces.

Dimensions are inferred from file content; blank lines are skipped.
All randomness is seeded and reproducible.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize logger; an already-injected logger wins.
		if logger != nil {
			return nil
		}
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false,
		"reject ragged rows and non-integer tokens when reading files")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"optional TOML config with generator defaults (seed, min, max)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(mulCmd)
	rootCmd.AddCommand(transposeCmd)
	rootCmd.AddCommand(scaleCmd)
	rootCmd.AddCommand(equalCmd)
	rootCmd.AddCommand(identityCmd)
	rootCmd.AddCommand(randomCmd)
	rootCmd.AddCommand(showCmd)
}

// decodeOpts maps the global --strict flag onto textcodec options.
func decodeOpts() []textcodec.Option {
	if strict {
		return []textcodec.Option{textcodec.WithStrict()}
	}

	return nil
}

// loadOperand reads one matrix file, logging its discovered shape.
func loadOperand(path string) (*matrix.Matrix, error) {
	m, err := textcodec.Load(path, decodeOpts()...)
	if err != nil {
		return nil, err
	}
	r, c := m.Shape()
	logger.Debug("loaded matrix",
		zap.String("path", path), zap.Int("rows", r), zap.Int("cols", c))

	return m, nil
}

// saveResult writes the result matrix and logs the destination.
func saveResult(m *matrix.Matrix, path string) error {
	if err := textcodec.Save(m, path); err != nil {
		return err
	}
	r, c := m.Shape()
	logger.Debug("saved matrix",
		zap.String("path", path), zap.Int("rows", r), zap.Int("cols", c))

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
