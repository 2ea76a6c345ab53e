package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/intmat/matrix"
)

var (
	identityOut  string
	identitySize int

	randomOut  string
	randomRows int
	randomCols int
	randomMin  int
	randomMax  int
	randomSeed int64
)

var identityCmd = &cobra.Command{
	Use:   "identity",
	Short: "Write an N×N identity matrix",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := matrix.New(identitySize, identitySize)
		if err != nil {
			return fmt.Errorf("identity n=%d: %w", identitySize, err)
		}
		if err = m.Identity(); err != nil {
			return fmt.Errorf("identity n=%d: %w", identitySize, err)
		}

		return saveResult(m, identityOut)
	},
}

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Write an R×C matrix of uniform random integers in [min,max]",
	Long: `Writes an R×C matrix of integers drawn uniformly from [min,max].

Generation is deterministic: the same seed always produces the same file.
Defaults for --seed, --min and --max may come from the --config TOML file;
explicitly set flags win over the config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Overlay order: built-in defaults < config file < explicit flags.
		if configPath != "" {
			cfg, err := loadGenConfig(configPath)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") && cfg.seedSet {
				randomSeed = cfg.seed
			}
			if !cmd.Flags().Changed("min") && cfg.minSet {
				randomMin = cfg.min
			}
			if !cmd.Flags().Changed("max") && cfg.maxSet {
				randomMax = cfg.max
			}
		}
		logger.Debug("generating random matrix",
			zap.Int("rows", randomRows), zap.Int("cols", randomCols),
			zap.Int("min", randomMin), zap.Int("max", randomMax),
			zap.Int64("seed", randomSeed))

		m, err := matrix.New(randomRows, randomCols)
		if err != nil {
			return fmt.Errorf("random %dx%d: %w", randomRows, randomCols, err)
		}
		if err = m.Randomize(randomMin, randomMax, matrix.WithSeed(randomSeed)); err != nil {
			return fmt.Errorf("random [%d,%d]: %w", randomMin, randomMax, err)
		}

		return saveResult(m, randomOut)
	},
}

var showCmd = &cobra.Command{
	Use:   "show A",
	Short: "Pretty-print a matrix file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadOperand(args[0])
		if err != nil {
			return err
		}
		r, c := m.Shape()
		cmd.Printf("%dx%d\n", r, c)
		cmd.Print(m.String())

		return nil
	},
}

func init() {
	identityCmd.Flags().StringVarP(&identityOut, "out", "o", "", "output file (required)")
	_ = identityCmd.MarkFlagRequired("out")
	identityCmd.Flags().IntVarP(&identitySize, "size", "n", 0, "matrix dimension (required)")
	_ = identityCmd.MarkFlagRequired("size")

	randomCmd.Flags().StringVarP(&randomOut, "out", "o", "", "output file (required)")
	_ = randomCmd.MarkFlagRequired("out")
	randomCmd.Flags().IntVarP(&randomRows, "rows", "r", 0, "row count (required)")
	_ = randomCmd.MarkFlagRequired("rows")
	randomCmd.Flags().IntVarP(&randomCols, "cols", "c", 0, "column count (required)")
	_ = randomCmd.MarkFlagRequired("cols")
	randomCmd.Flags().IntVar(&randomMin, "min", 0, "inclusive lower bound")
	randomCmd.Flags().IntVar(&randomMax, "max", 9, "inclusive upper bound")
	randomCmd.Flags().Int64Var(&randomSeed, "seed", 0, "RNG seed (0 = fixed default stream)")
}
