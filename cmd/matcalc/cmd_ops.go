package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/intmat/matrix"
)

// Output flags, one per command to keep cobra flag ownership simple.
var (
	addOut       string
	mulOut       string
	transposeOut string
	scaleOut     string
	scaleFactor  int
)

// errNotEqual drives the non-zero exit code of `matcalc equal`.
var errNotEqual = errors.New("matrices are not equal")

var addCmd = &cobra.Command{
	Use:   "add A B",
	Short: "Element-wise sum of two matrix files",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadOperand(args[0])
		if err != nil {
			return err
		}
		b, err := loadOperand(args[1])
		if err != nil {
			return err
		}
		sum, err := matrix.Add(a, b)
		if err != nil {
			return fmt.Errorf("add %s %s: %w", args[0], args[1], err)
		}

		return saveResult(sum, addOut)
	},
}

var mulCmd = &cobra.Command{
	Use:   "mul A B",
	Short: "Matrix product of two matrix files",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadOperand(args[0])
		if err != nil {
			return err
		}
		b, err := loadOperand(args[1])
		if err != nil {
			return err
		}
		p, err := matrix.Mul(a, b)
		if err != nil {
			return fmt.Errorf("mul %s %s: %w", args[0], args[1], err)
		}

		return saveResult(p, mulOut)
	},
}

var transposeCmd = &cobra.Command{
	Use:   "transpose A",
	Short: "Transpose of a matrix file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadOperand(args[0])
		if err != nil {
			return err
		}
		tr, err := matrix.Transpose(m)
		if err != nil {
			return fmt.Errorf("transpose %s: %w", args[0], err)
		}

		return saveResult(tr, transposeOut)
	},
}

var scaleCmd = &cobra.Command{
	Use:   "scale A",
	Short: "Multiply every element of a matrix file by a scalar",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := loadOperand(args[0])
		if err != nil {
			return err
		}
		out, err := matrix.Scale(m, scaleFactor)
		if err != nil {
			return fmt.Errorf("scale %s: %w", args[0], err)
		}

		return saveResult(out, scaleOut)
	},
}

var equalCmd = &cobra.Command{
	Use:   "equal A B",
	Short: "Compare two matrix files; exit code 1 when they differ",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadOperand(args[0])
		if err != nil {
			return err
		}
		b, err := loadOperand(args[1])
		if err != nil {
			return err
		}
		if !matrix.Equal(a, b) {
			return errNotEqual
		}
		cmd.Println("equal")

		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addOut, "out", "o", "", "output file (required)")
	_ = addCmd.MarkFlagRequired("out")

	mulCmd.Flags().StringVarP(&mulOut, "out", "o", "", "output file (required)")
	_ = mulCmd.MarkFlagRequired("out")

	transposeCmd.Flags().StringVarP(&transposeOut, "out", "o", "", "output file (required)")
	_ = transposeCmd.MarkFlagRequired("out")

	scaleCmd.Flags().StringVarP(&scaleOut, "out", "o", "", "output file (required)")
	_ = scaleCmd.MarkFlagRequired("out")
	scaleCmd.Flags().IntVarP(&scaleFactor, "factor", "k", 1, "scalar factor")
}
