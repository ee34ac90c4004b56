// Copyright 2026 The bignum Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command bigcalc is an interactive arbitrary-precision integer calculator
// built on github.com/nkessler/bignum. With no arguments it reads
// expressions from stdin, one per line, and prints each result to stdout.
// With --expr it evaluates a single expression and exits.
package main

import (
	"fmt"
	"os"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"github.com/nkessler/bignum"
	"github.com/nkessler/bignum/internal/calc"
)

var (
	exprFlag    string
	bufferFlag  int64
	noColorFlag bool
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "bigcalc",
	Short: "Arbitrary-precision integer calculator",
	Long: `bigcalc evaluates signed integer arithmetic expressions
(+, -, *, /, unary minus, parentheses) at unbounded precision.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&exprFlag, "expr", "", "evaluate a single expression and exit, instead of reading stdin")
	rootCmd.Flags().Int64Var(&bufferFlag, "buffer", int64(bignum.MaxDecimalDigits), "maximum number of digits accepted in a single numeral literal")
	rootCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "disable colored error output")
	rootCmd.Flags().BoolVar(&verboseFlag, "verbose", false, "trace each evaluated expression to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	limit, err := safecast.Conv[int](bufferFlag)
	if err != nil {
		return fmt.Errorf("--buffer: %w", err)
	}
	bignum.MaxDecimalDigits = limit

	if exprFlag != "" {
		result, err := calc.EvalOne(exprFlag)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", err)
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	}

	repl := calc.New(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), calc.Options{
		Verbose: verboseFlag,
		NoColor: noColorFlag,
	})
	return repl.Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
