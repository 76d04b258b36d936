// Command cdecli is a diagnostic tool over the collision detection
// engine: it loads an instance file, registers the container, and
// reports the result of a single trial placement or the timing of a
// batch of them. It is not the nesting optimizer or its CLI (spec §1
// Non-goals) — just a debugging aid over the library.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cdecli",
		Short: "Diagnostic CLI over the collision detection engine",
	}

	rootCmd.AddCommand(inspectCmd())
	rootCmd.AddCommand(benchCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func inspectCmd() *cobra.Command {
	var itemID string
	var dx, dy, theta float64
	var mode string

	cmd := &cobra.Command{
		Use:   "inspect [instance-path]",
		Short: "Load an instance and report the collision result of one trial placement",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runInspect(args[0], itemID, dx, dy, theta, mode)
		},
	}

	cmd.Flags().StringVar(&itemID, "item", "", "item id from the instance's catalog")
	cmd.Flags().Float64Var(&dx, "x", 0, "trial placement X translation")
	cmd.Flags().Float64Var(&dy, "y", 0, "trial placement Y translation")
	cmd.Flags().Float64Var(&theta, "theta", 0, "trial placement rotation, radians")
	cmd.Flags().StringVar(&mode, "mode", "detect", "query mode: detect or collect")
	_ = cmd.MarkFlagRequired("item")
	return cmd
}

func benchCmd() *cobra.Command {
	var itemID string
	var n int

	cmd := &cobra.Command{
		Use:   "bench [instance-path]",
		Short: "Run repeated detect queries against a static instance and report per-query timing",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runBench(args[0], itemID, n)
		},
	}

	cmd.Flags().StringVar(&itemID, "item", "", "item id from the instance's catalog")
	cmd.Flags().IntVar(&n, "n", 1000, "number of trial placements to query")
	_ = cmd.MarkFlagRequired("item")
	return cmd
}
