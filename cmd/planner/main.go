// Package main is the planner CLI entry point (spec §6).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagFixed    bool
	flagFlexible bool
	flagAdd      bool
	flagMax      bool
	flagFF       bool
)

var rootCmd = &cobra.Command{
	Use:   "planner <problem-path>",
	Short: "Solve a FOND HTN planning problem",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("planner: building logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		return run(logger.Sugar(), args[0], resolveVariant(), resolveHeuristic())
	},
}

func init() {
	rootCmd.Flags().BoolVar(&flagFixed, "fixed", false, "use A* + de-order + AO* strong check")
	rootCmd.Flags().BoolVar(&flagFlexible, "flexible", false, "use AO* directly on the initial network (default)")
	rootCmd.MarkFlagsMutuallyExclusive("fixed", "flexible")

	rootCmd.Flags().BoolVar(&flagAdd, "add", false, "use the additive delete-relaxation heuristic")
	rootCmd.Flags().BoolVar(&flagMax, "max", false, "use the max-propagation delete-relaxation heuristic")
	rootCmd.Flags().BoolVar(&flagFF, "ff", false, "use the relaxed-plan-extraction heuristic")
	rootCmd.MarkFlagsMutuallyExclusive("add", "max", "ff")
}

func resolveVariant() solverVariant {
	if flagFixed {
		return variantFixed
	}

	return variantFlexible
}

func resolveHeuristic() heuristicChoice {
	switch {
	case flagAdd:
		return heuristicAdd
	case flagMax:
		return heuristicMax
	case flagFF:
		return heuristicFF
	default:
		return heuristicDefault
	}
}

func main() {
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
