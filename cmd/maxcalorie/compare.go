package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/pantry/knapsack"
	"github.com/katalvlaran/pantry/report"
)

var errMismatch = errors.New("solvers disagree on the optimum")

// compareCmd runs both solvers on the same catalog. The capacity must be an
// integer because the dynamic solver requires one.
func (a *app) compareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Run exhaustive and dynamic solvers side by side",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.cfg.options()
			if err != nil {
				return err
			}
			cat, err := a.load()
			if err != nil {
				return err
			}

			reps := make([]report.Report, 0, 2)
			for _, algo := range []knapsack.Algorithm{knapsack.AlgoExhaustive, knapsack.AlgoDynamic} {
				opts.Algo = algo
				rep, err := a.run(cat, opts)
				if err != nil {
					return err
				}
				reps = append(reps, rep)
			}
			if err = report.Write(cmd.OutOrStdout(), a.cfg.Format, reps...); err != nil {
				return err
			}

			if reps[0].TotalCalories != reps[1].TotalCalories {
				a.logger.Warn("solver results differ",
					zap.Float64("exhaustive", reps[0].TotalCalories),
					zap.Float64("dynamic", reps[1].TotalCalories))

				return fmt.Errorf("%w: exhaustive %v, dynamic %v",
					errMismatch, reps[0].TotalCalories, reps[1].TotalCalories)
			}

			return nil
		},
	}
}
