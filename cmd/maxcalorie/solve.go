package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pantry/report"
)

func (a *app) solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Select the maximum-calorie subset within --capacity",
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
			rep, err := a.run(cat, opts)
			if err != nil {
				return err
			}

			return report.Write(cmd.OutOrStdout(), a.cfg.Format, rep)
		},
	}
	cmd.Flags().StringVarP(&a.cfg.Algo, "algo", "a", a.cfg.Algo, "solver: auto|dynamic|exhaustive")

	return cmd
}
