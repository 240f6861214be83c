package main

import (
	"github.com/spf13/cobra"
)

func newPlanCmd() *cobra.Command {
	var flags rangeFlags
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the split plan for a period without writing anything",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := flags.dateRange()
			if err != nil {
				return err
			}
			out, err := newPlanPrinter(flags.format, cmd.OutOrStdout())
			if err != nil {
				return err
			}

			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			plan, err := a.export.Plan(cmd.Context(), r)
			if err != nil {
				return err
			}
			return out.Plan(plan)
		},
	}
	flags.register(cmd)
	return cmd
}
