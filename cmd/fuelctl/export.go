package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var flags rangeFlags
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the period's split lines as sales records",
		Long: `export builds the split plan and creates one sales record per line.
Lines that fail are reported and not retried; the command exits non-zero when
any line failed.`,
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

			result, err := a.export.Run(cmd.Context(), r)
			if err != nil {
				return err
			}
			if err := out.Result(result); err != nil {
				return err
			}
			if result.Failed > 0 {
				return fmt.Errorf("%d of %d lines failed", result.Failed, result.Failed+result.Created)
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}
