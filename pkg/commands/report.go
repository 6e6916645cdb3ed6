package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/runner/report"
	"tableflip.dev/habitus/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	var last string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Display recent check-ins grouped by habit",
		Long: `Report lists check-ins, freezes and notes grouped by habit within the specified time window.

Examples:
  habitus report
  habitus report --last 3d
  habitus report --last 1w2d`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			duration, _, err := timeutil.ParseWindowOr(last, "1w")
			if err != nil {
				return err
			}
			svc, _, err := newService()
			if err != nil {
				return err
			}
			r := report.Report{
				Window:  duration,
				Service: svc,
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&last, "last", "1w", "time window to include (for example 3d, 1w)")
	topLevel.AddCommand(cmd)
}
