package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/commands/options"
	"tableflip.dev/habitus/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "stats [habit]",
		Short: "Streaks, totals, weekly progress and badges",
		Example: `
habitus stats
habitus stats water
habitus stats --category mind
`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeHabit,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			c, err := co.GetCategory()
			if err != nil {
				return err
			}
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := stats.Stats{
				Category: c,
				ShowID:   io.ShowID,
				Service:  svc,
			}
			if len(args) == 1 {
				s.Ref = args[0]
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddCategoryArgs(cmd, co)
	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
