package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/commands/options"
	"tableflip.dev/habitus/pkg/habit"
	"tableflip.dev/habitus/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	ho := &options.HabitOptions{}
	var title string

	cmd := &cobra.Command{
		Use:   "edit <habit>",
		Short: "Change a habit's settings, keeping its history",
		Example: `
habitus edit water --title "drink more water"
habitus edit gym --days mon,thu --no-remind
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeHabit,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := edit.Edit{
				Ref:   args[0],
				Title: title,
				Apply: func(h *habit.Habit) error {
					return ho.Apply(cmd, h)
				},
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title.")
	options.AddHabitArgs(cmd, ho)
	topLevel.AddCommand(cmd)
}
