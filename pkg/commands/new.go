package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/commands/options"
	"tableflip.dev/habitus/pkg/habit"
	"tableflip.dev/habitus/pkg/runner/add"
	"tableflip.dev/habitus/pkg/snake"
)

func addNew(topLevel *cobra.Command) {
	ho := &options.HabitOptions{}
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}
	var title string

	cmd := &cobra.Command{
		Use:     "new [title]",
		Aliases: []string{"add"},
		Short:   "Create a habit",
		Example: `
habitus new drink water --icon 💧 --category health
habitus new gym --days mon,wed,fri --target 3 --freeze 2
habitus new pushups --multi --remind 07:30 --remind 18:00
habitus new -i
`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if !i.Interactive {
				return nil
			}
			if title == "" {
				var err error
				if title, err = snake.Text("Title", cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
					return err
				}
			}
			ask := snake.PromptUI(cmd.InOrStdin(), cmd.OutOrStdout(), map[string][]string{
				"category": options.CategoryChoices(),
			})
			return snake.Fill(cmd, []string{"interactive", "show-id", "no-remind", "help", "verbose"}, ask)
		},
		Args: func(cmd *cobra.Command, args []string) error {
			if i.Interactive && len(args) == 0 {
				return nil
			}
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			h := &habit.Habit{Title: title, ActiveDays: habit.AllDays()}
			if err := ho.Apply(cmd, h); err != nil {
				return err
			}
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := add.Add{
				Habit:   h,
				ShowID:  io.ShowID,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddHabitArgs(cmd, ho)
	options.AddShowIDArgs(cmd, io)
	options.InteractiveArgs(cmd, i)
	topLevel.AddCommand(cmd)
}
