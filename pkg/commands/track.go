package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/commands/options"
	"tableflip.dev/habitus/pkg/runner/track"
)

func addCheck(topLevel *cobra.Command) {
	cmd := trackCommand(track.CheckIn, false)
	cmd.Use = "check <habit>"
	cmd.Aliases = []string{"done"}
	cmd.Short = "Check in today. Multi-check habits count up, others toggle."
	cmd.Example = `
habitus check water
habitus done pushups
`
	topLevel.AddCommand(cmd)
}

func addUndo(topLevel *cobra.Command) {
	cmd := trackCommand(track.Undo, false)
	cmd.Use = "undo <habit>"
	cmd.Short = "Remove one of today's check-ins from a multi-check habit"
	cmd.Example = `
habitus undo pushups
`
	topLevel.AddCommand(cmd)
}

func addToggle(topLevel *cobra.Command) {
	cmd := trackCommand(track.Toggle, true)
	cmd.Use = "toggle <habit>"
	cmd.Short = "Flip a day between done and not done"
	cmd.Example = `
habitus toggle water --on yesterday
habitus toggle gym --on 2024-1-8
`
	topLevel.AddCommand(cmd)
}

func addFreeze(topLevel *cobra.Command) {
	cmd := trackCommand(track.Freeze, true)
	cmd.Use = "freeze <habit>"
	cmd.Short = "Spend or return a freeze pass on a day"
	cmd.Example = `
habitus freeze water --on yesterday
`
	topLevel.AddCommand(cmd)
}

func trackCommand(action track.Action, withDay bool) *cobra.Command {
	on := &options.OnOptions{}

	cmd := &cobra.Command{
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeHabit,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := newService()
			if err != nil {
				return err
			}
			day, err := on.GetOn(svc.Today())
			if err != nil {
				return err
			}
			t := track.Track{
				Ref:     args[0],
				Action:  action,
				Day:     day,
				Service: svc,
			}
			err = t.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	if withDay {
		options.AddOnArgs(cmd, on)
	}
	return cmd
}
