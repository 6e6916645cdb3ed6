package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/commands/options"
	"tableflip.dev/habitus/pkg/runner/note"
)

func addNote(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	clearNote := false

	cmd := &cobra.Command{
		Use:     "note <habit> [text]",
		Aliases: []string{"notes"},
		Short:   "Set, replace or clear the note for a day",
		Example: `
habitus note read finished chapter 3
habitus note read --on yesterday skipped, too tired
habitus note read --clear
habitus note read
`,
		Args:              cobra.MinimumNArgs(1),
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
			n := note.Note{
				Ref:     args[0],
				Day:     day,
				Service: svc,
			}
			switch {
			case clearNote:
			case len(args) == 1:
				n.List = true
			default:
				n.Text = strings.Join(args[1:], " ")
			}
			err = n.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&clearNote, "clear", false, "Remove the note for the day.")
	options.AddOnArgs(cmd, on)
	topLevel.AddCommand(cmd)
}
