package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/commands/options"
	"tableflip.dev/habitus/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "move <habit> <target>",
		Short: "Move a habit to the position of another habit",
		Example: `
habitus move gym water
`,
		Args: cobra.ExactArgs(2),
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 1 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return habitCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := newService()
			if err != nil {
				return err
			}
			m := move.Move{
				Ref:     args[0],
				Target:  args[1],
				ShowID:  io.ShowID,
				Service: svc,
			}
			err = m.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
