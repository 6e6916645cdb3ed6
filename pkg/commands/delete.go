package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/runner/remove"
)

func addDelete(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "delete <habit>...",
		Aliases: []string{"rm"},
		Short:   "Delete habits and their history",
		Example: `
habitus delete water
habitus delete 1a2b3c4d gym
`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return habitCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := newService()
			if err != nil {
				return err
			}
			s := remove.Remove{
				Refs:    args,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
