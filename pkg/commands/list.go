package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/commands/options"
	"tableflip.dev/habitus/pkg/runner/get"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addList(topLevel *cobra.Command) {
	co := &options.CategoryOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "List habits with today's state and streaks",
		Example: `
habitus list
habitus list --category fitness
habitus list --json
`,
		Args: cobra.NoArgs,
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
			s := get.Get{
				Category: c,
				ShowID:   io.ShowID,
				JSON:     oo.JSON,
				Service:  svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddCategoryArgs(cmd, co)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
