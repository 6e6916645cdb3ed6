package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/runner/archive"
)

func addArchive(topLevel *cobra.Command) {
	list := false

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Snapshot every habit, then clear check-ins, notes and freezes",
		Example: `
habitus archive
habitus archive --list
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, _, err := newService()
			if err != nil {
				return err
			}
			a := archive.Archive{
				List:    list,
				Service: svc,
			}
			err = a.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&list, "list", "l", false, "Only list the archive log.")
	topLevel.AddCommand(cmd)
}
