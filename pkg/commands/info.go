package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the store and where habits are kept.",
		Example: `
habitus info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, cfg, err := newService()
			if err != nil {
				return err
			}
			s := info.Info{
				Config:  cfg,
				Service: svc,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
