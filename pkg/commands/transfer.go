package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/runner/transfer"
)

func addExport(topLevel *cobra.Command) {
	var (
		format string
		path   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every habit as JSON or CSV",
		Example: `
habitus export > habits.json
habitus export --format csv --file habits.csv
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, _, err := newService()
			if err != nil {
				return err
			}
			e := transfer.Export{
				Format:  format,
				Path:    path,
				Service: svc,
			}
			err = e.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&format, "format", app.FormatJSON, "One of 'json' or 'csv'.")
	cmd.Flags().StringVarP(&path, "file", "f", "", "Write to a file instead of stdout.")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{app.FormatJSON, app.FormatCSV}, cobra.ShellCompDirectiveNoFileComp
	})
	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Merge habits from a JSON export, skipping ids already present",
		Example: `
habitus import habits.json
cat habits.json | habitus import
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, _, err := newService()
			if err != nil {
				return err
			}
			i := transfer.Import{
				In:      cmd.InOrStdin(),
				Service: svc,
			}
			if len(args) == 1 {
				i.Path = args[0]
			}
			err = i.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
