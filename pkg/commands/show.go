package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/commands/options"
	"tableflip.dev/habitus/pkg/runner/show"
	"tableflip.dev/habitus/pkg/timeutil"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

func addShow(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var (
		window string
		month  string
	)

	cmd := &cobra.Command{
		Use:   "show <habit>",
		Short: "Show a habit's stats, heat map and notes",
		Example: `
habitus show water
habitus show water --window 12w
habitus show water --month 2024-02
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeHabit,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			svc, cfg, err := newService()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("window") {
				window = cfg.GridWindow()
			}
			d, _, err := timeutil.ParseWindow(window)
			if err != nil {
				return err
			}
			s := show.Show{
				Ref:      args[0],
				GridDays: timeutil.WindowDays(d),
				ShowID:   io.ShowID,
				JSON:     oo.JSON,
				Service:  svc,
			}
			if month != "" {
				m, err := time.ParseInLocation("2006-01", month, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --month %q, expected YYYY-MM", month)
				}
				s.Month = &m
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&window, "window", timeutil.DefaultWindow, "Heat map width (for example 12w, 90d).")
	cmd.Flags().StringVar(&month, "month", "", "Show one month as a calendar, YYYY-MM.")
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
