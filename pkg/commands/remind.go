package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/runner/remind"
	"tableflip.dev/habitus/pkg/timeutil"
)

func addRemind(topLevel *cobra.Command) {
	var (
		interval string
		once     bool
	)

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Run the reminder daemon",
		Long: `Remind checks every interval for reminders that are due and prints them.
Each reminder fires at most once per day, even across restarts.`,
		Example: `
habitus remind
habitus remind --interval 1m
habitus remind --once
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			svc, cfg, err := newService()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("interval") {
				interval = cfg.RemindInterval()
			}
			d, _, err := timeutil.ParseWindowOr(interval, timeutil.DefaultInterval)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			r := remind.Remind{
				Interval: d,
				Once:     once,
				Service:  svc,
				Log:      svc.Log,
			}
			err = r.Do(ctx)
			return oo.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&interval, "interval", timeutil.DefaultInterval, "How often to check for due reminders.")
	cmd.Flags().BoolVar(&once, "once", false, "Check once and exit.")
	topLevel.AddCommand(cmd)
}
