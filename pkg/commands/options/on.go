package options

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/calendar"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions selects the day a command acts on.
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a day, example: --on="2024-2-28", --on="2/28" or --on=yesterday. Defaults to today.`)
}

// GetOn returns the day key selected relative to today. An empty flag is
// today.
func (o *OnOptions) GetOn(today time.Time) (string, error) {
	switch strings.ToLower(strings.TrimSpace(o.OnString)) {
	case "", "today":
		return calendar.DayKey(today), nil
	case "yesterday":
		return calendar.DayKey(today.AddDate(0, 0, -1)), nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, time.Local)
	if err != nil {
		// Let the year be the same.
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, time.Local)
		if err != nil {
			return "", fmt.Errorf("invalid --on %q: %w", o.OnString, err)
		}
		t = t.AddDate(today.Year(), 0, 0)
		// Habits only look back, so 12/30 said on 1/3 means last year.
		if calendar.DayKey(t) > calendar.DayKey(today) {
			t = t.AddDate(-1, 0, 0)
		}
	}
	return calendar.DayKey(t), nil
}
