// Package show provides the runner logic for the detail view of a habit.
package show

import (
	"context"
	"errors"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/habit"
	"tableflip.dev/habitus/pkg/printers"
	"tableflip.dev/habitus/pkg/transfer"
)

// Show prints a habit's stats, heat map and notes.
type Show struct {
	Ref string
	// GridDays is the heat map width in days.
	GridDays int
	// Month, when set, prints that month as a calendar instead of the heat
	// map.
	Month   *time.Time
	ShowID  bool
	JSON    bool
	Service *app.Service
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no service")
	}
	h, err := n.Service.Get(ctx, n.Ref)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	if n.JSON {
		return transfer.ExportJSON(color.Output, []*habit.Habit{h})
	}

	today := n.Service.Today()
	pp.Stats(h, habit.Summarize(h, today))
	if n.Month != nil {
		pp.Month(h, *n.Month, today)
	} else {
		pp.Grid(h, today, n.GridDays)
	}
	pp.Notes(h)
	return nil
}
