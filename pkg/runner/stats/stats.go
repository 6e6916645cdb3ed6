// Package stats provides the runner logic for streak and badge summaries.
package stats

import (
	"context"
	"errors"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/habit"
	"tableflip.dev/habitus/pkg/printers"
)

// Stats prints the summary of one habit, or of every habit in Category when
// Ref is empty.
type Stats struct {
	Ref      string
	Category habit.Category
	ShowID   bool
	Service  *app.Service
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get stats, no service")
	}
	var all []*habit.Habit
	if n.Ref != "" {
		h, err := n.Service.Get(ctx, n.Ref)
		if err != nil {
			return err
		}
		all = append(all, h)
	} else {
		var err error
		if all, err = n.Service.Habits(ctx, n.Category); err != nil {
			return err
		}
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	today := n.Service.Today()
	if len(all) == 0 {
		pp.Message("No habits yet.")
		return nil
	}
	for _, h := range all {
		pp.Stats(h, habit.Summarize(h, today))
	}
	return nil
}
