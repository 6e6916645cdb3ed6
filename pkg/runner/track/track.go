// Package track provides runners that record check-ins and day edits.
package track

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/habit"
	"tableflip.dev/habitus/pkg/printers"
)

// Action selects what Track does to the habit's day.
type Action string

const (
	// CheckIn marks today done, or adds one for a multi-check habit.
	CheckIn Action = "check"
	// Undo removes one of today's check-ins.
	Undo Action = "undo"
	// Toggle flips a day between done and not done.
	Toggle Action = "toggle"
	// Freeze flips a day's freeze pass.
	Freeze Action = "freeze"
)

// Track applies Action to the habit Ref.
type Track struct {
	Ref    string
	Action Action
	// Day is a day key. It is used by Toggle and Freeze, empty means today.
	Day     string
	Service *app.Service
}

// Do applies the action and reprints the habit's week.
func (n *Track) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not track, no service")
	}

	var (
		h       *habit.Habit
		changed bool
		err     error
	)
	switch n.Action {
	case CheckIn, "":
		h, changed, err = n.Service.CheckIn(ctx, n.Ref)
	case Undo:
		h, changed, err = n.Service.Undo(ctx, n.Ref)
	case Toggle:
		h, changed, err = n.Service.ToggleDay(ctx, n.Ref, n.Day)
	case Freeze:
		h, changed, err = n.Service.ToggleFreeze(ctx, n.Ref, n.Day)
	default:
		return fmt.Errorf("unknown action %q", n.Action)
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	if !changed {
		pp.Message("%s", noChange(h, n.Action))
	}
	today := n.Service.Today()
	pp.Title(h.Icon + " " + h.Title)
	pp.Week(h, today)
	pp.Habits(today, h)
	return nil
}

func noChange(h *habit.Habit, a Action) string {
	switch a {
	case Undo:
		if !h.MultiCheck {
			return "Undo only applies to multi-check habits."
		}
		return "Nothing to undo today."
	case Freeze:
		if !h.FreezeEnabled {
			return "Freeze passes are off for this habit."
		}
		return "No freeze passes left."
	default:
		return "That day is not scheduled for this habit."
	}
}
