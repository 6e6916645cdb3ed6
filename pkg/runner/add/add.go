// Package add provides the runner logic for creating habits.
package add

import (
	"context"
	"errors"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/habit"
	"tableflip.dev/habitus/pkg/printers"
)

// Add creates a habit.
type Add struct {
	Habit   *habit.Habit
	ShowID  bool
	Service *app.Service
}

// Do stores the habit and prints the updated list.
func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if _, err := n.Service.Create(ctx, n.Habit); err != nil {
		return err
	}

	all, err := n.Service.Habits(ctx, habit.CategoryNone)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount("Habits", len(all))
	pp.Habits(n.Service.Today(), all...)
	return nil
}
