// Package edit provides the runner logic for reconfiguring a habit.
package edit

import (
	"context"
	"errors"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/habit"
	"tableflip.dev/habitus/pkg/printers"
)

// Edit changes the configuration of the habit Ref. Apply receives a copy of
// the current habit and sets the new configuration on it.
type Edit struct {
	Ref     string
	Title   string
	Apply   func(h *habit.Habit) error
	Service *app.Service
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no service")
	}
	cur, err := n.Service.Get(ctx, n.Ref)
	if err != nil {
		return err
	}
	if n.Title != "" {
		cur.Title = n.Title
	}
	if n.Apply != nil {
		if err := n.Apply(cur); err != nil {
			return err
		}
	}
	next, err := n.Service.Edit(ctx, cur.ID, cur)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Stats(next, habit.Summarize(next, n.Service.Today()))
	return nil
}
