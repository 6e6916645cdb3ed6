// Package get provides the runner logic for listing habits.
package get

import (
	"context"
	"errors"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/habit"
	"tableflip.dev/habitus/pkg/printers"
	"tableflip.dev/habitus/pkg/transfer"
)

// Get lists habits, optionally filtered by category.
type Get struct {
	Category habit.Category
	ShowID   bool
	JSON     bool
	Service  *app.Service
	// Out defaults to color.Output.
	Out io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	all, err := n.Service.Habits(ctx, n.Category)
	if err != nil {
		return err
	}
	if n.JSON {
		return transfer.ExportJSON(out, all)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: out}
	title := "Habits"
	if n.Category.Or() != habit.CategoryNone {
		title = n.Category.String()
	}
	pp.TitleWithCount(title, len(all))
	pp.Habits(n.Service.Today(), all...)
	return nil
}
