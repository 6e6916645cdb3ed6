// Package move provides the runner logic for reordering habits.
package move

import (
	"context"
	"errors"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/printers"
)

// Move places the habit Ref at the position of the habit Target.
type Move struct {
	Ref     string
	Target  string
	ShowID  bool
	Service *app.Service
}

func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no service")
	}
	all, err := n.Service.Move(ctx, n.Ref, n.Target)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.TitleWithCount("Habits", len(all))
	pp.Habits(n.Service.Today(), all...)
	return nil
}
