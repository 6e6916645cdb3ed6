// Package archive provides the runners for snapshotting and resetting habit
// history.
package archive

import (
	"context"
	"errors"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/printers"
)

// Archive appends a snapshot of every habit to the archive log and clears
// their history. List only prints the log.
type Archive struct {
	List    bool
	Service *app.Service
}

func (n *Archive) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not archive, no service")
	}
	pp := printers.PrettyPrint{}

	if !n.List {
		a, err := n.Service.Archive(ctx)
		if err != nil {
			return err
		}
		pp.Message("Archived %d habits at %s.", len(a.Habits), a.Date.Local().Format("2006-01-02 15:04"))
		pp.NewLine()
	}

	all, err := n.Service.Archives(ctx)
	if err != nil {
		return err
	}
	pp.Archives(all...)
	return nil
}
