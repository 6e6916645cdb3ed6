// Package note provides the runner logic for per-day habit notes.
package note

import (
	"context"
	"errors"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/printers"
)

// Note sets, replaces or clears the note on a day. A blank Text clears it.
type Note struct {
	Ref  string
	Day  string
	Text string
	// List prints the notes without changing them.
	List    bool
	Service *app.Service
}

func (n *Note) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not note, no service")
	}
	pp := printers.PrettyPrint{}
	if n.List {
		h, err := n.Service.Get(ctx, n.Ref)
		if err != nil {
			return err
		}
		pp.Notes(h)
		return nil
	}

	h, changed, err := n.Service.SetNote(ctx, n.Ref, n.Day, n.Text)
	if err != nil {
		return err
	}
	if !changed {
		pp.Message("Note unchanged.")
	}
	pp.Notes(h)
	return nil
}
