// Package remove provides the runner logic for deleting habits.
package remove

import (
	"context"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/habitus/pkg/app"
)

// Remove deletes one or more habits and their history.
type Remove struct {
	Refs    []string
	Service *app.Service
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no service")
	}
	if len(n.Refs) == 0 {
		return errors.New("nothing to delete")
	}
	removed, err := n.Service.Delete(ctx, n.Refs...)
	if err != nil {
		return err
	}
	switch removed {
	case 1:
		_, _ = fmt.Fprintln(color.Output, "Deleted 1 habit.")
	default:
		_, _ = fmt.Fprintf(color.Output, "Deleted %d habits.\n", removed)
	}
	return nil
}
