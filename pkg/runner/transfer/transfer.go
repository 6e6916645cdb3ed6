// Package transfer provides the runners for exporting and importing habits.
package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/printers"
)

// Export writes every habit to Path, or stdout when Path is empty or "-".
type Export struct {
	Format  string
	Path    string
	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}
	if n.Path == "" || n.Path == "-" {
		return n.Service.Export(ctx, color.Output, n.Format)
	}
	f, err := os.Create(n.Path)
	if err != nil {
		return err
	}
	if err := n.Service.Export(ctx, f, n.Format); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	pp := printers.PrettyPrint{Out: os.Stderr}
	pp.Message("Exported habits to %s.", n.Path)
	return nil
}

// Import merges a JSON export from Path, or from In when Path is empty or "-".
type Import struct {
	Path    string
	In      io.Reader
	Service *app.Service
}

func (n *Import) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not import, no service")
	}
	var (
		data []byte
		err  error
	)
	if n.Path == "" || n.Path == "-" {
		in := n.In
		if in == nil {
			in = os.Stdin
		}
		data, err = ioutil.ReadAll(in)
	} else {
		data, err = ioutil.ReadFile(n.Path)
	}
	if err != nil {
		return fmt.Errorf("read import: %w", err)
	}

	res, err := n.Service.Import(ctx, data)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Message("Imported %d, skipped %d.", res.Added, res.Skipped)
	return nil
}
