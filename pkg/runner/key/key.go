// Package key provides CLI helpers to display the grid legend.
package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/habitus/pkg/glyph"
)

// Key prints a legend describing cells and markers.
type Key struct{}

// Do renders the cell and marker keys to stdout.
func (k *Key) Do(ctx context.Context) error {
	_, _ = fmt.Fprintln(color.Output, "")

	all := glyph.DefaultGlyphs()
	k.Key(ctx, all, false)
	_, _ = fmt.Fprintln(color.Output, "")
	k.Key(ctx, all, true)

	_, _ = fmt.Fprintln(color.Output, "")
	return nil
}

// Key renders a glyph table; when marker is true, markers are shown.
func (k *Key) Key(_ context.Context, glyfs []glyph.Glyph, marker bool) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	if marker {
		tbl.AddRow(bold.Sprint("Markers"), bold.Sprint("Meaning"))
	} else {
		tbl.AddRow(bold.Sprint("  Cells"), bold.Sprint("Meaning"))
	}
	for _, v := range glyfs {
		if marker == v.Marker {
			tbl.AddRow(v.Symbol, v.Meaning)
		}
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(color.Output, tbl)
}
