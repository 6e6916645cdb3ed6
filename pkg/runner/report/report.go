// Package report provides the runner logic for check-in reports.
package report

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/printers"
	"tableflip.dev/habitus/pkg/timeutil"
)

// Report prints what was done over the last Window, ending today.
type Report struct {
	Window  time.Duration
	Service *app.Service
}

func (n *Report) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not report, no service")
	}
	until := n.Service.Today()
	since := until.Add(-n.Window)
	result, err := n.Service.Report(ctx, since, until)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Report(result, "last "+timeutil.FormatWindow(n.Window))
	return nil
}
