package info

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/habit"
	"tableflip.dev/habitus/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
}

func (n *Info) Do(ctx context.Context) error {
	out := color.Output

	if override := os.Getenv("HABITUS_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "HABITUS_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "HABITUS_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.remind.interval: ", n.Config.RemindInterval())
	_, _ = fmt.Fprintln(out, "Config.grid.window: ", n.Config.GridWindow())

	if n.Service == nil {
		return fmt.Errorf("failed to create habit service")
	}

	all, err := n.Service.Habits(ctx, habit.CategoryNone)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Habits: %d\n", len(all))

	archives, err := n.Service.Archives(ctx)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "Archives: %d\n", len(archives))
	return nil
}
