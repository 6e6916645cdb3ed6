package track

import (
	"context"
	"io/ioutil"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/habit"
	"tableflip.dev/habitus/pkg/store"
)

type testConfig struct{ path string }

func (c testConfig) BasePath() string       { return c.path }
func (c testConfig) RemindInterval() string { return "30s" }
func (c testConfig) GridWindow() string     { return "53w" }

func TestTrackActions(t *testing.T) {
	color.Output = ioutil.Discard
	ctx := context.Background()
	now := time.Date(2024, time.January, 10, 9, 0, 0, 0, time.Local)

	p, err := store.Load(testConfig{path: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	h := habit.New("Pushups")
	h.MultiCheck = true
	h.FreezeEnabled = true
	if err := p.Save(ctx, []*habit.Habit{h}); err != nil {
		t.Fatalf("save: %v", err)
	}
	svc := &app.Service{Persistence: p, Now: func() time.Time { return now }}

	run := func(a Action, day string) {
		t.Helper()
		if err := (&Track{Ref: "pushups", Action: a, Day: day, Service: svc}).Do(ctx); err != nil {
			t.Fatalf("%s: %v", a, err)
		}
	}
	run(CheckIn, "")
	run(CheckIn, "")
	run(Undo, "")
	run(Toggle, "2024-01-09")
	run(Freeze, "2024-01-08")

	got, err := svc.Get(ctx, h.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if v := habit.Value(got, calendar.DayKey(now)); v != 1 {
		t.Fatalf("expected 1 check-in today, got %d", v)
	}
	if habit.Value(got, "2024-01-09") != 1 || !habit.IsFrozen(got, "2024-01-08") {
		t.Fatalf("unexpected history %+v", got.Log)
	}

	if err := (&Track{Ref: "pushups", Action: "jump", Service: svc}).Do(ctx); err == nil {
		t.Fatalf("expected unknown action error")
	}
}
