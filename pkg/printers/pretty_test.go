package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/fatih/color"
	colorful "github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/events"
	"tableflip.dev/habitus/pkg/habit"
	"tableflip.dev/habitus/pkg/reminder"
)

// 2024-01-10 is a Wednesday.
var today = time.Date(2024, time.January, 10, 9, 0, 0, 0, time.Local)

func newPrinter(t *testing.T) (*PrettyPrint, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
	var buf bytes.Buffer
	return &PrettyPrint{Out: &buf}, &buf
}

func TestHabits(t *testing.T) {
	pp, buf := newPrinter(t)
	water := &habit.Habit{ID: "0123456789", Title: "Water", Icon: "💧", Log: habit.Log{"2024-01-09": 1, "2024-01-10": 1}}
	gym := &habit.Habit{ID: "h2", Title: "Gym", Icon: "🏋️", Category: habit.CategoryFitness, TargetEnabled: true, TargetDays: 1,
		MultiCheck: true, Log: habit.Log{"2024-01-10": 3}}
	pp.ShowID = true
	pp.Habits(today, water, gym)
	out := buf.String()
	for _, want := range []string{"01234567 ", "💧 Water", "🔥 2", "■×3", "Fitness", "1/1 this week ✓"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestHabitsEmpty(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Habits(today)
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected empty marker, got %q", buf.String())
	}
}

func TestStats(t *testing.T) {
	pp, buf := newPrinter(t)
	h := &habit.Habit{ID: "h1", Title: "Read", Icon: "📚", Description: "A chapter a day",
		FreezeEnabled: true, FreezePasses: 3, FreezeDates: []string{"2024-01-08"},
		ActiveDays: []int{1, 3}, Log: habit.Log{}}
	for i := 0; i < 60; i++ {
		key := today.AddDate(0, 0, -i).Format("2006-01-02")
		h.Log[key] = 1
	}
	pp.Stats(h, habit.Summarize(h, today))
	out := buf.String()
	for _, want := range []string{"📚 Read", "A chapter a day", "Freezes left", "2 of 3", "Mon Wed", "🌟 7"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestNotesWrap(t *testing.T) {
	pp, buf := newPrinter(t)
	long := strings.Repeat("word ", 30)
	h := &habit.Habit{Notes: habit.Notes{"2024-01-01": "first", "2024-01-05": long}}
	pp.Notes(h)
	out := buf.String()
	if strings.Index(out, "2024-01-05") > strings.Index(out, "2024-01-01") {
		t.Fatalf("expected newest note first:\n%s", out)
	}
	for _, line := range strings.Split(out, "\n") {
		if len(line) > wrapWidth+4 {
			t.Fatalf("line not wrapped: %q", line)
		}
	}
}

func TestReport(t *testing.T) {
	pp, buf := newPrinter(t)
	h := &habit.Habit{Title: "Pushups", Icon: "💪", MultiCheck: true}
	pp.Report(app.ReportResult{
		Since: today.AddDate(0, 0, -7),
		Until: today,
		Sections: []app.ReportSection{{Habit: h, Days: []app.ReportDay{
			{Day: "2024-01-08", Frozen: true},
			{Day: "2024-01-09", Value: 3, Note: "sore"},
		}}},
		Total: 3,
	}, "1w")
	out := buf.String()
	for _, want := range []string{"last 1w", "2024-01-08 ❄", "2024-01-09 ■ ×3", "✎ sore", "3 check-ins"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestCelebrationSink(t *testing.T) {
	pp, buf := newPrinter(t)
	var sink events.Sink = pp
	sink.Emit(events.Event{Type: events.CheckedIn, Title: "Water"})
	if buf.Len() != 0 {
		t.Fatalf("expected check-ins to be silent, got %q", buf.String())
	}
	sink.Emit(events.Event{Type: events.MilestoneReached, Title: "Water", Icon: "💧", Milestone: 14})
	if got := buf.String(); got != "🔥 14 days streak on 💧 Water!\n" {
		t.Fatalf("unexpected celebration %q", got)
	}
}

func TestReminder(t *testing.T) {
	pp, buf := newPrinter(t)
	pp.Reminder(reminder.Due{Title: "Water", Icon: "💧", Time: "08:00", Body: "Time to keep your streak alive! 💪"})
	if got := buf.String(); got != "[08:00] 💧 Water: Time to keep your streak alive! 💪\n" {
		t.Fatalf("unexpected reminder %q", got)
	}
}

func TestGrid(t *testing.T) {
	pp, buf := newPrinter(t)
	prev := baseColor
	baseColor = func() colorful.Color { return darkBase }
	t.Cleanup(func() { baseColor = prev })

	h := &habit.Habit{Title: "Water", Color: "#22c55e", Log: habit.Log{"2024-01-09": 1}}
	pp.Grid(h, today, 14)
	lines := strings.Split(ansi.Strip(buf.String()), "\n")
	if len(lines) < 8 || !strings.HasPrefix(lines[3], "Tu") || !strings.HasSuffix(lines[3], "■") {
		t.Fatalf("unexpected grid:\n%s", strings.Join(lines, "\n"))
	}
}

func TestMonth(t *testing.T) {
	pp, buf := newPrinter(t)
	h := &habit.Habit{Title: "Water", Log: habit.Log{"2024-01-09": 1}}
	pp.Month(h, today, today)
	out := ansi.Strip(buf.String())
	if !strings.Contains(out, "January 2024") || !strings.Contains(out, "Su Mo Tu We Th Fr Sa") {
		t.Fatalf("unexpected month:\n%s", out)
	}
}
