package printers

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/events"
	"tableflip.dev/habitus/pkg/glyph"
	"tableflip.dev/habitus/pkg/habit"
	"tableflip.dev/habitus/pkg/reminder"
	"tableflip.dev/habitus/pkg/store"
)

type PrettyPrint struct {
	ShowID bool
	// Out defaults to color.Output.
	Out io.Writer
}

const (
	idWidth   = 8
	wrapWidth = 60
)

var (
	spacing = strings.Repeat(" ", idWidth+2)
)

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

// Message prints a plain line.
func (pp *PrettyPrint) Message(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(pp.out(), format+"\n", a...)
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Fprint(pp.out(), spacing)
	}
	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " habit")
	default:
		_, _ = c.Fprintln(pp.out(), " habits")
	}
}

func shortID(id string) string {
	if len(id) > idWidth {
		return id[:idWidth]
	}
	return id
}

// Habits prints one row per habit with today's state and streaks.
func (pp *PrettyPrint) Habits(today time.Time, habits ...*habit.Habit) {
	if len(habits) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Fprint(pp.out(), spacing)
		}
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, h := range habits {
		s := habit.Summarize(h, today)
		row := make([]interface{}, 0, 6)
		if pp.ShowID {
			row = append(row, y.Sprint(shortID(h.ID)))
		}
		row = append(row,
			todayGlyph(h, s),
			fmt.Sprintf("%s %s", h.Icon, h.Title),
			faint.Sprint(categoryLabel(h.Category)),
			fmt.Sprintf("%s %d", glyph.Streak, s.Current),
			faint.Sprintf("best %d", s.Best),
		)
		if h.TargetEnabled {
			row = append(row, progress(s.Weekly))
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

func categoryLabel(c habit.Category) string {
	if c.Or() == habit.CategoryNone {
		return ""
	}
	return c.Label()
}

func todayGlyph(h *habit.Habit, s habit.Summary) string {
	cell := habit.CellState(h, s.Today)
	g := glyph.Cell(cell).Symbol
	if h.MultiCheck && s.TodayValue > 0 {
		return color.New(color.FgGreen, color.Bold).Sprintf("%s×%d", g, s.TodayValue)
	}
	if cell == habit.CellFilled {
		return color.New(color.FgGreen, color.Bold).Sprint(g)
	}
	return g
}

func progress(p habit.Progress) string {
	text := fmt.Sprintf("%d/%d this week", p.Completed, p.Target)
	if p.Done() {
		return color.New(color.FgGreen).Sprint(text + " ✓")
	}
	return text
}

// Stats prints every derived number for h.
func (pp *PrettyPrint) Stats(h *habit.Habit, s habit.Summary) {
	w := pp.out()
	b := color.New(color.Bold)
	faint := color.New(color.Faint)

	_, _ = b.Fprintf(w, "%s %s", h.Icon, h.Title)
	if pp.ShowID {
		_, _ = faint.Fprintf(w, "  %s", h.ID)
	}
	_, _ = fmt.Fprintln(w, "")
	if h.Description != "" {
		_, _ = faint.Fprintln(w, indent.String(wordwrap.String(h.Description, wrapWidth), 2))
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if label := categoryLabel(h.Category); label != "" {
		tbl.AddRow("  Category", h.Category.String())
	}
	tbl.AddRow("  Current streak", fmt.Sprintf("%s %s", glyph.Streak, habit.MilestoneLabel(s.Current)))
	tbl.AddRow("  Best streak", habit.MilestoneLabel(s.Best))
	if h.MultiCheck {
		tbl.AddRow("  Total check-ins", s.Total)
		tbl.AddRow("  Days checked", s.ActiveDays)
	} else {
		tbl.AddRow("  Days done", s.Total)
	}
	if h.TargetEnabled {
		tbl.AddRow("  Weekly target", progress(s.Weekly))
	}
	if h.FreezeEnabled {
		tbl.AddRow("  Freezes left", fmt.Sprintf("%s %d of %d", glyph.Cell(habit.CellFrozen), s.FreezesLeft, h.FreezePasses))
	}
	if len(h.ActiveDays) > 0 && len(h.ActiveDays) < 7 {
		tbl.AddRow("  Active on", activeDays(h.ActiveDays))
	}
	if h.NotifEnabled && len(h.Reminders) > 0 {
		tbl.AddRow("  Reminders", strings.Join(h.Reminders, ", "))
	}
	tbl.AddRow("  Badges", badges(s.Badges))
	_, _ = fmt.Fprintln(w, tbl)
}

var dayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func activeDays(days []int) string {
	names := make([]string, 0, len(days))
	for _, d := range days {
		if d >= 0 && d < len(dayNames) {
			names = append(names, dayNames[d])
		}
	}
	return strings.Join(names, " ")
}

func badges(earned []int) string {
	if len(earned) == 0 {
		return color.New(color.Faint, color.Italic).Sprint("none yet")
	}
	out := make([]string, 0, len(earned))
	for _, m := range earned {
		out = append(out, fmt.Sprintf("%s %d", habit.MilestoneEmoji(m), m))
	}
	return strings.Join(out, "  ")
}

// Notes prints the notes of h, newest first, wrapped.
func (pp *PrettyPrint) Notes(h *habit.Habit) {
	if len(h.Notes) == 0 {
		return
	}
	keys := make([]string, 0, len(h.Notes))
	for k := range h.Notes {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	d := color.New(color.FgHiYellow)
	for _, k := range keys {
		_, _ = d.Fprintf(pp.out(), "  %s %s\n", glyph.Note, k)
		_, _ = fmt.Fprintln(pp.out(), indent.String(wordwrap.String(h.Notes[k], wrapWidth), 4))
	}
	pp.NewLine()
}

// Report prints the check-in history of a time window.
func (pp *PrettyPrint) Report(result app.ReportResult, label string) {
	w := pp.out()
	since := result.Since.Local().Format("2006-01-02")
	until := result.Until.Local().Format("2006-01-02")
	_, _ = fmt.Fprintf(w, "Report · last %s (%s → %s)\n", label, since, until)

	if len(result.Sections) == 0 {
		_, _ = fmt.Fprintln(w, "  No check-ins found in this window.")
		_, _ = fmt.Fprintln(w, "")
		return
	}

	faint := color.New(color.Faint)
	for _, section := range result.Sections {
		h := section.Habit
		_, _ = fmt.Fprintf(w, "\n%s %s\n", h.Icon, h.Title)
		for _, d := range section.Days {
			line := fmt.Sprintf("  %s", d.Day)
			switch {
			case d.Value > 0 && h.MultiCheck:
				line = fmt.Sprintf("%s %s ×%d", line, glyph.Cell(habit.CellFilled), d.Value)
			case d.Value > 0:
				line = fmt.Sprintf("%s %s", line, glyph.Cell(habit.CellFilled))
			case d.Frozen:
				line = fmt.Sprintf("%s %s", line, glyph.Cell(habit.CellFrozen))
			default:
				line = fmt.Sprintf("%s %s", line, glyph.Cell(habit.CellEmpty))
			}
			if d.Note != "" {
				line = fmt.Sprintf("%s  %s", line, faint.Sprintf("%s %s", glyph.Note, d.Note))
			}
			_, _ = fmt.Fprintln(w, line)
		}
	}
	_, _ = fmt.Fprintf(w, "\n%d check-ins\n\n", result.Total)
}

// Reminder prints a due reminder.
func (pp *PrettyPrint) Reminder(d reminder.Due) {
	t := color.New(color.FgCyan)
	_, _ = t.Fprintf(pp.out(), "[%s] ", d.Time)
	_, _ = fmt.Fprintln(pp.out(), d.String())
}

// Archives lists archive snapshots, oldest first.
func (pp *PrettyPrint) Archives(archives ...store.Archive) {
	pp.TitleWithCount("Archives", len(archives))
	tbl := uitable.New()
	tbl.Separator = "  "
	for _, a := range archives {
		checks := 0
		for _, h := range a.Habits {
			checks += habit.ActiveDayCount(h)
		}
		tbl.AddRow(a.Date.Local().Format("2006-01-02 15:04"), fmt.Sprintf("%d habits", len(a.Habits)), fmt.Sprintf("%d days logged", checks))
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Emit shows milestone celebrations, making PrettyPrint an events.Sink.
func (pp *PrettyPrint) Emit(e events.Event) {
	if e.Type != events.MilestoneReached {
		return
	}
	c := color.New(color.FgHiMagenta, color.Bold)
	_, _ = c.Fprintf(pp.out(), "%s %s streak on %s %s!\n", habit.MilestoneEmoji(e.Milestone),
		habit.MilestoneLabel(e.Milestone), e.Icon, e.Title)
}

// Week prints the Monday to Sunday row of the current week.
func (pp *PrettyPrint) Week(h *habit.Habit, today time.Time) {
	todayKey := calendar.DayKey(today)
	cells := make([]string, 0, 7)
	for _, key := range calendar.WeekDays(today) {
		g := glyph.Cell(habit.CellState(h, key)).Symbol
		if key == todayKey {
			g = color.New(color.Underline).Sprint(g)
		}
		cells = append(cells, g)
	}
	_, _ = fmt.Fprintf(pp.out(), "  Mo Tu We Th Fr Sa Su\n  %s\n", strings.Join(cells, "  "))
}
