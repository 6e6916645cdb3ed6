package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/habit"
	uicalendar "tableflip.dev/habitus/pkg/ui/calendar"
)

var (
	darkBase  = colorful.Color{R: 0x2d / 255.0, G: 0x33 / 255.0, B: 0x3b / 255.0}
	lightBase = colorful.Color{R: 0xeb / 255.0, G: 0xed / 255.0, B: 0xf0 / 255.0}
	frozen    = lipgloss.Color("#7dd3fc")
)

// baseColor is the empty-cell color for the terminal background. It is a
// variable so tests can skip the terminal query.
var baseColor = func() colorful.Color {
	if termenv.HasDarkBackground() {
		return darkBase
	}
	return lightBase
}

// Grid prints the heat map of h over the window ending today.
func (pp *PrettyPrint) Grid(h *habit.Habit, today time.Time, days int) {
	window := calendar.Window(today, days)
	out := uicalendar.Year(h, window, uicalendar.GridOptions{
		Base:        baseColor(),
		LabelStyle:  lipgloss.NewStyle().Faint(true),
		FrozenStyle: lipgloss.NewStyle().Foreground(frozen),
		Today:       calendar.DayKey(today),
	})
	_, _ = fmt.Fprintln(pp.out(), out)
	pp.NewLine()
}

// Month prints the month containing then as a calendar, with h's days shaded.
func (pp *PrettyPrint) Month(h *habit.Habit, then, today time.Time) {
	first := time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.Local)
	n := calendar.DaysIn(first)
	todayKey := calendar.DayKey(today)

	fill := lipgloss.Color(h.Color)
	if strings.TrimSpace(h.Color) == "" {
		fill = lipgloss.Color(habit.Palette[0])
	}

	days := make([]uicalendar.Day, 0, n)
	for i := 0; i < n; i++ {
		key := calendar.DayKey(first.AddDate(0, 0, i))
		_, hasNote := h.Notes[key]
		days = append(days, uicalendar.Day{
			Day:     i + 1,
			Cell:    habit.CellState(h, key),
			IsToday: key == todayKey,
			HasNote: hasNote,
		})
	}

	const width = len("Su Mo Tu We Th Fr Sa")
	m := first.Format("January 2006")
	mid := (width - len(m)) / 2
	_, _ = fmt.Fprintf(pp.out(), "%s%s\n", strings.Repeat(" ", mid), m)
	_, _ = fmt.Fprintln(pp.out(), uicalendar.Render(first, days, uicalendar.Options{
		HeaderStyle:   lipgloss.NewStyle().Italic(true),
		EmptyStyle:    lipgloss.NewStyle().Faint(true),
		FilledStyle:   lipgloss.NewStyle().Bold(true).Foreground(fill),
		FrozenStyle:   lipgloss.NewStyle().Foreground(frozen),
		InactiveStyle: lipgloss.NewStyle().Faint(true).Strikethrough(true),
		TodayStyle:    lipgloss.NewStyle().Underline(true),
		ShowHeader:    true,
	}))
	pp.NewLine()
}
