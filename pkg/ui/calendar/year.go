package calendar

import (
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	daykeys "tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/glyph"
	"tableflip.dev/habitus/pkg/habit"
)

// GridOptions controls the year heat map.
type GridOptions struct {
	// Base is the color of an empty cell; filled cells blend from Base
	// towards the habit color by intensity.
	Base        colorful.Color
	LabelStyle  lipgloss.Style
	FrozenStyle lipgloss.Style
	// Today marks the cell for this day key.
	Today string
}

var rowLabels = []string{"Su", "  ", "Tu", "  ", "Th", "  ", "Sa"}

// Grid is the heat map layout of a window: one column per week, one row per
// weekday starting on Sunday.
type Grid struct {
	Columns [][]string
	Labels  []daykeys.MonthLabel
}

// Layout places the window's day keys into week columns. Slots before the
// first day and after the last are empty strings.
func Layout(window []string) Grid {
	labels, startDow := daykeys.MonthLabels(window)
	total := (len(window) + startDow + 6) / 7
	cols := make([][]string, total)
	for c := range cols {
		cols[c] = make([]string, 7)
	}
	for i, key := range window {
		cols[(i+startDow)/7][(i+startDow)%7] = key
	}
	return Grid{Columns: cols, Labels: labels}
}

// Year renders the habit's heat map over window.
func Year(h *habit.Habit, window []string, opts GridOptions) string {
	g := Layout(window)
	fill, err := colorful.Hex(h.Color)
	if err != nil {
		fill, _ = colorful.Hex(habit.Palette[0])
	}

	var b strings.Builder
	b.WriteString("   ")
	b.WriteString(opts.LabelStyle.Render(monthRow(g)))
	b.WriteString("\n")
	for row := 0; row < 7; row++ {
		b.WriteString(opts.LabelStyle.Render(rowLabels[row]))
		b.WriteString(" ")
		for _, col := range g.Columns {
			key := col[row]
			if key == "" {
				b.WriteString(" ")
				continue
			}
			b.WriteString(cell(h, key, fill, opts))
		}
		if row < 6 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func cell(h *habit.Habit, key string, fill colorful.Color, opts GridOptions) string {
	state := habit.CellState(h, key)
	symbol := glyph.Cell(state).Symbol
	if key == opts.Today {
		symbol = glyph.Today.Symbol
	}
	switch state {
	case habit.CellFrozen:
		return opts.FrozenStyle.Render(symbol)
	case habit.CellFilled:
		tint := opts.Base.BlendRgb(fill, habit.Intensity(h, habit.Value(h, key)))
		return lipgloss.NewStyle().Foreground(tint).Render(symbol)
	default:
		return lipgloss.NewStyle().Foreground(opts.Base).Render(symbol)
	}
}

// monthRow places each month label at its week column, dropping labels that
// would overlap the previous one.
func monthRow(g Grid) string {
	row := []rune(strings.Repeat(" ", len(g.Columns)+3))
	next := 0
	for _, l := range g.Labels {
		if l.Column < next {
			continue
		}
		for i, r := range l.Label {
			if l.Column+i < len(row) {
				row[l.Column+i] = r
			}
		}
		next = l.Column + len(l.Label) + 1
	}
	return strings.TrimRight(string(row), " ")
}
