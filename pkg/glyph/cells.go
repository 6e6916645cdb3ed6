package glyph

import "tableflip.dev/habitus/pkg/habit"

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
	// Marker glyphs annotate a day instead of filling its cell.
	Marker bool
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 7)

	g = append(g, Glyph{
		Key:     "empty",
		Symbol:  "□",
		Meaning: "not done",
	}, Glyph{
		Key:     "filled",
		Symbol:  "■",
		Meaning: "done (shade grows with check-ins)",
	}, Glyph{
		Key:     "frozen",
		Symbol:  "❄",
		Meaning: "frozen, keeps the streak",
	}, Glyph{
		Key:     "inactive",
		Symbol:  "·",
		Meaning: "not scheduled",
	}, Glyph{
		Key:     "today",
		Symbol:  "◆",
		Meaning: "today",
		Marker:  true,
	}, Glyph{
		Key:     "note",
		Symbol:  "✎",
		Meaning: "has a note",
		Marker:  true,
	}, Glyph{
		Key:     "streak",
		Symbol:  "🔥",
		Meaning: "current streak",
		Marker:  true,
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

// Cell returns the glyph drawn for a day in state c.
func Cell(c habit.Cell) Glyph {
	switch c {
	case habit.CellFilled:
		return DefaultGlyphs()[1]
	case habit.CellFrozen:
		return DefaultGlyphs()[2]
	case habit.CellInactive:
		return DefaultGlyphs()[3]
	default:
		return DefaultGlyphs()[0]
	}
}

// Markers are the annotation glyphs.
var (
	Today  = DefaultGlyphs()[4]
	Note   = DefaultGlyphs()[5]
	Streak = DefaultGlyphs()[6]
)
