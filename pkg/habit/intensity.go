package habit

// MaxIntensity is the multi-check count at which a cell is fully saturated.
const MaxIntensity = 5

const minAlpha = 0.25

// Intensity maps a day's count to an opacity in [0.25, 1] for display. Zero
// means an empty cell. Binary habits are either empty or fully filled.
func Intensity(h *Habit, count int) float64 {
	if count <= 0 {
		return 0
	}
	if !h.MultiCheck {
		return 1
	}
	if count > MaxIntensity {
		count = MaxIntensity
	}
	return minAlpha + float64(count)/MaxIntensity*(1-minAlpha)
}

// Cell is the semantic state of one day in the grid.
type Cell int

const (
	CellEmpty Cell = iota
	CellFilled
	CellFrozen
	CellInactive
)

func (c Cell) String() string {
	switch c {
	case CellFilled:
		return "filled"
	case CellFrozen:
		return "frozen"
	case CellInactive:
		return "inactive"
	default:
		return "empty"
	}
}

// CellState classifies key for display. Inactive wins over frozen, and frozen
// wins over the logged value.
func CellState(h *Habit, key string) Cell {
	switch {
	case !IsActiveDay(h, key):
		return CellInactive
	case IsFrozen(h, key):
		return CellFrozen
	case Value(h, key) > 0:
		return CellFilled
	default:
		return CellEmpty
	}
}
