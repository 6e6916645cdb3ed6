// Package milestone detects the moment a streak lands on a milestone and
// makes sure each celebration is shown once.
package milestone

import (
	"strconv"
	"sync"

	"tableflip.dev/habitus/pkg/habit"
)

// Ledger remembers which (habit, milestone) celebrations were shown.
type Ledger interface {
	// MarkShown records the pair and reports whether it was new.
	MarkShown(habitID string, milestone int) bool
}

// MemoryLedger is a Ledger that lives as long as the process. A restart shows
// every celebration again.
type MemoryLedger struct {
	mu    sync.Mutex
	shown map[string]struct{}
}

// NewMemoryLedger returns an empty MemoryLedger.
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{shown: make(map[string]struct{})}
}

func (l *MemoryLedger) MarkShown(habitID string, milestone int) bool {
	key := habitID + "_" + strconv.Itoa(milestone)
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.shown[key]; ok {
		return false
	}
	l.shown[key] = struct{}{}
	return true
}

// Trigger fires milestone celebrations.
type Trigger struct {
	Ledger Ledger
}

// Match returns the milestone equal to streak. Streaks that jump past a
// threshold do not match it.
func Match(streak int) (int, bool) {
	for _, m := range habit.Milestones {
		if m == streak {
			return m, true
		}
	}
	return 0, false
}

// Check reports the milestone to celebrate for h at streak, at most once per
// habit and milestone.
func (t *Trigger) Check(h *habit.Habit, streak int) (int, bool) {
	m, ok := Match(streak)
	if !ok {
		return 0, false
	}
	if t.Ledger == nil {
		t.Ledger = NewMemoryLedger()
	}
	if !t.Ledger.MarkShown(h.ID, m) {
		return 0, false
	}
	return m, true
}
