// Package reminder computes which habit reminders are due. Delivering them is
// left to the caller.
package reminder

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/habit"
	"tableflip.dev/habitus/pkg/timeutil"
)

// Ledger records which reminder slots already fired on a given day.
type Ledger interface {
	Fired(habitID string, slot int, day string) bool
	MarkFired(habitID string, slot int, day string) error
}

// SlotKey is the ledger key for a habit's reminder slot.
func SlotKey(habitID string, slot int) string {
	return habitID + "_" + strconv.Itoa(slot)
}

// MemoryLedger keeps the last fired day per slot in memory.
type MemoryLedger struct {
	mu    sync.Mutex
	fired map[string]string
}

func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{fired: make(map[string]string)}
}

func (l *MemoryLedger) Fired(habitID string, slot int, day string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fired[SlotKey(habitID, slot)] == day
}

func (l *MemoryLedger) MarkFired(habitID string, slot int, day string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.fired[SlotKey(habitID, slot)] = day
	return nil
}

// Due is one reminder that should be delivered now.
type Due struct {
	HabitID string
	Title   string
	Icon    string
	Slot    int
	Time    string
	Day     string
	Body    string
}

// Tag identifies the notification so a repeat replaces rather than stacks.
func (d Due) Tag() string {
	return fmt.Sprintf("habitus-%s-%d", d.HabitID, d.Slot)
}

func (d Due) String() string {
	return fmt.Sprintf("%s %s: %s", d.Icon, d.Title, d.Body)
}

// Checker finds due reminders.
type Checker struct {
	Ledger Ledger
}

// IsDue reports whether slot of h matches now and has not fired today.
func (c *Checker) IsDue(h *habit.Habit, slot int, now time.Time) bool {
	if !h.NotifEnabled || slot < 0 || slot >= len(h.Reminders) {
		return false
	}
	at, err := timeutil.ParseClock(h.Reminders[slot])
	if err != nil || at != timeutil.FormatClock(now) {
		return false
	}
	return !c.ledger().Fired(h.ID, slot, calendar.DayKey(now))
}

// Due returns the reminders due at now across habits and marks each one
// fired, so a later call in the same minute reports nothing.
func (c *Checker) Due(now time.Time, habits []*habit.Habit) ([]Due, error) {
	day := calendar.DayKey(now)
	var due []Due
	for _, h := range habits {
		for slot, at := range h.Reminders {
			if !c.IsDue(h, slot, now) {
				continue
			}
			if err := c.ledger().MarkFired(h.ID, slot, day); err != nil {
				return due, err
			}
			due = append(due, Due{
				HabitID: h.ID,
				Title:   h.Title,
				Icon:    h.Icon,
				Slot:    slot,
				Time:    at,
				Day:     day,
				Body:    Body(h, habit.Value(h, day)),
			})
		}
	}
	return due, nil
}

func (c *Checker) ledger() Ledger {
	if c.Ledger == nil {
		c.Ledger = NewMemoryLedger()
	}
	return c.Ledger
}

// Body is the reminder text for a habit given today's count.
func Body(h *habit.Habit, count int) string {
	switch {
	case count > 0 && h.MultiCheck:
		return fmt.Sprintf("Checked in %d× today. Keep going!", count)
	case count > 0:
		return "Already done today 🎉"
	default:
		return "Time to keep your streak alive! 💪"
	}
}
