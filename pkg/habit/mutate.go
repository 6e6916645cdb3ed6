package habit

import (
	"strings"
	"time"

	"tableflip.dev/habitus/pkg/calendar"
)

// The mutators below never modify their input. Each returns the next habit
// value and whether anything changed; when nothing changed the input pointer
// is returned as is.

// CheckIn records today's check-in: binary habits toggle, multi-check habits
// count up. Inactive days are left alone.
func CheckIn(h *Habit, today time.Time) (*Habit, bool) {
	key := calendar.DayKey(today)
	if !IsActiveDay(h, key) {
		return h, false
	}
	cur := Value(h, key)
	next := h.Clone()
	if h.MultiCheck {
		SetValue(next, key, cur+1)
	} else if cur > 0 {
		SetValue(next, key, 0)
	} else {
		SetValue(next, key, 1)
	}
	return next, true
}

// Undo removes one of today's multi-check check-ins.
func Undo(h *Habit, today time.Time) (*Habit, bool) {
	key := calendar.DayKey(today)
	if !h.MultiCheck {
		return h, false
	}
	cur := Value(h, key)
	if cur <= 0 {
		return h, false
	}
	next := h.Clone()
	SetValue(next, key, cur-1)
	return next, true
}

// ToggleDay flips key between done and not done. Past days always use the
// binary form, multi-check counts included.
func ToggleDay(h *Habit, key string) (*Habit, bool) {
	if !IsActiveDay(h, key) {
		return h, false
	}
	next := h.Clone()
	if Value(h, key) > 0 {
		SetValue(next, key, 0)
	} else {
		SetValue(next, key, 1)
	}
	return next, true
}

// ToggleFreeze removes an existing freeze on key, or applies one when the
// habit has freezes enabled and budget left.
func ToggleFreeze(h *Habit, key string) (*Habit, bool) {
	if !h.FreezeEnabled {
		return h, false
	}
	if IsFrozen(h, key) {
		next := h.Clone()
		dates := make([]string, 0, len(h.FreezeDates))
		for _, d := range h.FreezeDates {
			if d != key {
				dates = append(dates, d)
			}
		}
		next.FreezeDates = dates
		return next, true
	}
	if FreezesUsed(h) >= h.FreezePasses {
		return h, false
	}
	next := h.Clone()
	next.FreezeDates = append(next.FreezeDates, key)
	return next, true
}

// SetNote stores trimmed text for key; blank text removes the note.
func SetNote(h *Habit, key, text string) (*Habit, bool) {
	text = strings.TrimSpace(text)
	prev, had := h.Notes[key]
	if (text == "" && !had) || (had && prev == text) {
		return h, false
	}
	next := h.Clone()
	if text == "" {
		delete(next.Notes, key)
		return next, true
	}
	if next.Notes == nil {
		next.Notes = Notes{}
	}
	next.Notes[key] = text
	return next, true
}

// ResetLog clears the log, notes and freezes while keeping configuration.
func ResetLog(h *Habit) *Habit {
	next := h.Clone()
	next.Log = Log{}
	next.Notes = Notes{}
	next.FreezeDates = []string{}
	return next
}
