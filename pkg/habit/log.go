package habit

import (
	"tableflip.dev/habitus/pkg/calendar"
)

// IsDayKey reports whether key is a canonical YYYY-MM-DD day key.
func IsDayKey(key string) bool {
	t, err := calendar.ParseDayKey(key)
	return err == nil && calendar.DayKey(t) == key
}

// Value returns the logged value for key, zero when absent.
func Value(h *Habit, key string) int {
	if h == nil || h.Log == nil {
		return 0
	}
	if v := h.Log[key]; v > 0 {
		return v
	}
	return 0
}

// SetValue stores v under key, removing the key when v <= 0. It must only be
// called on a habit owned by the caller, such as a fresh Clone.
func SetValue(h *Habit, key string, v int) {
	if v <= 0 {
		delete(h.Log, key)
		return
	}
	if h.Log == nil {
		h.Log = Log{}
	}
	h.Log[key] = v
}

// IsActiveDay reports whether the habit is scheduled on key's weekday.
func IsActiveDay(h *Habit, key string) bool {
	if len(h.ActiveDays) == 0 || len(h.ActiveDays) >= 7 {
		return true
	}
	dow := calendar.WeekdayOf(key)
	for _, d := range h.ActiveDays {
		if d == dow {
			return true
		}
	}
	return false
}

// IsFrozen reports whether a freeze pass was applied on key.
func IsFrozen(h *Habit, key string) bool {
	for _, d := range h.FreezeDates {
		if d == key {
			return true
		}
	}
	return false
}

// FreezesUsed is the number of applied freeze passes.
func FreezesUsed(h *Habit) int {
	return len(h.FreezeDates)
}

// FreezesLeft is the remaining freeze budget, never negative.
func FreezesLeft(h *Habit) int {
	if left := h.FreezePasses - FreezesUsed(h); left > 0 {
		return left
	}
	return 0
}

func satisfied(h *Habit, key string) bool {
	return Value(h, key) > 0 || IsFrozen(h, key)
}
