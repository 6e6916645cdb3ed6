package habit

import (
	"testing"
)

func TestSetValueRemovesNonPositive(t *testing.T) {
	h := New("Water")
	for _, v := range []int{0, -1, -10} {
		SetValue(h, "2024-01-01", 3)
		SetValue(h, "2024-01-01", v)
		if got := Value(h, "2024-01-01"); got != 0 {
			t.Fatalf("expected 0 after setting %d, got %d", v, got)
		}
		if _, ok := h.Log["2024-01-01"]; ok {
			t.Fatalf("expected key removed after setting %d", v)
		}
	}
	for _, v := range []int{1, 4, 99} {
		SetValue(h, "2024-01-01", v)
		if got := Value(h, "2024-01-01"); got != v {
			t.Fatalf("expected %d, got %d", v, got)
		}
	}
}

func TestSetValueNilLog(t *testing.T) {
	h := &Habit{ID: "h1", Title: "Water"}
	SetValue(h, "2024-01-01", 0)
	if h.Log != nil {
		t.Fatalf("expected removal to leave a nil log alone")
	}
	SetValue(h, "2024-01-01", 2)
	if Value(h, "2024-01-01") != 2 {
		t.Fatalf("expected lazily allocated log")
	}
}

func TestCheckInBinaryToggles(t *testing.T) {
	h := New("Water")
	next, changed := CheckIn(h, today)
	if !changed || Value(next, "2024-01-10") != 1 {
		t.Fatalf("expected check-in to mark today")
	}
	if Value(h, "2024-01-10") != 0 {
		t.Fatalf("check-in modified its input")
	}
	again, _ := CheckIn(next, today)
	if Value(again, "2024-01-10") != 0 {
		t.Fatalf("expected second check-in to clear today")
	}
	if _, ok := again.Log["2024-01-10"]; ok {
		t.Fatalf("expected cleared day to be absent from the log")
	}
}

func TestCheckInMultiIncrements(t *testing.T) {
	h := New("Pushups")
	h.MultiCheck = true
	for i := 1; i <= 7; i++ {
		h, _ = CheckIn(h, today)
		if got := Value(h, "2024-01-10"); got != i {
			t.Fatalf("expected %d check-ins, got %d", i, got)
		}
	}
}

func TestCheckInInactiveDay(t *testing.T) {
	h := New("Gym")
	h.ActiveDays = []int{1} // Monday only; today is Wednesday
	next, changed := CheckIn(h, today)
	if changed || next != h {
		t.Fatalf("expected inactive check-in to be a no-op")
	}
}

func TestUndo(t *testing.T) {
	h := New("Pushups")
	if _, changed := Undo(h, today); changed {
		t.Fatalf("undo is multi-check only")
	}
	h.MultiCheck = true
	if _, changed := Undo(h, today); changed {
		t.Fatalf("undo at zero is a no-op")
	}
	SetValue(h, "2024-01-10", 2)
	next, changed := Undo(h, today)
	if !changed || Value(next, "2024-01-10") != 1 {
		t.Fatalf("expected undo to decrement")
	}
	next, _ = Undo(next, today)
	if _, ok := next.Log["2024-01-10"]; ok {
		t.Fatalf("expected undo to zero to remove the key")
	}
	if Value(h, "2024-01-10") != 2 {
		t.Fatalf("undo modified its input")
	}
}

func TestToggleDayBinaryForMultiCheck(t *testing.T) {
	h := New("Pushups")
	h.MultiCheck = true
	SetValue(h, "2024-01-05", 4)
	next, changed := ToggleDay(h, "2024-01-05")
	if !changed || Value(next, "2024-01-05") != 0 {
		t.Fatalf("expected toggle to clear a multi-check day")
	}
	next, _ = ToggleDay(next, "2024-01-05")
	if Value(next, "2024-01-05") != 1 {
		t.Fatalf("expected toggle to set 1, got %d", Value(next, "2024-01-05"))
	}
}

func TestToggleInactiveDayIsNoop(t *testing.T) {
	h := New("Gym")
	h.ActiveDays = []int{1, 3}
	before := Value(h, "2024-01-09") // Tuesday
	next, changed := ToggleDay(h, "2024-01-09")
	if changed || Value(next, "2024-01-09") != before {
		t.Fatalf("expected toggle on inactive day to be a no-op")
	}
}

func TestToggleFreezeCapacity(t *testing.T) {
	h := New("Water")
	if _, changed := ToggleFreeze(h, daysAgo(1)); changed {
		t.Fatalf("expected freeze to be a no-op when disabled")
	}
	h.FreezeEnabled = true
	h.FreezePasses = 2
	h, _ = ToggleFreeze(h, daysAgo(1))
	h, _ = ToggleFreeze(h, daysAgo(2))
	next, changed := ToggleFreeze(h, daysAgo(3))
	if changed || len(next.FreezeDates) != 2 {
		t.Fatalf("expected exhausted budget to refuse a third freeze")
	}
	h, changed = ToggleFreeze(h, daysAgo(1))
	if !changed || IsFrozen(h, daysAgo(1)) || FreezesLeft(h) != 1 {
		t.Fatalf("expected unfreeze to release a pass")
	}
}

func TestToggleFreezeSequenceRespectsBudget(t *testing.T) {
	h := New("Water")
	h.FreezeEnabled = true
	h.FreezePasses = 3
	keys := []string{daysAgo(1), daysAgo(2), daysAgo(1), daysAgo(3), daysAgo(4), daysAgo(5), daysAgo(2), daysAgo(6)}
	for _, k := range keys {
		h, _ = ToggleFreeze(h, k)
		if len(h.FreezeDates) > h.FreezePasses {
			t.Fatalf("freeze dates %v exceed passes", h.FreezeDates)
		}
		seen := map[string]bool{}
		for _, d := range h.FreezeDates {
			if seen[d] {
				t.Fatalf("duplicate freeze %s", d)
			}
			seen[d] = true
		}
	}
}

func TestUnfreezeAlwaysAllowed(t *testing.T) {
	h := New("Water")
	h.FreezeEnabled = true
	h.FreezePasses = 1
	h.FreezeDates = []string{daysAgo(1), daysAgo(2)} // over budget after an edit
	next, changed := ToggleFreeze(h, daysAgo(2))
	if !changed || len(next.FreezeDates) != 1 {
		t.Fatalf("expected unfreeze regardless of budget")
	}
}

func TestSetNote(t *testing.T) {
	h := New("Read")
	next, changed := SetNote(h, "2024-01-01", "  chapter 3  ")
	if !changed || next.Notes["2024-01-01"] != "chapter 3" {
		t.Fatalf("expected trimmed note, got %q", next.Notes["2024-01-01"])
	}
	if _, ok := h.Notes["2024-01-01"]; ok {
		t.Fatalf("set note modified its input")
	}
	if _, changed := SetNote(next, "2024-01-01", "chapter 3"); changed {
		t.Fatalf("expected identical note to be a no-op")
	}
	cleared, changed := SetNote(next, "2024-01-01", "   ")
	if !changed {
		t.Fatalf("expected blank note to remove")
	}
	if _, ok := cleared.Notes["2024-01-01"]; ok {
		t.Fatalf("expected note removed")
	}
}

func TestResetLog(t *testing.T) {
	h := New("Read")
	h.FreezeEnabled = true
	h.TargetDays = 4
	SetValue(h, "2024-01-01", 1)
	h.Notes["2024-01-01"] = "x"
	h.FreezeDates = []string{"2024-01-02"}
	next := ResetLog(h)
	if len(next.Log) != 0 || len(next.Notes) != 0 || len(next.FreezeDates) != 0 {
		t.Fatalf("expected cleared history, got %+v", next)
	}
	if next.ID != h.ID || next.TargetDays != 4 || !next.FreezeEnabled {
		t.Fatalf("expected configuration preserved")
	}
	if Value(h, "2024-01-01") != 1 {
		t.Fatalf("reset modified its input")
	}
}

func TestFreezeOnInactiveDay(t *testing.T) {
	h := New("Gym")
	h.ActiveDays = []int{1, 3} // Mon, Wed
	h.FreezeEnabled = true
	SetValue(h, "2024-01-10", 1) // Wed
	SetValue(h, "2024-01-08", 1) // Mon

	// 2024-01-09 is a Tuesday.
	next, changed := ToggleFreeze(h, "2024-01-09")
	if !changed || !IsFrozen(next, "2024-01-09") {
		t.Fatalf("expected freeze on an inactive day to be placed")
	}
	w := window()
	if got := CurrentStreak(next, w); got != 2 {
		t.Fatalf("expected inactive freeze to be ignored by the streak, got %d", got)
	}
	if FreezesLeft(next) != 2 {
		t.Fatalf("expected the pass to be spent, %d left", FreezesLeft(next))
	}
	if CellState(next, "2024-01-09") != CellInactive {
		t.Fatalf("expected inactive cell")
	}
}
