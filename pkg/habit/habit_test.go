package habit

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestNewDefaults(t *testing.T) {
	h := New("  Water  ")
	if h.ID == "" {
		t.Fatalf("expected generated id")
	}
	if h.Title != "Water" || h.Category != CategoryNone || h.TargetDays != 7 || h.FreezePasses != 3 {
		t.Fatalf("unexpected defaults %+v", h)
	}
	if other := New("Water"); other.ID == h.ID {
		t.Fatalf("expected unique ids")
	}
}

func TestValidate(t *testing.T) {
	if err := (&Habit{Title: "  "}).Validate(); !errors.Is(err, ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
	if err := (&Habit{Title: strings.Repeat("a", 41)}).Validate(); !errors.Is(err, ErrTitleTooLong) {
		t.Fatalf("expected ErrTitleTooLong, got %v", err)
	}
	if err := (&Habit{Title: "Water"}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNormalizeDays(t *testing.T) {
	tests := []struct {
		in   []int
		want []int
	}{
		{in: nil, want: AllDays()},
		{in: []int{6, 0, 1, 2, 3, 4, 5}, want: AllDays()},
		{in: []int{5, 1, 1, 9, -1}, want: []int{1, 5}},
	}
	for _, tt := range tests {
		if got := NormalizeDays(tt.in); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("NormalizeDays(%v): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestCloneIsDeep(t *testing.T) {
	h := New("Water")
	SetValue(h, "2024-01-01", 1)
	h.FreezeDates = append(h.FreezeDates, "2024-01-02")
	cp := h.Clone()
	SetValue(cp, "2024-01-01", 0)
	cp.FreezeDates[0] = "2024-02-02"
	cp.ActiveDays[0] = 3
	if Value(h, "2024-01-01") != 1 || h.FreezeDates[0] != "2024-01-02" || h.ActiveDays[0] != 0 {
		t.Fatalf("clone shares state with the original")
	}
}

func TestConfigureKeepsHistory(t *testing.T) {
	h := New("Water")
	SetValue(h, "2024-01-01", 1)
	h.Notes["2024-01-01"] = "ok"
	edit := &Habit{
		Title:        "Drink water",
		ActiveDays:   []int{1, 2, 3, 4, 5, 6, 0},
		Reminders:    []string{"09:00"},
		NotifEnabled: false,
		Category:     CategoryHealth,
	}
	next := h.Configure(edit)
	if next.ID != h.ID || Value(next, "2024-01-01") != 1 || next.Notes["2024-01-01"] != "ok" {
		t.Fatalf("expected history preserved, got %+v", next)
	}
	if next.Title != "Drink water" || next.Category != CategoryHealth {
		t.Fatalf("expected configuration applied")
	}
	if len(next.Reminders) != 0 {
		t.Fatalf("expected reminders dropped when notifications are off")
	}
	if !reflect.DeepEqual(next.ActiveDays, AllDays()) {
		t.Fatalf("expected full week, got %v", next.ActiveDays)
	}
}

func TestLogDecodesLegacyValues(t *testing.T) {
	var h Habit
	data := `{"id":"h1","title":"Water","log":{"2024-01-01":true,"2024-01-02":false,"2024-01-03":3,"2024-01-04":0,"2024-01-05":-2}}`
	if err := json.Unmarshal([]byte(data), &h); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := Log{"2024-01-01": 1, "2024-01-03": 3}
	if !reflect.DeepEqual(h.Log, want) {
		t.Fatalf("expected %v, got %v", want, h.Log)
	}
}

func TestDecodeDropsInvalidDayKeys(t *testing.T) {
	var h Habit
	data := `{"id":"h1","title":"Pushups","multiCheck":true,
		"log":{"2024-01-01":1,"not-a-day":40,"2024-13-45":2,"2024-1-2":3},
		"notes":{"2024-01-01":"ok","yesterday":"no"},
		"freezeDates":["2024-01-03","2024-02-30","2024-01-03",""]}`
	if err := json.Unmarshal([]byte(data), &h); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if want := (Log{"2024-01-01": 1}); !reflect.DeepEqual(h.Log, want) {
		t.Fatalf("expected %v, got %v", want, h.Log)
	}
	if want := (Notes{"2024-01-01": "ok"}); !reflect.DeepEqual(h.Notes, want) {
		t.Fatalf("expected %v, got %v", want, h.Notes)
	}
	if want := []string{"2024-01-03"}; !reflect.DeepEqual(h.FreezeDates, want) {
		t.Fatalf("expected %v, got %v", want, h.FreezeDates)
	}
	if Total(&h) != 1 || ActiveDayCount(&h) != 1 {
		t.Fatalf("expected totals over valid days only, got %d and %d", Total(&h), ActiveDayCount(&h))
	}
}

func TestIsDayKey(t *testing.T) {
	for key, want := range map[string]bool{
		"2024-01-01": true,
		"2024-02-29": true,
		"2023-02-29": false,
		"2024-1-1":   false,
		"2024-13-01": false,
		"":           false,
		"today":      false,
	} {
		if got := IsDayKey(key); got != want {
			t.Fatalf("IsDayKey(%q): expected %t", key, want)
		}
	}
}

func TestLogRejectsGarbage(t *testing.T) {
	var h Habit
	if err := json.Unmarshal([]byte(`{"log":{"2024-01-01":"yes"}}`), &h); err == nil {
		t.Fatalf("expected error for string log value")
	}
}

func TestNotesDropBlank(t *testing.T) {
	var h Habit
	if err := json.Unmarshal([]byte(`{"notes":{"2024-01-01":"  ","2024-01-02":" hi "}}`), &h); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(h.Notes, Notes{"2024-01-02": "hi"}) {
		t.Fatalf("unexpected notes %v", h.Notes)
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Fitness ")
	if err != nil || c != CategoryFitness {
		t.Fatalf("expected fitness, got %q %v", c, err)
	}
	if c, err := ParseCategory(""); err != nil || c != CategoryNone {
		t.Fatalf("expected none for empty input")
	}
	if _, err := ParseCategory("cooking"); err == nil {
		t.Fatalf("expected error for unknown category")
	}
	if Category("").Label() != "All" || CategoryHealth.String() != "🏥 Health" {
		t.Fatalf("unexpected category presentation")
	}
}
