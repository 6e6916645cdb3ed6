package calendar

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 30, 0, 0, time.Local)
}

func TestDayKey(t *testing.T) {
	if got := DayKey(day(2024, time.January, 5)); got != "2024-01-05" {
		t.Fatalf("expected 2024-01-05, got %s", got)
	}
}

func TestWindow(t *testing.T) {
	today := day(2024, time.March, 1)
	w := Window(today, WindowDays)
	if len(w) != WindowDays {
		t.Fatalf("expected %d days, got %d", WindowDays, len(w))
	}
	if w[len(w)-1] != "2024-03-01" {
		t.Fatalf("expected window to end today, got %s", w[len(w)-1])
	}
	if w[len(w)-2] != "2024-02-29" {
		t.Fatalf("expected leap day before today, got %s", w[len(w)-2])
	}
	if w[0] != "2023-03-03" {
		t.Fatalf("unexpected first day %s", w[0])
	}
	for i := 1; i < len(w); i++ {
		if w[i-1] >= w[i] {
			t.Fatalf("window not ascending at %d: %s >= %s", i, w[i-1], w[i])
		}
	}
}

func TestWindowEmpty(t *testing.T) {
	if w := Window(day(2024, time.March, 1), 0); len(w) != 0 {
		t.Fatalf("expected empty window, got %v", w)
	}
}

func TestWeekdayOf(t *testing.T) {
	tests := map[string]int{
		"2024-01-07": 0, // Sunday
		"2024-01-08": 1,
		"2024-01-13": 6,
		"not-a-day":  -1,
	}
	for key, want := range tests {
		if got := WeekdayOf(key); got != want {
			t.Fatalf("WeekdayOf(%s): expected %d, got %d", key, want, got)
		}
	}
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		today time.Time
		want  string
	}{
		{today: day(2024, time.January, 8), want: "2024-01-08"},  // Monday
		{today: day(2024, time.January, 10), want: "2024-01-08"}, // Wednesday
		{today: day(2024, time.January, 14), want: "2024-01-08"}, // Sunday closes the week
		{today: day(2024, time.January, 1), want: "2024-01-01"},
		{today: day(2023, time.December, 31), want: "2023-12-25"},
	}
	for _, tt := range tests {
		if got := WeekStart(tt.today); got != tt.want {
			t.Fatalf("WeekStart(%s): expected %s, got %s", DayKey(tt.today), tt.want, got)
		}
	}
}

func TestWeekDays(t *testing.T) {
	days := WeekDays(day(2024, time.January, 14))
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	if days[0] != "2024-01-08" || days[6] != "2024-01-14" {
		t.Fatalf("unexpected week %v", days)
	}
}

func TestMonthLabels(t *testing.T) {
	// 2024-01-30 is a Tuesday.
	window := []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02", "2024-02-03", "2024-02-04"}
	labels, startDow := MonthLabels(window)
	if startDow != 2 {
		t.Fatalf("expected startDow 2, got %d", startDow)
	}
	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %v", labels)
	}
	if labels[0].Label != "Jan" || labels[0].Column != 0 {
		t.Fatalf("unexpected first label %+v", labels[0])
	}
	// 2024-02-04 is Sunday and starts column 1; February begins in column 0.
	if labels[1].Label != "Feb" || labels[1].Column != 0 {
		t.Fatalf("unexpected second label %+v", labels[1])
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(day(2024, time.February, 10)); got != 29 {
		t.Fatalf("expected 29, got %d", got)
	}
	if got := DaysIn(day(2023, time.February, 10)); got != 28 {
		t.Fatalf("expected 28, got %d", got)
	}
}
