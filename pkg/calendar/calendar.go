// Package calendar holds the date arithmetic used for habit logs. Every
// function works in local time.
package calendar

import (
	"time"
)

const (
	// LayoutDayKey is the canonical day key layout.
	LayoutDayKey = "2006-01-02"

	// WindowDays is the length of the rolling tracking window.
	WindowDays = 365
)

// DayKey returns the local YYYY-MM-DD key for t.
func DayKey(t time.Time) string {
	return t.Local().Format(LayoutDayKey)
}

// ParseDayKey parses a day key as local midnight.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(LayoutDayKey, key, time.Local)
}

// Midnight truncates t to the start of its local day.
func Midnight(t time.Time) time.Time {
	l := t.Local()
	return time.Date(l.Year(), l.Month(), l.Day(), 0, 0, 0, 0, time.Local)
}

// Window returns n day keys, oldest first, ending with today.
func Window(today time.Time, n int) []string {
	if n <= 0 {
		return []string{}
	}
	start := Midnight(today)
	days := make([]string, n)
	for i := 0; i < n; i++ {
		// AddDate keeps DST transitions from skipping or repeating a day.
		days[i] = DayKey(start.AddDate(0, 0, i-(n-1)))
	}
	return days
}

// WeekdayOf returns 0 (Sunday) through 6 (Saturday) for key, or -1 when the
// key is not a valid day.
func WeekdayOf(key string) int {
	t, err := ParseDayKey(key)
	if err != nil {
		return -1
	}
	return int(t.Weekday())
}

// WeekStart returns the Monday of the week containing today. Sunday closes the
// previous week.
func WeekStart(today time.Time) string {
	return DayKey(monday(today))
}

// WeekDays returns the seven keys Monday through Sunday of today's week.
func WeekDays(today time.Time) []string {
	start := monday(today)
	days := make([]string, 7)
	for i := range days {
		days[i] = DayKey(start.AddDate(0, 0, i))
	}
	return days
}

func monday(today time.Time) time.Time {
	d := Midnight(today)
	offset := 1 - int(d.Weekday())
	if d.Weekday() == time.Sunday {
		offset = -6
	}
	return d.AddDate(0, 0, offset)
}

// MonthLabel places a month name over a week column of the grid.
type MonthLabel struct {
	Label  string
	Column int
}

// MonthLabels returns the label for each month that starts inside window,
// positioned on a grid where each column is a Sunday-first week. startDow is
// the weekday of the first day, which is the number of padding cells before it.
func MonthLabels(window []string) ([]MonthLabel, int) {
	if len(window) == 0 {
		return nil, 0
	}
	startDow := WeekdayOf(window[0])
	if startDow < 0 {
		startDow = 0
	}
	labels := make([]MonthLabel, 0, 13)
	last := time.Month(0)
	for i, key := range window {
		t, err := ParseDayKey(key)
		if err != nil {
			continue
		}
		if t.Month() != last {
			labels = append(labels, MonthLabel{
				Label:  t.Format("Jan"),
				Column: (i + startDow) / 7,
			})
			last = t.Month()
		}
	}
	return labels, startDow
}

// DaysIn returns the number of days in the month of then.
func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.Local).Day()
}
