package app

import (
	"context"
	"sort"
	"time"

	"tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/habit"
)

// ReportDay is one day of a habit inside the report window that has a
// check-in, a freeze or a note.
type ReportDay struct {
	Day    string
	Value  int
	Frozen bool
	Note   string
}

// ReportSection groups the reported days of one habit.
type ReportSection struct {
	Habit *habit.Habit
	Days  []ReportDay
}

// ReportResult encapsulates the check-in history for a time window.
type ReportResult struct {
	Since    time.Time
	Until    time.Time
	Sections []ReportSection
	// Total counts check-ins for multi-check habits and done days otherwise.
	Total int
}

// Report returns the days with activity between the provided bounds, grouped
// by habit in display order.
func (s *Service) Report(ctx context.Context, since, until time.Time) (ReportResult, error) {
	if since.After(until) {
		since, until = until, since
	}
	all, err := s.load(ctx)
	if err != nil {
		return ReportResult{}, err
	}
	first, last := calendar.DayKey(since), calendar.DayKey(until)
	inRange := func(key string) bool { return key >= first && key <= last }

	result := ReportResult{Since: since, Until: until}
	for _, h := range all {
		days := make(map[string]*ReportDay)
		ensure := func(key string) *ReportDay {
			d, ok := days[key]
			if !ok {
				d = &ReportDay{Day: key}
				days[key] = d
			}
			return d
		}
		for key, v := range h.Log {
			if v <= 0 || !inRange(key) {
				continue
			}
			ensure(key).Value = v
			if h.MultiCheck {
				result.Total += v
			} else {
				result.Total++
			}
		}
		for _, key := range h.FreezeDates {
			if inRange(key) {
				ensure(key).Frozen = true
			}
		}
		for key, note := range h.Notes {
			if inRange(key) {
				ensure(key).Note = note
			}
		}
		if len(days) == 0 {
			continue
		}
		section := ReportSection{Habit: h.Clone(), Days: make([]ReportDay, 0, len(days))}
		for _, d := range days {
			section.Days = append(section.Days, *d)
		}
		sort.Slice(section.Days, func(i, j int) bool { return section.Days[i].Day < section.Days[j].Day })
		result.Sections = append(result.Sections, section)
	}
	return result, nil
}
