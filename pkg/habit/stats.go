package habit

import (
	"strconv"
	"time"

	"tableflip.dev/habitus/pkg/calendar"
)

// Milestones are the streak lengths that earn a badge, ascending.
var Milestones = []int{7, 14, 21, 30, 60, 90, 180, 365}

// CurrentStreak counts satisfied active days walking back from the last day
// of window. Inactive days are skipped; the first unsatisfied active day, today
// included, ends the streak.
func CurrentStreak(h *Habit, window []string) int {
	streak := 0
	for i := len(window) - 1; i >= 0; i-- {
		key := window[i]
		if !IsActiveDay(h, key) {
			continue
		}
		if !satisfied(h, key) {
			break
		}
		streak++
	}
	return streak
}

// BestStreak returns the longest run of satisfied active days in window.
func BestStreak(h *Habit, window []string) int {
	best, cur := 0, 0
	for _, key := range window {
		if !IsActiveDay(h, key) {
			continue
		}
		if satisfied(h, key) {
			cur++
			if cur > best {
				best = cur
			}
		} else {
			cur = 0
		}
	}
	return best
}

// Total is the sum of check-ins for multi-check habits and the number of done
// days otherwise.
func Total(h *Habit) int {
	if !h.MultiCheck {
		return ActiveDayCount(h)
	}
	total := 0
	for _, v := range h.Log {
		if v > 0 {
			total += v
		}
	}
	return total
}

// ActiveDayCount is the number of days with any check-in.
func ActiveDayCount(h *Habit) int {
	n := 0
	for _, v := range h.Log {
		if v > 0 {
			n++
		}
	}
	return n
}

// Progress is completion against the weekly target.
type Progress struct {
	Completed int
	Target    int
}

// Done reports whether the target is met.
func (p Progress) Done() bool {
	return p.Target > 0 && p.Completed >= p.Target
}

// WeeklyProgress counts the days of today's Monday-based week with a check-in.
func WeeklyProgress(h *Habit, today time.Time) Progress {
	p := Progress{Target: h.TargetDays}
	if p.Target <= 0 {
		p.Target = DefaultTargetDays
	}
	for _, key := range calendar.WeekDays(today) {
		if Value(h, key) > 0 {
			p.Completed++
		}
	}
	return p
}

// EarnedBadges returns the milestones reached by the best streak.
func EarnedBadges(best int) []int {
	earned := make([]int, 0, len(Milestones))
	for _, m := range Milestones {
		if best >= m {
			earned = append(earned, m)
		}
	}
	return earned
}

// Summary bundles the derived numbers shown for a habit.
type Summary struct {
	Today       string
	TodayValue  int
	TodayActive bool
	Current     int
	Best        int
	Total       int
	ActiveDays  int
	Weekly      Progress
	Badges      []int
	FreezesLeft int
}

// Summarize derives every statistic for h over the window ending today.
func Summarize(h *Habit, today time.Time) Summary {
	window := calendar.Window(today, calendar.WindowDays)
	key := calendar.DayKey(today)
	best := BestStreak(h, window)
	return Summary{
		Today:       key,
		TodayValue:  Value(h, key),
		TodayActive: IsActiveDay(h, key),
		Current:     CurrentStreak(h, window),
		Best:        best,
		Total:       Total(h),
		ActiveDays:  ActiveDayCount(h),
		Weekly:      WeeklyProgress(h, today),
		Badges:      EarnedBadges(best),
		FreezesLeft: FreezesLeft(h),
	}
}

// MilestoneEmoji returns the badge glyph for a streak length.
func MilestoneEmoji(days int) string {
	switch {
	case days >= 365:
		return "🏆"
	case days >= 180:
		return "💎"
	case days >= 90:
		return "🥇"
	case days >= 60:
		return "🥈"
	case days >= 30:
		return "🥉"
	case days >= 21:
		return "⚡"
	case days >= 14:
		return "🔥"
	default:
		return "🌟"
	}
}

// MilestoneLabel renders a streak length as "N days".
func MilestoneLabel(days int) string {
	if days == 1 {
		return "1 day"
	}
	return strconv.Itoa(days) + " days"
}
