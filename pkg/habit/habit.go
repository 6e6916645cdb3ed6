// Package habit defines the tracked habit, its per-day log and the pure
// functions that derive streaks and progress from it.
package habit

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxTitleLength bounds the display title.
const MaxTitleLength = 40

var (
	ErrTitleRequired = errors.New("habit: title required")
	ErrTitleTooLong  = fmt.Errorf("habit: title longer than %d characters", MaxTitleLength)
)

// Palette and Icons are the presentation choices offered for new habits.
var (
	Palette = []string{"#6c63ff", "#a78bfa", "#ec4899", "#f97316", "#eab308", "#22c55e",
		"#14b8a6", "#06b6d4", "#3b82f6", "#8b5cf6", "#d946ef", "#f43f5e"}
	Icons = []string{"🧘", "🏃", "📚", "✏️", "💧", "🥗", "🏋️", "🎵", "🧠", "💤", "🎯", "⭐",
		"🚴", "🌳", "💊", "🎨", "🖊️", "🏊"}
)

const (
	DefaultTargetDays   = 7
	DefaultFreezePasses = 3
	DefaultReminder     = "08:00"
)

// Habit is one tracked ritual. Treat a *Habit handed out by this package as
// immutable: mutators return a new value instead of editing in place.
type Habit struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"desc,omitempty"`
	Category      Category `json:"category,omitempty"`
	Icon          string   `json:"icon,omitempty"`
	Color         string   `json:"color,omitempty"`
	ActiveDays    []int    `json:"activeDays,omitempty"`
	MultiCheck    bool     `json:"multiCheck"`
	TargetEnabled bool     `json:"targetEnabled"`
	TargetDays    int      `json:"targetDays,omitempty"`
	FreezeEnabled bool     `json:"freezeEnabled"`
	FreezePasses  int      `json:"freezePasses,omitempty"`
	FreezeDates   []string `json:"freezeDates"`
	NotifEnabled  bool     `json:"notifEnabled"`
	Reminders     []string `json:"reminders"`
	Log           Log      `json:"log"`
	Notes         Notes    `json:"notes"`
}

// New returns a habit with a generated id, the default configuration and an
// empty log.
func New(title string) *Habit {
	return &Habit{
		ID:           NewID(),
		Title:        strings.TrimSpace(title),
		Category:     CategoryNone,
		Icon:         Icons[0],
		Color:        Palette[0],
		ActiveDays:   AllDays(),
		TargetDays:   DefaultTargetDays,
		FreezePasses: DefaultFreezePasses,
		FreezeDates:  []string{},
		Reminders:    []string{},
		Log:          Log{},
		Notes:        Notes{},
	}
}

// NewID returns a fresh opaque habit identifier.
func NewID() string {
	return uuid.NewString()
}

// AllDays returns every weekday index, Sunday first.
func AllDays() []int {
	return []int{0, 1, 2, 3, 4, 5, 6}
}

// NormalizeDays dedupes and sorts days, dropping out-of-range values. An empty
// or complete set becomes the full week.
func NormalizeDays(days []int) []int {
	seen := make(map[int]struct{}, 7)
	out := make([]int, 0, 7)
	for _, d := range days {
		if d < 0 || d > 6 {
			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	if len(out) == 0 || len(out) == 7 {
		return AllDays()
	}
	sort.Ints(out)
	return out
}

// Validate checks the fields required to persist a habit.
func (h *Habit) Validate() error {
	title := strings.TrimSpace(h.Title)
	if title == "" {
		return ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// Clone returns a deep copy of h.
func (h *Habit) Clone() *Habit {
	if h == nil {
		return nil
	}
	cp := *h
	if h.ActiveDays != nil {
		cp.ActiveDays = append([]int{}, h.ActiveDays...)
	}
	if h.FreezeDates != nil {
		cp.FreezeDates = append([]string{}, h.FreezeDates...)
	}
	if h.Reminders != nil {
		cp.Reminders = append([]string{}, h.Reminders...)
	}
	if h.Log != nil {
		cp.Log = make(Log, len(h.Log))
		for k, v := range h.Log {
			cp.Log[k] = v
		}
	}
	if h.Notes != nil {
		cp.Notes = make(Notes, len(h.Notes))
		for k, v := range h.Notes {
			cp.Notes[k] = v
		}
	}
	return &cp
}

// Configure copies the user-editable configuration of src onto a clone of h,
// keeping h's id, log, notes and freeze dates.
func (h *Habit) Configure(src *Habit) *Habit {
	next := h.Clone()
	next.Title = strings.TrimSpace(src.Title)
	next.Description = src.Description
	next.Category = src.Category
	next.Icon = src.Icon
	next.Color = src.Color
	next.ActiveDays = NormalizeDays(src.ActiveDays)
	next.MultiCheck = src.MultiCheck
	next.TargetEnabled = src.TargetEnabled
	next.TargetDays = src.TargetDays
	next.FreezeEnabled = src.FreezeEnabled
	next.FreezePasses = src.FreezePasses
	next.NotifEnabled = src.NotifEnabled
	next.Reminders = []string{}
	if src.NotifEnabled {
		next.Reminders = append(next.Reminders, src.Reminders...)
	}
	return next
}

func (h *Habit) String() string {
	return fmt.Sprintf("%s %s", h.Icon, h.Title)
}

// Log maps a day key to a positive value. A missing key means zero.
type Log map[string]int

// UnmarshalJSON accepts numbers and the legacy boolean form, dropping
// non-positive entries and keys that are not day keys.
func (l *Log) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*l = nil
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(Log, len(raw))
	for key, val := range raw {
		if !IsDayKey(key) {
			continue
		}
		var n float64
		if err := json.Unmarshal(val, &n); err == nil {
			if v := int(n); v > 0 {
				out[key] = v
			}
			continue
		}
		var done bool
		if err := json.Unmarshal(val, &done); err == nil {
			if done {
				out[key] = 1
			}
			continue
		}
		return fmt.Errorf("habit: log value for %s: %s", key, string(val))
	}
	*l = out
	return nil
}

type habitJSON Habit

// UnmarshalJSON keeps only distinct day keys in FreezeDates. Log and Notes
// clean themselves.
func (h *Habit) UnmarshalJSON(b []byte) error {
	var raw habitJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	if raw.FreezeDates != nil {
		dates := make([]string, 0, len(raw.FreezeDates))
		seen := make(map[string]bool, len(raw.FreezeDates))
		for _, d := range raw.FreezeDates {
			if IsDayKey(d) && !seen[d] {
				seen[d] = true
				dates = append(dates, d)
			}
		}
		raw.FreezeDates = dates
	}
	*h = Habit(raw)
	return nil
}

// Notes maps a day key to non-empty text.
type Notes map[string]string

// UnmarshalJSON drops blank notes and keys that are not day keys.
func (n *Notes) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = nil
		return nil
	}
	var raw map[string]string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(Notes, len(raw))
	for key, text := range raw {
		if !IsDayKey(key) {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			out[key] = text
		}
	}
	*n = out
	return nil
}
