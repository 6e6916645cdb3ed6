package options

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/habit"
	"tableflip.dev/habitus/pkg/timeutil"
)

// HabitOptions carries the configurable fields of a habit.
type HabitOptions struct {
	Description string
	Category    string
	Icon        string
	Color       string
	Days        string
	Multi       bool
	Target      int
	Freeze      int
	Remind      []string
	NoRemind    bool
}

func AddHabitArgs(cmd *cobra.Command, o *HabitOptions) {
	cmd.Flags().StringVarP(&o.Description, "desc", "d", "",
		"Describe the habit.")
	cmd.Flags().StringVarP(&o.Category, "category", "c", "",
		"Category ("+categoryNames()+").")
	_ = cmd.RegisterFlagCompletionFunc("category", completeCategory)
	cmd.Flags().StringVar(&o.Icon, "icon", "",
		"Icon shown before the title.")
	cmd.Flags().StringVar(&o.Color, "color", "",
		`Heat map color, example: --color="#22c55e".`)
	cmd.Flags().StringVar(&o.Days, "days", "",
		`Active weekdays, 0 is Sunday, example: --days=1,3,5. Empty means every day.`)
	cmd.Flags().BoolVarP(&o.Multi, "multi", "m", false,
		"Count several check-ins per day.")
	cmd.Flags().IntVar(&o.Target, "target", 0,
		"Weekly target in days, 0 disables it.")
	cmd.Flags().IntVar(&o.Freeze, "freeze", 0,
		"Freeze passes available, 0 disables freezes.")
	cmd.Flags().StringArrayVar(&o.Remind, "remind", nil,
		`Reminder time, repeatable, example: --remind=08:00 --remind=20:30.`)
	cmd.Flags().BoolVar(&o.NoRemind, "no-remind", false,
		"Turn reminders off.")
}

// Apply copies the flags the user set onto h. Flags left alone keep h's
// value, so the same options serve new and edit.
func (o *HabitOptions) Apply(cmd *cobra.Command, h *habit.Habit) error {
	changed := cmd.Flags().Changed
	if changed("desc") {
		h.Description = strings.TrimSpace(o.Description)
	}
	if changed("category") {
		c, err := habit.ParseCategory(o.Category)
		if err != nil {
			return err
		}
		h.Category = c
	}
	if changed("icon") {
		h.Icon = strings.TrimSpace(o.Icon)
	}
	if changed("color") {
		c := strings.TrimSpace(o.Color)
		if !strings.HasPrefix(c, "#") || (len(c) != 7 && len(c) != 4) {
			return fmt.Errorf("invalid --color %q, expected #rrggbb", o.Color)
		}
		h.Color = c
	}
	if changed("days") {
		days, err := ParseDays(o.Days)
		if err != nil {
			return err
		}
		h.ActiveDays = days
	}
	if changed("multi") {
		h.MultiCheck = o.Multi
	}
	if changed("target") {
		if o.Target < 0 || o.Target > 7 {
			return fmt.Errorf("invalid --target %d, expected 0 to 7", o.Target)
		}
		h.TargetEnabled = o.Target > 0
		if o.Target > 0 {
			h.TargetDays = o.Target
		}
	}
	if changed("freeze") {
		if o.Freeze < 0 {
			return fmt.Errorf("invalid --freeze %d", o.Freeze)
		}
		h.FreezeEnabled = o.Freeze > 0
		if o.Freeze > 0 {
			h.FreezePasses = o.Freeze
		}
	}
	if changed("remind") {
		reminders := make([]string, 0, len(o.Remind))
		for _, r := range o.Remind {
			at, err := timeutil.ParseClock(r)
			if err != nil {
				return err
			}
			reminders = append(reminders, at)
		}
		h.NotifEnabled = true
		h.Reminders = reminders
	}
	if changed("no-remind") && o.NoRemind {
		h.NotifEnabled = false
		h.Reminders = []string{}
	}
	return nil
}

// ParseDays reads a comma separated weekday list. Names like "mon" are
// accepted as well as 0 to 6.
func ParseDays(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return habit.AllDays(), nil
	}
	var days []int
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		if d, ok := dayNames[part]; ok {
			days = append(days, d)
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil || d < 0 || d > 6 {
			return nil, fmt.Errorf("invalid day %q, expected 0 to 6 or a weekday name", part)
		}
		days = append(days, d)
	}
	return habit.NormalizeDays(days), nil
}

var dayNames = map[string]int{
	"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
}
