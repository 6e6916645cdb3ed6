package options

import (
	"reflect"
	"testing"

	"github.com/spf13/cobra"

	"tableflip.dev/habitus/pkg/habit"
)

func TestParseDays(t *testing.T) {
	tests := map[string][]int{
		"":              habit.AllDays(),
		"1,3,5":         {1, 3, 5},
		"fri, mon,mon":  {1, 5},
		"0,1,2,3,4,5,6": habit.AllDays(),
	}
	for in, want := range tests {
		got, err := ParseDays(in)
		if err != nil {
			t.Fatalf("ParseDays(%q): %v", in, err)
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("ParseDays(%q): expected %v, got %v", in, want, got)
		}
	}
	if _, err := ParseDays("7"); err == nil {
		t.Fatalf("expected error for day 7")
	}
}

func TestApplyOnlyChangedFlags(t *testing.T) {
	o := &HabitOptions{}
	cmd := &cobra.Command{Use: "edit"}
	AddHabitArgs(cmd, o)
	if err := cmd.Flags().Parse([]string{"--target", "3", "--remind", "8:05", "--days", "mon,wed"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	h := &habit.Habit{Title: "Walk", Description: "keep", MultiCheck: true, FreezeEnabled: true, FreezePasses: 2}
	if err := o.Apply(cmd, h); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !h.TargetEnabled || h.TargetDays != 3 {
		t.Fatalf("expected target applied, got %+v", h)
	}
	if !h.NotifEnabled || !reflect.DeepEqual(h.Reminders, []string{"08:05"}) {
		t.Fatalf("expected canonical reminder, got %v", h.Reminders)
	}
	if !reflect.DeepEqual(h.ActiveDays, []int{1, 3}) {
		t.Fatalf("unexpected days %v", h.ActiveDays)
	}
	if h.Description != "keep" || !h.MultiCheck || !h.FreezeEnabled || h.FreezePasses != 2 {
		t.Fatalf("expected untouched fields kept, got %+v", h)
	}
}

func TestApplyRejectsBadValues(t *testing.T) {
	for _, args := range [][]string{
		{"--category", "cooking"},
		{"--color", "green"},
		{"--target", "9"},
		{"--remind", "25:00"},
	} {
		o := &HabitOptions{}
		cmd := &cobra.Command{Use: "new"}
		AddHabitArgs(cmd, o)
		if err := cmd.Flags().Parse(args); err != nil {
			t.Fatalf("parse %v: %v", args, err)
		}
		if err := o.Apply(cmd, &habit.Habit{}); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}
