package commands

import (
	"reflect"
	"testing"

	"tableflip.dev/habitus/pkg/habit"
)

func TestCommandTree(t *testing.T) {
	root := New()
	for _, name := range []string{"new", "edit", "delete", "list", "show", "stats", "check", "undo",
		"toggle", "freeze", "note", "move", "report", "export", "import", "archive", "remind", "key",
		"info", "completion", "version", "upgrade"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd == root || cmd.Name() != name {
			t.Fatalf("expected %q to be registered", name)
		}
	}
	for alias, name := range map[string]string{"add": "new", "rm": "delete", "ls": "list", "done": "check"} {
		cmd, _, err := root.Find([]string{alias})
		if err != nil || cmd.Name() != name {
			t.Fatalf("expected alias %q for %q", alias, name)
		}
	}
}

func TestDayFlags(t *testing.T) {
	root := New()
	for name, want := range map[string]bool{"toggle": true, "freeze": true, "note": true, "check": false, "undo": false} {
		cmd, _, _ := root.Find([]string{name})
		if got := cmd.Flags().Lookup("on") != nil; got != want {
			t.Fatalf("%s: expected --on %t, got %t", name, want, got)
		}
	}
}

func TestMatchTitles(t *testing.T) {
	all := []*habit.Habit{habit.New("Water"), habit.New("Walk"), habit.New("Read")}
	if got := matchTitles(all, "wa"); !reflect.DeepEqual(got, []string{"Water", "Walk"}) {
		t.Fatalf("unexpected completions %v", got)
	}
	if got := matchTitles(all, ""); len(got) != 3 {
		t.Fatalf("expected every title, got %v", got)
	}
}
