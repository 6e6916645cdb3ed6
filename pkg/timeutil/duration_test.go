package timeutil

import (
	"testing"
	"time"
)

func TestParseWindowDefault(t *testing.T) {
	dur, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 53 * 7 * 24 * time.Hour
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "53w" {
		t.Fatalf("expected label 53w, got %s", label)
	}
}

func TestParseWindowOrFallback(t *testing.T) {
	dur, label, err := ParseWindowOr(" ", DefaultInterval)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dur != 30*time.Second || label != "30s" {
		t.Fatalf("expected 30s, got %v (%s)", dur, label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	dur, label, err := ParseWindow("1w2d6h30m")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := (7*24+2*24+6)*time.Hour + 30*time.Minute
	if dur != want {
		t.Fatalf("expected %v, got %v", want, dur)
	}
	if label != "1w2d6h30m" {
		t.Fatalf("unexpected label: %s", label)
	}
}

func TestParseWindowInvalid(t *testing.T) {
	if _, _, err := ParseWindow("noop"); err == nil {
		t.Fatalf("expected error for invalid window")
	}
}

func TestWindowDays(t *testing.T) {
	if got := WindowDays(12 * 7 * 24 * time.Hour); got != 84 {
		t.Fatalf("expected 84, got %d", got)
	}
	if got := WindowDays(time.Hour); got != 1 {
		t.Fatalf("expected at least one day, got %d", got)
	}
}
