// Package events carries the discrete feedback signals the engine emits for a
// presentation layer to react to.
package events

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// Type enumerates feedback events.
type Type string

const (
	// CheckedIn is emitted when a check-in or toggle leaves a day done.
	CheckedIn Type = "checked-in"
	// MilestoneReached is emitted the first time a streak lands on a
	// milestone.
	MilestoneReached Type = "milestone-reached"
)

// Event is one feedback signal.
type Event struct {
	Type      Type
	HabitID   string
	Title     string
	Icon      string
	Day       string
	Value     int
	Milestone int
}

// Describe renders the event in a human-friendly format for logs.
func (e Event) Describe() string {
	switch e.Type {
	case MilestoneReached:
		return fmt.Sprintf(`type:%q habit:%q milestone:%d`, e.Type, e.HabitID, e.Milestone)
	default:
		return fmt.Sprintf(`type:%q habit:%q day:%q value:%d`, e.Type, e.HabitID, e.Day, e.Value)
	}
}

// Sink receives events. Emit must not block for long; it runs inside the
// mutation path.
type Sink interface {
	Emit(Event)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) { f(e) }

// Multi fans events out to every non-nil sink.
func Multi(sinks ...Sink) Sink {
	return SinkFunc(func(e Event) {
		for _, s := range sinks {
			if s != nil {
				s.Emit(e)
			}
		}
	})
}

// Discard drops every event.
var Discard Sink = SinkFunc(func(Event) {})

// Recorder keeps emitted events in order.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of everything recorded.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// OfType returns the recorded events of type t.
func (r *Recorder) OfType(t Type) []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Bell is the audible confirmation for check-ins: it rings the terminal bell
// when Out is a terminal.
type Bell struct {
	Out *os.File
}

func (b Bell) Emit(e Event) {
	if e.Type != CheckedIn {
		return
	}
	out := b.Out
	if out == nil {
		out = os.Stdout
	}
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return
	}
	_, _ = io.WriteString(out, "\a")
}
