package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/habitus/pkg/calendar"
	"tableflip.dev/habitus/pkg/events"
	"tableflip.dev/habitus/pkg/habit"
	"tableflip.dev/habitus/pkg/logging"
	"tableflip.dev/habitus/pkg/milestone"
	"tableflip.dev/habitus/pkg/reminder"
	"tableflip.dev/habitus/pkg/store"
	"tableflip.dev/habitus/pkg/transfer"
)

var (
	ErrNotFound      = errors.New("app: habit not found")
	ErrAmbiguous     = errors.New("app: habit reference is ambiguous")
	ErrOutOfWindow   = errors.New("app: day is outside the tracked window")
	errNoPersistence = errors.New("app: no persistence configured")
)

// Service provides high-level operations for habits. It owns the single
// writer section every mutation goes through so CLIs and the reminder daemon
// can share logic.
type Service struct {
	Persistence store.Persistence
	// Events receives check-in and milestone feedback. Nil discards.
	Events events.Sink
	// Milestones decides which celebrations to show. Nil uses a process
	// lifetime ledger.
	Milestones *milestone.Trigger
	// Reminders computes reminder eligibility. Nil uses an in-memory ledger.
	Reminders *reminder.Checker
	// Now returns the wall clock. Nil uses time.Now.
	Now func() time.Time
	Log *zap.Logger

	mu sync.Mutex
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Today is the service's notion of the current time.
func (s *Service) Today() time.Time {
	return s.now()
}

func (s *Service) logger() *zap.Logger {
	return logging.OrNop(s.Log)
}

func (s *Service) emit(e events.Event) {
	if s.Events == nil {
		return
	}
	s.Events.Emit(e)
}

func (s *Service) load(ctx context.Context) ([]*habit.Habit, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Load(ctx), nil
}

// Habits lists every habit in display order. A non-empty category filters the
// list.
func (s *Service) Habits(ctx context.Context, category habit.Category) ([]*habit.Habit, error) {
	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*habit.Habit, 0, len(all))
	for _, h := range all {
		if category != habit.CategoryNone && h.Category.Or() != category {
			continue
		}
		out = append(out, h.Clone())
	}
	return out, nil
}

// Get resolves ref to a habit. ref may be a full id, an id prefix, or a
// case-insensitive title.
func (s *Service) Get(ctx context.Context, ref string) (*habit.Habit, error) {
	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	i, err := resolve(all, ref)
	if err != nil {
		return nil, err
	}
	return all[i].Clone(), nil
}

func resolve(all []*habit.Habit, ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return -1, ErrNotFound
	}
	for i, h := range all {
		if h.ID == ref {
			return i, nil
		}
	}
	match := -1
	for i, h := range all {
		if strings.HasPrefix(h.ID, ref) || strings.EqualFold(h.Title, ref) {
			if match >= 0 {
				return -1, fmt.Errorf("%w: %q", ErrAmbiguous, ref)
			}
			match = i
		}
	}
	if match < 0 {
		return -1, fmt.Errorf("%w: %q", ErrNotFound, ref)
	}
	return match, nil
}

// Create validates and appends a new habit. A missing id is generated.
func (s *Service) Create(ctx context.Context, h *habit.Habit) (*habit.Habit, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	base := habit.New(h.Title)
	if h.ID != "" {
		base.ID = h.ID
	}
	for _, existing := range all {
		if existing.ID == base.ID {
			return nil, fmt.Errorf("app: habit %s already exists", base.ID)
		}
	}
	next := base.Configure(h)
	if next.Icon == "" {
		next.Icon = habit.Icons[0]
	}
	if next.Color == "" {
		next.Color = habit.Palette[0]
	}
	if next.TargetDays <= 0 {
		next.TargetDays = habit.DefaultTargetDays
	}
	if next.FreezePasses <= 0 {
		next.FreezePasses = habit.DefaultFreezePasses
	}
	if next.NotifEnabled && len(next.Reminders) == 0 {
		next.Reminders = []string{habit.DefaultReminder}
	}
	if err := s.save(ctx, append(all, next)); err != nil {
		return nil, err
	}
	s.logger().Debug("created habit", zap.String("habit", next.ID))
	return next.Clone(), nil
}

// Edit replaces the configuration of the habit ref with cfg, keeping its id
// and history.
func (s *Service) Edit(ctx context.Context, ref string, cfg *habit.Habit) (*habit.Habit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	next, _, err := s.update(ctx, ref, func(h *habit.Habit) (*habit.Habit, bool) {
		return h.Configure(cfg), true
	})
	return next, err
}

// Delete removes every referenced habit and returns how many were removed.
// Unknown references fail the whole call before anything is removed.
func (s *Service) Delete(ctx context.Context, refs ...string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return 0, err
	}
	drop := make(map[int]struct{}, len(refs))
	for _, ref := range refs {
		i, err := resolve(all, ref)
		if err != nil {
			return 0, err
		}
		drop[i] = struct{}{}
	}
	if len(drop) == 0 {
		return 0, nil
	}
	kept := make([]*habit.Habit, 0, len(all)-len(drop))
	for i, h := range all {
		if _, ok := drop[i]; ok {
			s.logger().Debug("deleted habit", zap.String("habit", h.ID))
			continue
		}
		kept = append(kept, h)
	}
	if err := s.save(ctx, kept); err != nil {
		return 0, err
	}
	return len(drop), nil
}

// Move reorders the list so ref takes the position currently held by target.
func (s *Service) Move(ctx context.Context, ref, target string) ([]*habit.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	from, err := resolve(all, ref)
	if err != nil {
		return nil, err
	}
	to, err := resolve(all, target)
	if err != nil {
		return nil, err
	}
	if from != to {
		moved := all[from]
		all = append(all[:from], all[from+1:]...)
		all = append(all[:to], append([]*habit.Habit{moved}, all[to:]...)...)
		if err := s.save(ctx, all); err != nil {
			return nil, err
		}
	}
	out := make([]*habit.Habit, len(all))
	for i, h := range all {
		out[i] = h.Clone()
	}
	return out, nil
}

// CheckIn records a check-in for today.
func (s *Service) CheckIn(ctx context.Context, ref string) (*habit.Habit, bool, error) {
	today := s.now()
	return s.mutateDay(ctx, ref, today, calendar.DayKey(today), func(h *habit.Habit) (*habit.Habit, bool) {
		return habit.CheckIn(h, today)
	})
}

// Undo removes one of today's check-ins from a multi-check habit.
func (s *Service) Undo(ctx context.Context, ref string) (*habit.Habit, bool, error) {
	today := s.now()
	return s.update(ctx, ref, func(h *habit.Habit) (*habit.Habit, bool) {
		return habit.Undo(h, today)
	})
}

// ToggleDay flips day between done and not done.
func (s *Service) ToggleDay(ctx context.Context, ref, day string) (*habit.Habit, bool, error) {
	today := s.now()
	key, err := dayInWindow(today, day)
	if err != nil {
		return nil, false, err
	}
	return s.mutateDay(ctx, ref, today, key, func(h *habit.Habit) (*habit.Habit, bool) {
		return habit.ToggleDay(h, key)
	})
}

// ToggleFreeze places or lifts a freeze on day.
func (s *Service) ToggleFreeze(ctx context.Context, ref, day string) (*habit.Habit, bool, error) {
	key, err := dayInWindow(s.now(), day)
	if err != nil {
		return nil, false, err
	}
	return s.update(ctx, ref, func(h *habit.Habit) (*habit.Habit, bool) {
		return habit.ToggleFreeze(h, key)
	})
}

// SetNote stores text for day; blank text removes the note.
func (s *Service) SetNote(ctx context.Context, ref, day, text string) (*habit.Habit, bool, error) {
	key, err := dayInWindow(s.now(), day)
	if err != nil {
		return nil, false, err
	}
	return s.update(ctx, ref, func(h *habit.Habit) (*habit.Habit, bool) {
		return habit.SetNote(h, key, text)
	})
}

// dayInWindow canonicalises day, defaulting to today, and checks that it falls
// inside the rolling window ending on today.
func dayInWindow(today time.Time, day string) (string, error) {
	if strings.TrimSpace(day) == "" {
		return calendar.DayKey(today), nil
	}
	t, err := calendar.ParseDayKey(strings.TrimSpace(day))
	if err != nil {
		return "", fmt.Errorf("app: invalid day %q: %w", day, err)
	}
	key := calendar.DayKey(t)
	window := calendar.Window(today, calendar.WindowDays)
	if key < window[0] || key > window[len(window)-1] {
		return "", fmt.Errorf("%w: %s", ErrOutOfWindow, key)
	}
	return key, nil
}

// mutateDay runs fn and, when it leaves key done, emits the check-in event and
// evaluates the milestone trigger against the streak ending on today.
func (s *Service) mutateDay(ctx context.Context, ref string, today time.Time, key string, fn func(*habit.Habit) (*habit.Habit, bool)) (*habit.Habit, bool, error) {
	next, changed, err := s.update(ctx, ref, fn)
	if err != nil || !changed {
		return next, changed, err
	}
	value := habit.Value(next, key)
	if value <= 0 {
		return next, changed, nil
	}
	s.emit(events.Event{
		Type:    events.CheckedIn,
		HabitID: next.ID,
		Title:   next.Title,
		Icon:    next.Icon,
		Day:     key,
		Value:   value,
	})
	streak := habit.CurrentStreak(next, calendar.Window(today, calendar.WindowDays))
	if m, ok := s.trigger().Check(next, streak); ok {
		s.logger().Debug("milestone reached", zap.String("habit", next.ID), zap.Int("milestone", m))
		s.emit(events.Event{
			Type:      events.MilestoneReached,
			HabitID:   next.ID,
			Title:     next.Title,
			Icon:      next.Icon,
			Day:       key,
			Value:     value,
			Milestone: m,
		})
	}
	return next, changed, nil
}

func (s *Service) trigger() *milestone.Trigger {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Milestones == nil {
		s.Milestones = &milestone.Trigger{Ledger: milestone.NewMemoryLedger()}
	}
	return s.Milestones
}

// update is the single writer section: load, replace one habit with the
// value fn computes, save. fn must not modify its argument.
func (s *Service) update(ctx context.Context, ref string, fn func(*habit.Habit) (*habit.Habit, bool)) (*habit.Habit, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return nil, false, err
	}
	i, err := resolve(all, ref)
	if err != nil {
		return nil, false, err
	}
	next, changed := fn(all[i])
	if !changed {
		return next.Clone(), false, nil
	}
	all[i] = next
	if err := s.save(ctx, all); err != nil {
		return nil, false, err
	}
	return next.Clone(), true, nil
}

func (s *Service) save(ctx context.Context, habits []*habit.Habit) error {
	if err := s.Persistence.Save(ctx, habits); err != nil {
		s.logger().Warn("save habits", zap.Error(err))
		return err
	}
	return nil
}

// Import merges a JSON payload into the store. Nothing is written when the
// payload is rejected.
func (s *Service) Import(ctx context.Context, data []byte) (transfer.Result, error) {
	incoming, dropped, err := transfer.DecodeImport(data)
	if err != nil {
		return transfer.Result{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return transfer.Result{}, err
	}
	merged, res := transfer.Merge(all, incoming)
	res.Skipped += dropped
	if res.Added > 0 {
		if err := s.save(ctx, merged); err != nil {
			return transfer.Result{}, err
		}
	}
	s.logger().Debug("imported habits", zap.Int("added", res.Added), zap.Int("skipped", res.Skipped))
	return res, nil
}

// Export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Export writes every habit to w in format.
func (s *Service) Export(ctx context.Context, w io.Writer, format string) error {
	all, err := s.load(ctx)
	if err != nil {
		return err
	}
	switch strings.ToLower(format) {
	case "", FormatJSON:
		return transfer.ExportJSON(w, all)
	case FormatCSV:
		return transfer.ExportCSV(w, all)
	default:
		return fmt.Errorf("app: unknown export format %q", format)
	}
}

// Archive snapshots the habit list into the archive log and then clears every
// habit's log, notes and freezes.
func (s *Service) Archive(ctx context.Context) (store.Archive, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return store.Archive{}, err
	}
	snapshot := store.Archive{Date: store.Timestamp{Time: s.now()}, Habits: all}
	if err := s.Persistence.AppendArchive(snapshot); err != nil {
		return store.Archive{}, err
	}
	reset := make([]*habit.Habit, len(all))
	for i, h := range all {
		reset[i] = habit.ResetLog(h)
	}
	if err := s.save(ctx, reset); err != nil {
		return store.Archive{}, err
	}
	s.logger().Debug("archived and reset habits", zap.Int("count", len(all)))
	return snapshot, nil
}

// Archives lists the archive log, oldest first.
func (s *Service) Archives(ctx context.Context) ([]store.Archive, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Archives(ctx), nil
}

// DueReminders returns the reminders due now and marks them fired. On a
// ledger error the reminders already marked are returned with it.
func (s *Service) DueReminders(ctx context.Context) ([]reminder.Due, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if s.Reminders == nil {
		s.Reminders = &reminder.Checker{Ledger: reminder.NewMemoryLedger()}
	}
	return s.Reminders.Due(s.now(), all)
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}
