package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/peterbourgon/diskv/v3"
	"go.uber.org/zap"

	"tableflip.dev/habitus/pkg/habit"
	"tableflip.dev/habitus/pkg/logging"
)

// Persistence defines the persistence contract for habits.
type Persistence interface {
	// Load returns every stored habit in display order. Missing or corrupt
	// data yields an empty list.
	Load(ctx context.Context) []*habit.Habit
	// Save replaces the stored habit list.
	Save(ctx context.Context, habits []*habit.Habit) error
	// AppendArchive adds a snapshot to the append-only archive log.
	AppendArchive(a Archive) error
	// Archives lists snapshots, oldest first.
	Archives(ctx context.Context) []Archive
	Watch(ctx context.Context) (<-chan Event, error)
}

const (
	habitsKey     = "habits"
	archivePrefix = "archive-"
	firedKey      = "reminders-fired"

	layoutArchiveKey = "20060102T150405.000000000"
)

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config, logger *zap.Logger) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &persistence{d: newDiskv(basePath), basePath: basePath, log: logging.OrNop(logger)}, nil
}

func newDiskv(basePath string) *diskv.Diskv {
	return diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		// No read cache: the reminder daemon has to observe writes made by
		// other habitus processes.
		CacheSizeMax: 0,
	})
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
	log      *zap.Logger
}

func (p *persistence) Load(_ context.Context) []*habit.Habit {
	if !p.d.Has(habitsKey) {
		return []*habit.Habit{}
	}
	val, err := p.d.Read(habitsKey)
	if err != nil {
		p.log.Warn("read habits, starting empty", zap.Error(err))
		return []*habit.Habit{}
	}
	habits, err := decodeHabits(val)
	if err != nil {
		p.log.Warn("stored habits are corrupt, starting empty",
			zap.String("path", p.basePath), zap.Error(err))
		return []*habit.Habit{}
	}
	return habits
}

func decodeHabits(val []byte) ([]*habit.Habit, error) {
	if len(strings.TrimSpace(string(val))) == 0 || string(val) == "null" {
		return []*habit.Habit{}, nil
	}
	var habits []*habit.Habit
	if err := json.Unmarshal(val, &habits); err != nil {
		return nil, err
	}
	out := habits[:0]
	for _, h := range habits {
		if h == nil || h.ID == "" {
			continue
		}
		out = append(out, h)
	}
	return out, nil
}

func (p *persistence) Save(_ context.Context, habits []*habit.Habit) error {
	if habits == nil {
		habits = []*habit.Habit{}
	}
	data, err := json.Marshal(habits)
	if err != nil {
		return err
	}
	if err := p.d.Write(habitsKey, data); err != nil {
		return fmt.Errorf("store: write habits: %w", err)
	}
	p.log.Debug("saved habits", zap.Int("count", len(habits)))
	return nil
}

func (p *persistence) AppendArchive(a Archive) error {
	if a.Date.IsZero() {
		a.Date = Timestamp{Time: time.Now()}
	}
	data, err := json.Marshal(&a)
	if err != nil {
		return err
	}
	key := archivePrefix + a.Date.UTC().Format(layoutArchiveKey)
	for p.d.Has(key) {
		// Two archives in the same nanosecond keep their order.
		key += "0"
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write archive: %w", err)
	}
	p.log.Debug("archived habits", zap.String("key", key), zap.Int("count", len(a.Habits)))
	return nil
}

func (p *persistence) Archives(ctx context.Context) []Archive {
	keys := make([]string, 0)
	for key := range p.d.KeysPrefix(archivePrefix, ctx.Done()) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	all := make([]Archive, 0, len(keys))
	for _, key := range keys {
		val, err := p.d.Read(key)
		if err != nil {
			p.log.Warn("read archive", zap.String("key", key), zap.Error(err))
			continue
		}
		var a Archive
		if err := json.Unmarshal(val, &a); err != nil {
			p.log.Warn("corrupt archive", zap.String("key", key), zap.Error(err))
			continue
		}
		all = append(all, a)
	}
	return all
}

// Archive is a timestamped snapshot of the full habit list.
type Archive struct {
	Date   Timestamp      `json:"date"`
	Habits []*habit.Habit `json:"habits"`
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	if len(pathKey.Path) == 0 {
		return pathKey.FileName
	}
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
