package store

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"tableflip.dev/habitus/pkg/logging"
)

// FiredLedger is a reminder ledger persisted next to the habits, so a
// reminder that fired does not fire again after a restart on the same day.
type FiredLedger struct {
	mu   sync.Mutex
	p    *persistence
	log  *zap.Logger
	last map[string]string
}

// NewFiredLedger opens the reminder ledger stored under cfg.
func NewFiredLedger(cfg Config, logger *zap.Logger) (*FiredLedger, error) {
	ps, err := Load(cfg, logger)
	if err != nil {
		return nil, err
	}
	p := ps.(*persistence)
	l := &FiredLedger{p: p, log: logging.OrNop(logger), last: make(map[string]string)}
	if p.d.Has(firedKey) {
		val, err := p.d.Read(firedKey)
		if err == nil {
			err = json.Unmarshal(val, &l.last)
		}
		if err != nil {
			l.log.Warn("reminder ledger unreadable, starting fresh", zap.Error(err))
			l.last = make(map[string]string)
		}
	}
	return l, nil
}

func slotKey(habitID string, slot int) string {
	return fmt.Sprintf("%s_%d", habitID, slot)
}

func (l *FiredLedger) Fired(habitID string, slot int, day string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last[slotKey(habitID, slot)] == day
}

// MarkFired records slot as fired on day. The in-memory view only changes
// once the ledger is on disk.
func (l *FiredLedger) MarkFired(habitID string, slot int, day string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	next := make(map[string]string, len(l.last)+1)
	for k, v := range l.last {
		next[k] = v
	}
	next[slotKey(habitID, slot)] = day
	data, err := json.Marshal(next)
	if err != nil {
		return err
	}
	if err := l.p.d.Write(firedKey, data); err != nil {
		return fmt.Errorf("store: write reminder ledger: %w", err)
	}
	l.last = next
	return nil
}
