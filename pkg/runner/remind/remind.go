// Package remind provides the reminder daemon runner.
package remind

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/logging"
	"tableflip.dev/habitus/pkg/printers"
	"tableflip.dev/habitus/pkg/reminder"
)

// Remind delivers due reminders every Interval until ctx is done. Edits made
// by other processes are picked up as soon as the store reports them.
type Remind struct {
	Interval time.Duration
	// Once checks a single time and returns.
	Once    bool
	Service *app.Service
	// Deliver defaults to printing the reminder.
	Deliver func(reminder.Due)
	Log     *zap.Logger
}

func (n *Remind) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remind, no service")
	}
	log := logging.OrNop(n.Log)
	if n.Deliver == nil {
		pp := printers.PrettyPrint{}
		n.Deliver = pp.Reminder
	}

	if err := n.check(ctx); err != nil || n.Once {
		return err
	}
	if n.Interval <= 0 {
		return errors.New("remind interval must be greater than zero")
	}

	changes, err := n.Service.Watch(ctx)
	if err != nil {
		log.Warn("store watch unavailable, polling only", zap.Error(err))
	}

	ticker := time.NewTicker(n.Interval)
	defer ticker.Stop()
	log.Debug("reminder daemon started", zap.Duration("interval", n.Interval))

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		case ev, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			log.Debug("store changed", zap.Stringer("type", ev.Type), zap.String("key", ev.Key))
		}
		if err := n.check(ctx); err != nil {
			log.Warn("check reminders", zap.Error(err))
		}
	}
}

func (n *Remind) check(ctx context.Context) error {
	// due holds the reminders marked before a failure; deliver those too.
	due, err := n.Service.DueReminders(ctx)
	for _, d := range due {
		n.Deliver(d)
	}
	return err
}
