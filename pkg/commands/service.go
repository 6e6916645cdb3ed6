package commands

import (
	"go.uber.org/zap"

	"tableflip.dev/habitus/pkg/app"
	"tableflip.dev/habitus/pkg/events"
	"tableflip.dev/habitus/pkg/logging"
	"tableflip.dev/habitus/pkg/milestone"
	"tableflip.dev/habitus/pkg/printers"
	"tableflip.dev/habitus/pkg/reminder"
	"tableflip.dev/habitus/pkg/store"
)

// newService wires the store, feedback sinks and reminder ledger for one
// command invocation.
func newService() (*app.Service, store.Config, error) {
	logger, err := logging.New(verbose)
	if err != nil {
		return nil, nil, err
	}
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	fired, err := store.NewFiredLedger(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("opened store", zap.String("path", cfg.BasePath()))

	pp := &printers.PrettyPrint{}
	return &app.Service{
		Persistence: p,
		Events:      events.Multi(events.Bell{}, pp),
		Milestones:  &milestone.Trigger{Ledger: milestone.NewMemoryLedger()},
		Reminders:   &reminder.Checker{Ledger: fired},
		Log:         logger,
	}, cfg, nil
}
