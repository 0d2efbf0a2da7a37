// Package scheduler runs the periodic portfolio refresh on a cron timetable.
package scheduler

import (
	"fmt"

	"github.com/robfig/cron/v3"

	"StockTracker/internal/common"
)

// Scheduler wraps a seconds-resolution cron runner.
type Scheduler struct {
	cron   *cron.Cron
	logger *common.Logger
	task   func()
}

// New creates a Scheduler. The task runs on every tick of the registered
// schedule and once per RunNow call.
func New(logger *common.Logger, task func()) *Scheduler {
	if logger == nil {
		logger = common.NewSilentLogger()
	}
	return &Scheduler{
		cron:   cron.New(cron.WithSeconds()),
		logger: logger,
		task:   task,
	}
}

// Register adds the refresh schedule. The spec uses the six-field cron
// format with a leading seconds field.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("register refresh schedule %q: %w", spec, err)
	}
	s.logger.Info().Str("schedule", spec).Msg("refresh schedule registered")
	return nil
}

// Start begins executing scheduled refreshes in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info().Msg("scheduler started")
}

// Stop halts the schedule and waits for a running refresh to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info().Msg("scheduler stopped")
}

// RunNow executes one refresh immediately, outside the schedule.
func (s *Scheduler) RunNow() {
	s.run()
}

func (s *Scheduler) run() {
	s.logger.Debug().Msg("refresh tick")
	s.task()
}
