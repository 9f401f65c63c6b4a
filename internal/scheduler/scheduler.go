package scheduler

import (
	"errors"
	"time"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"

	"github.com/i474232898/weather-now/internal/weather"
)

// Refresher re-issues the most recent weather request.
type Refresher interface {
	Refresh() error
}

// Scheduler periodically refreshes the weather for the last requested location.
type Scheduler struct {
	scheduler *gocron.Scheduler
	target    Refresher
	interval  time.Duration
	logger    *zap.SugaredLogger
}

// New creates a new Scheduler. An interval <= 0 makes Start a no-op.
func New(interval time.Duration, target Refresher, logger *zap.SugaredLogger) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		target:    target,
		interval:  interval,
		logger:    logger,
	}
}

// Start schedules the refresh job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	if s.interval <= 0 {
		s.logger.Info("scheduler: refresh disabled; nothing to schedule")
		return nil
	}

	_, err := s.scheduler.Every(s.interval).SingletonMode().Do(s.refresh)
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	s.logger.Infow("scheduler: refresh scheduled", "interval", s.interval)
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil && s.scheduler.IsRunning() {
		s.scheduler.Stop()
	}
}

func (s *Scheduler) refresh() {
	err := s.target.Refresh()
	switch {
	case err == nil:
		s.logger.Debug("scheduler: refresh requested")
	case errors.Is(err, weather.ErrEmptyQuery):
		// nothing requested yet
	default:
		s.logger.Warnw("scheduler: refresh failed", "error", err)
	}
}
