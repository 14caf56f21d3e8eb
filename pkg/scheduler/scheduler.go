package scheduler

import (
	"context"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/nwebcraft/reghawk/pkg/domain"
)

//go:generate moq -out mocks/runner.go -pkg mocks -skip-ensure -fmt goimports . Runner

// Runner executes one pipeline run
type Runner interface {
	Run(ctx context.Context) (domain.RunSummary, error)
}

// Scheduler triggers pipeline runs on a fixed interval, standing in for an
// external cron trigger. A failed run is logged and the loop keeps going;
// the next tick gets a fresh attempt.
type Scheduler struct {
	runner   Runner
	interval time.Duration
}

// New creates a scheduler
func New(runner Runner, interval time.Duration) *Scheduler {
	if interval == 0 {
		interval = 30 * time.Minute
	}
	return &Scheduler{runner: runner, interval: interval}
}

// Start runs the pipeline immediately and then on every tick until the
// context is canceled
func (s *Scheduler) Start(ctx context.Context) {
	lgr.Printf("[INFO] scheduler started with interval %v", s.interval)

	s.runOnce(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			lgr.Printf("[INFO] scheduler stopped")
			return
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	summary, err := s.runner.Run(ctx)
	if err != nil {
		lgr.Printf("[ERROR] pipeline run failed: %v", err)
		return
	}
	lgr.Printf("[INFO] pipeline run: new=%d relevant=%d notified=%d",
		summary.NewCount, summary.RelevantCount, summary.NotifiedCount)
}
