package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/nwebcraft/reghawk/pkg/domain"
	"github.com/nwebcraft/reghawk/pkg/scheduler/mocks"
)

func TestScheduler_Start(t *testing.T) {
	done := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())

	runs := 0
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context) (domain.RunSummary, error) {
			runs++
			if runs >= 3 {
				cancel()
			}
			return domain.RunSummary{NewCount: 1}, nil
		},
	}

	s := New(runner, 10*time.Millisecond)
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop after context cancel")
	}

	assert.GreaterOrEqual(t, len(runner.RunCalls()), 3, "immediate run plus ticks")
}

func TestScheduler_Start_KeepsGoingAfterFailure(t *testing.T) {
	done := make(chan struct{})
	ctx, cancel := context.WithCancel(context.Background())

	runs := 0
	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context) (domain.RunSummary, error) {
			runs++
			if runs >= 2 {
				cancel()
				return domain.RunSummary{}, nil
			}
			return domain.RunSummary{}, errors.New("run blew up")
		},
	}

	s := New(runner, 10*time.Millisecond)
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not survive a failed run")
	}

	assert.GreaterOrEqual(t, len(runner.RunCalls()), 2, "failure does not stop the loop")
}

func TestScheduler_Start_StopsImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	runner := &mocks.RunnerMock{
		RunFunc: func(ctx context.Context) (domain.RunSummary, error) {
			return domain.RunSummary{}, nil
		},
	}

	done := make(chan struct{})
	s := New(runner, time.Hour)
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on pre-canceled context")
	}

	assert.Empty(t, runner.RunCalls(), "no run on a dead context")
}

func TestNew_DefaultInterval(t *testing.T) {
	s := New(&mocks.RunnerMock{}, 0)
	assert.Equal(t, 30*time.Minute, s.interval)
}
