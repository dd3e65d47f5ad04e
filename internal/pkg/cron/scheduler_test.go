package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type syncerFunc func(ctx context.Context) error

func (f syncerFunc) SyncRawData(ctx context.Context) error { return f(ctx) }

type sweeperFunc func(now time.Time) int

func (f sweeperFunc) SweepRevoked(now time.Time) int { return f(now) }

func TestScheduler_RunsUntilStopped(t *testing.T) {
	var calls atomic.Int32
	s := NewScheduler()
	s.AddJob("tick", 5*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		return nil
	})
	s.AddJob("failing", 5*time.Millisecond, func(ctx context.Context) error {
		return errors.New("boom")
	})

	s.Start()
	assert.Eventually(t, func() bool { return calls.Load() >= 3 }, time.Second, time.Millisecond)
	s.Stop()
	s.Stop()

	stopped := calls.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, calls.Load(), "no runs after Stop")
}

func TestScheduler_DisabledJob(t *testing.T) {
	s := NewScheduler()
	s.AddJob("off", 0, func(ctx context.Context) error { return nil })
	assert.Empty(t, s.Jobs())
}

func TestRegisterJobs(t *testing.T) {
	var synced, swept int
	s := NewScheduler()

	NewTimekeepingJobs(syncerFunc(func(ctx context.Context) error {
		synced++
		return nil
	}), time.Minute).RegisterJobs(s)
	NewTokenJobs(sweeperFunc(func(now time.Time) int {
		swept++
		return 2
	}), time.Hour).RegisterJobs(s)
	NewTimekeepingJobs(syncerFunc(func(ctx context.Context) error { return nil }), 0).RegisterJobs(s)

	assert.Equal(t, []string{"sync_raw_time_data", "sweep_revoked_tokens"}, s.Jobs())

	s.RunOnce(context.Background())
	assert.Equal(t, 1, synced)
	assert.Equal(t, 1, swept)
}

func TestScheduler_PanickingJobKeepsRunning(t *testing.T) {
	var calls atomic.Int32
	s := NewScheduler()
	s.AddJob("panics", 5*time.Millisecond, func(ctx context.Context) error {
		calls.Add(1)
		panic("boom")
	})

	s.Start()
	defer s.Stop()
	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, time.Second, time.Millisecond)
}

func TestScheduler_RunDeadlineIsInterval(t *testing.T) {
	s := NewScheduler()
	var deadline time.Time
	s.AddJob("deadline", time.Minute, func(ctx context.Context) error {
		deadline, _ = ctx.Deadline()
		return nil
	})

	s.RunOnce(context.Background())
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}
