package cron

import (
	"context"
	"log/slog"
	"time"
)

// RawDataSyncer folds pending device punches into time entries.
type RawDataSyncer interface {
	SyncRawData(ctx context.Context) error
}

// RevocationSweeper forgets revoked tokens past their expiry.
type RevocationSweeper interface {
	SweepRevoked(now time.Time) int
}

type TimekeepingJobs struct {
	syncer   RawDataSyncer
	interval time.Duration
}

func NewTimekeepingJobs(syncer RawDataSyncer, interval time.Duration) *TimekeepingJobs {
	return &TimekeepingJobs{syncer: syncer, interval: interval}
}

// RegisterJobs registers the raw punch sync. It stays off when the interval is zero.
func (j *TimekeepingJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("sync_raw_time_data", j.interval, j.syncer.SyncRawData)
}

type TokenJobs struct {
	sweeper  RevocationSweeper
	interval time.Duration
	now      func() time.Time
}

func NewTokenJobs(sweeper RevocationSweeper, interval time.Duration) *TokenJobs {
	return &TokenJobs{sweeper: sweeper, interval: interval, now: time.Now}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("sweep_revoked_tokens", j.interval, j.SweepRevokedTokens)
}

func (j *TokenJobs) SweepRevokedTokens(ctx context.Context) error {
	if removed := j.sweeper.SweepRevoked(j.now()); removed > 0 {
		slog.Info("Cron: Swept revoked tokens", "count", removed)
	}
	return nil
}
