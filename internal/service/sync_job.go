package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-briefcase-sync/internal/logger"
	"github.com/MKhiriev/go-briefcase-sync/models"
)

type briefcaseSyncJob struct {
	target SyncDownTarget
	logger *logger.Logger

	// watermark for the next drain; only touched by the job goroutine.
	watermark int64

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSyncJob creates a briefcaseSyncJob that drains incremental runs on a
// ticker. The job is idle until Start is called.
func NewSyncJob(target SyncDownTarget, log *logger.Logger) SyncJob {
	return &briefcaseSyncJob{target: target, logger: log}
}

// Start implements SyncJob. It stops any previously running job, then
// launches a background goroutine that drains a full incremental run every
// interval. If interval is zero or negative it defaults to 5 minutes. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *briefcaseSyncJob) Start(ctx context.Context, runID string, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.drain(jobCtx, runID)
			}
		}
	}()
}

// Stop implements SyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *briefcaseSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// drain runs one incremental sync to cursor exhaustion. The watermark only
// advances after a fully successful drain, so a failed run is retried from
// the same point next tick.
func (j *briefcaseSyncJob) drain(ctx context.Context, runID string) {
	started := time.Now().UnixMilli()

	result, state, err := j.target.StartRun(ctx, runID, j.watermark)
	for err == nil && !state.Exhausted() {
		var next models.RunResult
		next, state, err = j.target.ContinueRun(ctx, runID, state)
		result.Saved += next.Saved
		result.Dropped += next.Dropped
	}
	if err != nil {
		j.logger.Err(err).
			Str("func", "briefcaseSyncJob.drain").
			Msg("incremental sync failed")
		return
	}

	j.watermark = started
	j.logger.Info().
		Str("func", "briefcaseSyncJob.drain").
		Int("saved", result.Saved).
		Int("dropped", result.Dropped).
		Int("total_estimate", result.TotalSize).
		Msg("incremental sync complete")
}
