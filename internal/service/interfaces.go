package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-briefcase-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Gate is the admission check consulted before every slice request. An
// implementation returns nil while syncs are accepted and an error once they
// are suspended; the error aborts the in-flight run between slices.
type Gate interface {
	CheckAcceptingSyncs() error
}

// SyncDownTarget reconciles the local record cache with the remote store for
// every record type in its briefcase config.
//
// Run state is a value: StartRun creates it, ContinueRun consumes and
// returns it. Callers must not share one state between concurrent runs. On
// failure both methods return the input state unchanged, so the next attempt
// retries from the same point.
type SyncDownTarget interface {
	// StartRun begins an incremental run bounded by watermark (epoch
	// milliseconds; zero disables filtering). It fetches one priming page,
	// downloads and persists the records it announced, and returns the
	// result together with the state for a later ContinueRun. runID is
	// stamped onto every saved record.
	StartRun(ctx context.Context, runID string, watermark int64) (models.RunResult, models.RunState, error)

	// ContinueRun fetches the next page of an in-progress run. When state is
	// already exhausted it returns an empty result without issuing any
	// network call.
	ContinueRun(ctx context.Context, runID string, state models.RunState) (models.RunResult, models.RunState, error)

	// CleanGhosts scans the feed to exhaustion with no watermark and, per
	// configured type, deletes local non-pending records absent from the
	// complete remote identifier set. An empty runID leaves the local scan
	// unscoped, covering records stamped by any run; pass a run id only when
	// several targets share a destination. Types are reconciled
	// independently: a
	// failure on one type does not stop the others, and the report keeps
	// the counts of every type that succeeded even when an error is
	// returned alongside it.
	CleanGhosts(ctx context.Context, runID string) (models.GhostReport, error)
}

// SyncJob is a background worker that repeatedly drains incremental runs on
// a fixed interval.
type SyncJob interface {
	// Start launches the background goroutine. Any previously running job is
	// stopped first. If interval is zero or negative it defaults to 5
	// minutes. The goroutine exits when ctx is cancelled or Stop is called.
	Start(ctx context.Context, runID string, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated. Safe to call when the job is not running.
	Stop()
}
