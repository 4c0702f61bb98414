package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-briefcase-sync/internal/adapter"
	"github.com/MKhiriev/go-briefcase-sync/internal/logger"
	"github.com/MKhiriev/go-briefcase-sync/internal/soql"
	"github.com/MKhiriev/go-briefcase-sync/internal/store"
	"github.com/MKhiriev/go-briefcase-sync/models"
)

type briefcaseTarget struct {
	// specs keeps the config order; specsByType is the routing lookup.
	specs       []models.RecordSpec
	specsByType map[string]models.RecordSpec
	sliceSize   int

	remote adapter.RemoteAdapter
	cache  store.RecordCache
	gate   Gate
	logger *logger.Logger
}

// NewBriefcaseTarget builds a [SyncDownTarget] from a validated briefcase
// config. The config's slice size is clamped to the hard ceiling here, once,
// so every later fetch works with the effective value.
func NewBriefcaseTarget(cfg models.BriefcaseConfig, remote adapter.RemoteAdapter, cache store.RecordCache, gate Gate, log *logger.Logger) (SyncDownTarget, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid briefcase config: %w", err)
	}

	specsByType := make(map[string]models.RecordSpec, len(cfg.Specs))
	for _, spec := range cfg.Specs {
		specsByType[spec.RecordType] = spec
	}

	return &briefcaseTarget{
		specs:       cfg.Specs,
		specsByType: specsByType,
		sliceSize:   cfg.EffectiveSliceSize(),
		remote:      remote,
		cache:       cache,
		gate:        gate,
		logger:      log,
	}, nil
}

func (t *briefcaseTarget) StartRun(ctx context.Context, runID string, watermark int64) (models.RunResult, models.RunState, error) {
	return t.runOnce(ctx, runID, models.NewRunState(watermark))
}

func (t *briefcaseTarget) ContinueRun(ctx context.Context, runID string, state models.RunState) (models.RunResult, models.RunState, error) {
	if state.Exhausted() {
		return models.RunResult{TotalSize: state.TotalSize, TotalApprox: true}, state, nil
	}

	return t.runOnce(ctx, runID, state)
}

// runOnce advances the run by one priming page: collect ids, fetch records
// type by type, route and persist them. On any failure the input state is
// returned unchanged so the caller retries from the same point.
func (t *briefcaseTarget) runOnce(ctx context.Context, runID string, state models.RunState) (models.RunResult, models.RunState, error) {
	idsByType := make(map[string][]string, len(t.specs))
	newToken, err := t.collectPage(ctx, state.RelayToken, state.Watermark, idsByType)
	if err != nil {
		return models.RunResult{}, state, err
	}

	records := make([]models.Record, 0)
	for _, spec := range t.specs {
		ids := idsByType[spec.RecordType]
		if len(ids) == 0 {
			continue
		}

		fetched, err := t.fetchInSlices(ctx, spec, ids)
		if err != nil {
			return models.RunResult{}, state, err
		}
		records = append(records, fetched...)
	}

	saved, dropped, err := t.save(ctx, runID, records)
	if err != nil {
		return models.RunResult{}, state, err
	}

	next := state
	next.RelayToken = newToken
	if next.TotalSize < 0 {
		// First-page estimate. The feed's own total ignores watermark
		// filtering and the run may span more pages, so this stays an
		// approximation.
		next.TotalSize = len(records)
	}

	result := models.RunResult{
		Records:     records,
		Saved:       saved,
		Dropped:     dropped,
		TotalSize:   next.TotalSize,
		TotalApprox: true,
	}

	return result, next, nil
}

// collectPage asks the feed for one page and merges its identifiers into
// idsByType, keeping only entries with modifiedAt strictly greater than
// watermark (watermark zero keeps everything). Every configured type ends up
// with an entry, possibly empty, so callers never special-case absent types.
// Returns the feed's next continuation token; empty means exhausted.
func (t *briefcaseTarget) collectPage(ctx context.Context, relayToken string, watermark int64, idsByType map[string][]string) (string, error) {
	page, err := t.remote.GetPrimingPage(ctx, relayToken)
	if err != nil {
		return "", fmt.Errorf("get priming page: %w", err)
	}

	for _, spec := range t.specs {
		if _, ok := idsByType[spec.RecordType]; !ok {
			idsByType[spec.RecordType] = []string{}
		}

		for _, entries := range page.PrimingRecords[spec.RecordType] {
			for _, entry := range entries {
				if entry.ModifiedAt > watermark {
					idsByType[spec.RecordType] = append(idsByType[spec.RecordType], entry.ID)
				}
			}
		}
	}

	return page.RelayToken, nil
}

// fetchInSlices partitions ids into consecutive slices of at most sliceSize
// and issues one bounded query per slice, sequentially and in index order.
// Any slice failure aborts the whole fetch.
func (t *briefcaseTarget) fetchInSlices(ctx context.Context, spec models.RecordSpec, ids []string) ([]models.Record, error) {
	fields := spec.FetchFields()

	fetched := make([]models.Record, 0, len(ids))
	for start := 0; start < len(ids); start += t.sliceSize {
		end := min(start+t.sliceSize, len(ids))

		slice, err := t.fetchSlice(ctx, spec, ids[start:end], fields)
		if err != nil {
			return nil, err
		}
		fetched = append(fetched, slice...)
	}

	return fetched, nil
}

func (t *briefcaseTarget) fetchSlice(ctx context.Context, spec models.RecordSpec, ids, fields []string) ([]models.Record, error) {
	// Re-checked per slice so a mid-run suspension takes effect between
	// requests.
	if err := t.gate.CheckAcceptingSyncs(); err != nil {
		return nil, fmt.Errorf("sync admission check: %w", err)
	}

	query := soql.Select(fields...).
		From(spec.RecordType).
		Where(soql.In(spec.IDField, ids)).
		Build()

	records, err := t.remote.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetch %s slice: %w", spec.RecordType, err)
	}

	return records, nil
}

// save routes each record to the destination of its declared type and
// persists the whole batch as one atomic cache transaction. A record whose
// type matches no spec is dropped and reported, never fatal.
func (t *briefcaseTarget) save(ctx context.Context, runID string, records []models.Record) (saved, dropped int, err error) {
	routed := make([]models.CachedRecord, 0, len(records))
	for _, record := range records {
		spec, ok := t.specsByType[record.ObjectType()]
		if !ok {
			dropped++
			t.logger.Error().
				Str("func", "briefcaseTarget.save").
				Str("record_type", record.ObjectType()).
				Msg("no matching record spec, dropping record")
			continue
		}

		routed = append(routed, models.CachedRecord{
			Destination: spec.Destination,
			RecordID:    record.StringField(spec.IDField),
			RecordType:  spec.RecordType,
			ModStamp:    record.StringField(spec.ModTimeField),
			SyncRunID:   runID,
			Payload:     record,
		})
	}

	if err := t.cache.SaveRecords(ctx, routed...); err != nil {
		return 0, dropped, fmt.Errorf("save fetched records: %w", err)
	}

	return len(routed), dropped, nil
}
