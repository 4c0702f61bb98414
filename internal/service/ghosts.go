package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-briefcase-sync/models"
)

// maxPrimingPages bounds the full scan. The feed contract guarantees
// exhaustion; a feed still paging past this count is reported as
// [ErrFeedNotExhausted] instead of looping forever.
const maxPrimingPages = 10000

func (t *briefcaseTarget) CleanGhosts(ctx context.Context, runID string) (models.GhostReport, error) {
	// Full scan: no watermark, loop until the feed stops returning tokens.
	// No deletion happens before the complete remote id set is collected.
	idsByType := make(map[string][]string, len(t.specs))

	relayToken := ""
	for page := 0; ; page++ {
		if page >= maxPrimingPages {
			return models.GhostReport{}, ErrFeedNotExhausted
		}

		token, err := t.collectPage(ctx, relayToken, 0, idsByType)
		if err != nil {
			return models.GhostReport{}, fmt.Errorf("collect remote ids: %w", err)
		}
		if token == "" {
			break
		}
		relayToken = token
	}

	// One type at a time, independently: a failed type never blocks the
	// rest, and successful counts survive a partial failure.
	report := models.GhostReport{PerType: make(map[string]int, len(t.specs))}
	var errs []error
	for _, spec := range t.specs {
		deleted, err := t.cleanTypeGhosts(ctx, runID, spec, idsByType[spec.RecordType])
		if err != nil {
			errs = append(errs, fmt.Errorf("reconcile %s: %w", spec.RecordType, err))
			continue
		}

		report.PerType[spec.RecordType] = deleted
		report.Total += deleted
	}

	return report, errors.Join(errs...)
}

func (t *briefcaseTarget) cleanTypeGhosts(ctx context.Context, runID string, spec models.RecordSpec, remoteIDs []string) (int, error) {
	localIDs, err := t.cache.NonPendingIDs(ctx, spec.Destination, runID)
	if err != nil {
		return 0, fmt.Errorf("load local ids: %w", err)
	}

	ghosts := difference(localIDs, remoteIDs)
	if len(ghosts) == 0 {
		return 0, nil
	}

	if _, err := t.cache.DeleteRecords(ctx, spec.Destination, ghosts); err != nil {
		return 0, fmt.Errorf("delete ghosts: %w", err)
	}

	t.logger.Info().
		Str("func", "briefcaseTarget.cleanTypeGhosts").
		Str("record_type", spec.RecordType).
		Int("ghosts", len(ghosts)).
		Msg("deleted local records no longer present remotely")

	return len(ghosts), nil
}

// difference returns the ordered, deduplicated set locals \ remotes.
func difference(locals, remotes []string) []string {
	remoteSet := make(map[string]struct{}, len(remotes))
	for _, id := range remotes {
		remoteSet[id] = struct{}{}
	}

	seen := make(map[string]struct{}, len(locals))
	diff := make([]string, 0)
	for _, id := range locals {
		if _, ok := remoteSet[id]; ok {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		diff = append(diff, id)
	}

	sort.Strings(diff)
	return diff
}
