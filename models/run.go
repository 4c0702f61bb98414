// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RunState is the run-scoped cursor state of an incremental sync: the feed's
// continuation token, the watermark the run was started with, and the total
// estimate carried across continuation calls. It is a value passed into and
// returned from every orchestration call; a failed call returns the input
// state unchanged so the next attempt retries from the same point.
type RunState struct {
	// RelayToken is the feed's continuation token. Empty before the first
	// page and again once the feed signals exhaustion.
	RelayToken string

	// Watermark is the modification-timestamp threshold (epoch milliseconds)
	// this run filters by. Only entries strictly newer are fetched. Zero
	// disables filtering.
	Watermark int64

	// TotalSize is the estimated total record count for the run, or -1 while
	// no estimate exists yet.
	TotalSize int
}

// NewRunState returns the state for a fresh run bounded by watermark.
func NewRunState(watermark int64) RunState {
	return RunState{Watermark: watermark, TotalSize: -1}
}

// Exhausted reports whether the feed has signalled that no further pages are
// available for this run.
func (s RunState) Exhausted() bool {
	return s.RelayToken == ""
}

// RunResult is the outcome of one orchestration call (one feed page plus the
// record fetches it triggered).
type RunResult struct {
	// Records are all fetched records, concatenated across types in registry
	// order and across slices in index order.
	Records []Record

	// Saved is the number of records routed and persisted locally.
	Saved int

	// Dropped is the number of fetched records whose declared type matched
	// no configured spec. Such records are reported, never persisted.
	Dropped int

	// TotalSize is the estimated total for the whole run. It is derived from
	// the first page's record count and may undercount when the fetch spans
	// several pages; TotalApprox is therefore always true.
	TotalSize int

	// TotalApprox marks TotalSize as a best-effort progress indicator rather
	// than an exact count.
	TotalApprox bool
}

// GhostReport is the outcome of a ghost-cleanup pass: the number of local
// records deleted per record type, and the sum across all types that were
// reconciled successfully.
type GhostReport struct {
	PerType map[string]int
	Total   int
}
