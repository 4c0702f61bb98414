package models

// PrimingEntry is one changed-record notification: the record identifier and
// the moment it was last modified, in epoch milliseconds. The feed reports
// only identifiers; payloads are fetched separately.
type PrimingEntry struct {
	ID         string `json:"id"`
	ModifiedAt int64  `json:"modified_at"`
}

// PrimingStats carries the feed's own counters. RecordCountTotal is known to
// ignore watermark filtering, so it is never used as an exact total.
type PrimingStats struct {
	RecordCountTotal int `json:"record_count_total"`
}

// PrimingPage is one page of the priming notification feed. Entries are
// grouped by record type and, within a type, by briefcase group. RelayToken
// marks the position for the next page; an empty token signals exhaustion.
type PrimingPage struct {
	PrimingRecords map[string]map[string][]PrimingEntry `json:"priming_records"`
	RelayToken     string                               `json:"relay_token,omitempty"`
	Stats          PrimingStats                         `json:"stats"`
}
