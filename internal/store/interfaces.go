package store

import (
	"context"

	"github.com/MKhiriev/go-briefcase-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/record_cache_mock.go -package=mock

// RecordCache is the local destination store for fetched records.
type RecordCache interface {
	// SaveRecords upserts all given records as one atomic unit: either every
	// record is committed or none are visibly applied. Records may target
	// different destinations within the same call. An upsert overwrites the
	// payload and provenance columns (last-write-wins) and leaves unrelated
	// local state, such as the pending flag, untouched.
	SaveRecords(ctx context.Context, records ...models.CachedRecord) error

	// NonPendingIDs returns the identifiers of all records held under
	// destination that are not pending upload, ordered by identifier. When
	// syncRunID is non-empty, only records stamped with it participate, so
	// ghost cleanup never touches records another target put in the same
	// destination.
	NonPendingIDs(ctx context.Context, destination, syncRunID string) ([]string, error)

	// DeleteRecords removes the given identifiers from destination and
	// reports how many records were actually deleted. An empty id list is a
	// no-op.
	DeleteRecords(ctx context.Context, destination string, ids []string) (int64, error)
}
