// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-briefcase-sync/models"
)

// Dollar placeholders work for both backends: the pgx driver requires them
// and the sqlite3 driver accepts $N bind parameters.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const recordsTable = "cached_records"

// buildUpsertRecord renders the keyed upsert for one routed record. The
// pending flag is deliberately not touched on conflict: a locally edited
// record keeps its pending state when a newer remote payload lands on top.
func buildUpsertRecord(rec models.CachedRecord, payload []byte, now time.Time) (string, []any, error) {
	return builder.
		Insert(recordsTable).
		Columns(
			"destination",
			"record_id",
			"record_type",
			"payload",
			"mod_stamp",
			"sync_run_id",
			"updated_at",
		).
		Values(
			rec.Destination,
			rec.RecordID,
			rec.RecordType,
			payload,
			rec.ModStamp,
			rec.SyncRunID,
			now,
		).
		Suffix(`ON CONFLICT (destination, record_id) DO UPDATE SET
			record_type = EXCLUDED.record_type,
			payload     = EXCLUDED.payload,
			mod_stamp   = EXCLUDED.mod_stamp,
			sync_run_id = EXCLUDED.sync_run_id,
			updated_at  = EXCLUDED.updated_at`).
		ToSql()
}

// buildNonPendingIDs renders the ghost-cleanup candidate query: every
// identifier in destination that is not awaiting upload, optionally scoped
// to records stamped with syncRunID.
func buildNonPendingIDs(destination, syncRunID string) (string, []any, error) {
	q := builder.
		Select("record_id").
		From(recordsTable).
		Where(sq.Eq{"destination": destination, "pending": false})

	if syncRunID != "" {
		q = q.Where(sq.Eq{"sync_run_id": syncRunID})
	}

	return q.OrderBy("record_id").ToSql()
}

func buildDeleteRecords(destination string, ids []string) (string, []any, error) {
	return builder.
		Delete(recordsTable).
		Where(sq.Eq{"destination": destination}).
		Where(sq.Eq{"record_id": ids}).
		ToSql()
}
