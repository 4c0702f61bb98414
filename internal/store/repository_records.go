package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-briefcase-sync/internal/logger"
	"github.com/MKhiriev/go-briefcase-sync/models"
)

type cacheRepository struct {
	*DB
	logger *logger.Logger
}

func NewRecordCacheRepository(db *DB, logger *logger.Logger) RecordCache {
	return &cacheRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *cacheRepository) SaveRecords(ctx context.Context, records ...models.CachedRecord) error {
	log := logger.FromContext(ctx)

	if len(records) == 0 {
		return nil
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.SaveRecords").
			Msg("failed to begin save transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	for _, rec := range records {
		payload, err := json.Marshal(rec.Payload)
		if err != nil {
			return fmt.Errorf("failed to encode record payload (record_id=%s): %w", rec.RecordID, err)
		}

		query, args, err := buildUpsertRecord(rec, payload, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "cacheRepository.SaveRecords").
				Str("destination", rec.Destination).
				Str("record_id", rec.RecordID).
				Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
				Msg("failed to execute upsert for cached record")
			return fmt.Errorf("failed to save cached record (record_id=%s): %w", rec.RecordID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "cacheRepository.SaveRecords").
			Msg("failed to commit save transaction")
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return nil
}

func (r *cacheRepository) NonPendingIDs(ctx context.Context, destination, syncRunID string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildNonPendingIDs(destination, syncRunID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.NonPendingIDs").
			Str("destination", destination).
			Msg("failed to execute query for non-pending record ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if scanErr := rows.Scan(&id); scanErr != nil {
			log.Err(scanErr).
				Str("func", "cacheRepository.NonPendingIDs").
				Str("destination", destination).
				Msg("failed to scan record id row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		ids = append(ids, id)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "cacheRepository.NonPendingIDs").
			Str("destination", destination).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating record id rows: %w", rowsErr)
	}

	return ids, nil
}

func (r *cacheRepository) DeleteRecords(ctx context.Context, destination string, ids []string) (int64, error) {
	log := logger.FromContext(ctx)

	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := buildDeleteRecords(destination, ids)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.DeleteRecords").
			Str("destination", destination).
			Int("count", len(ids)).
			Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
			Msg("failed to execute delete for cached records")
		return 0, fmt.Errorf("failed to delete cached records (destination=%s): %w", destination, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.DeleteRecords").
			Str("destination", destination).
			Msg("failed to get rows affected after delete")
		return 0, fmt.Errorf("failed to get rows affected (destination=%s): %w", destination, err)
	}

	return deleted, nil
}
