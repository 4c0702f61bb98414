package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-briefcase-sync/internal/config"
	"github.com/MKhiriev/go-briefcase-sync/internal/logger"
)

// Storages groups all local storage repositories into a single value that
// can be passed around the service layer. Currently it holds only
// [RecordCache]; additional repositories can be added here as the feature
// set grows.
type Storages struct {
	// Records is the cache repository fetched records are routed into.
	Records RecordCache
}

// NewStorages initialises the local storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens a connection for the configured driver ("sqlite3" by default,
//     "pgx" for a hosted cache), creating the SQLite file if needed.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to a fresh cache
//     repository.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.SyncStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	var db *DB
	var err error
	switch cfg.DB.Driver {
	case "", "sqlite3":
		db, err = NewConnectSQLite(context.Background(), cfg.DB, logger)
	case "pgx":
		db, err = NewConnectPostgres(context.Background(), cfg.DB, logger)
	default:
		return nil, fmt.Errorf("unsupported cache driver: %s", cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("cache connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Records: NewRecordCacheRepository(db, logger),
	}, nil
}
