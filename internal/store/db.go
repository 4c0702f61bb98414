package store

import (
	"database/sql"

	"github.com/MKhiriev/go-briefcase-sync/internal/logger"
	"github.com/MKhiriev/go-briefcase-sync/migrations"
)

type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	db.logger.Debug().
		Str("func", "DB.Migrate").
		Str("dialect", db.dialect).
		Msg("applying schema migrations")

	return migrations.Migrate(db.DB, db.dialect)
}
