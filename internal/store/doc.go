// Package store implements the local record cache: a keyed, transactional
// destination store for records fetched from the remote.
//
// Records for all configured destinations live in a single cached_records
// table keyed by (destination, record_id), so one save call can cover many
// destinations inside one transaction. The cache runs on either an on-device
// SQLite file or a hosted PostgreSQL database; both are driven through
// database/sql and share the same SQL (dollar placeholders, ON CONFLICT
// upserts) and the same goose migrations.
package store
