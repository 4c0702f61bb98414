// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// briefcase sync client. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Remote holds the remote record store endpoint settings consumed by the
	// transport adapter.
	Remote Remote `envPrefix:"REMOTE_"`

	// Storage holds configuration for the local record cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds the briefcase target settings: the record spec file, the
	// slice-size override, and background run options.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Remote holds network settings for the remote record store.
type Remote struct {
	// Address is the base URL of the remote record store
	// (e.g. "https://example.my.store.com").
	// Env: REMOTE_ADDRESS
	Address string `env:"ADDRESS"`

	// APIVersion is the remote API version segment used when building
	// request paths (e.g. "58.0").
	// Env: REMOTE_API_VERSION
	APIVersion string `env:"API_VERSION"`

	// Token is the bearer token attached to outbound requests. The token is
	// carried opaquely; obtaining and refreshing it is the caller's concern.
	// Env: REMOTE_TOKEN
	Token string `env:"TOKEN"`

	// RequestTimeout is the default timeout for outbound requests.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local record cache.
type Storage struct {
	// DB holds the cache database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB contains local database connection settings.
type DB struct {
	// Driver selects the database/sql driver for the cache: "sqlite3" for an
	// on-device file cache (default) or "pgx" for a hosted cache.
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string for the selected driver.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Sync contains briefcase target settings.
type Sync struct {
	// BriefcasePath is the path to the serialized briefcase config (record
	// spec list plus slice-size override).
	// Env: SYNC_BRIEFCASE
	BriefcasePath string `env:"BRIEFCASE"`

	// SliceSize overrides the briefcase config's slice size when positive.
	// Env: SYNC_SLICE_SIZE
	SliceSize int `env:"SLICE_SIZE"`

	// Interval defines how often the background sync job runs. Zero disables
	// the job (single-shot run).
	// Env: SYNC_INTERVAL
	Interval time.Duration `env:"INTERVAL"`

	// RunID identifies this sync target in the local cache; saved records
	// are stamped with it and ghost cleanup is scoped by it. Generated when
	// empty.
	// Env: SYNC_RUN_ID
	RunID string `env:"RUN_ID"`

	// CleanGhosts requests a ghost-cleanup pass instead of an incremental run.
	// Env: SYNC_CLEAN_GHOSTS
	CleanGhosts bool `env:"CLEAN_GHOSTS"`
}

// GetStructuredConfig assembles the merged configuration from environment
// variables, command-line flags, and the optional JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
