package config

import "errors"

// Validation errors returned by [SyncConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates invalid remote endpoint settings
	// (for example, missing base URL or API version).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidStorageConfigs indicates invalid local cache settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSyncConfigs indicates invalid briefcase target settings
	// (for example, missing briefcase config path).
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
)
