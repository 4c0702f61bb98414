package config

import (
	"fmt"
	"time"
)

// SyncApp holds application-level settings derived from the shared
// structured config.
type SyncApp struct {
	// Version is the application version string.
	Version string
}

// SyncRemote holds network settings used by the transport adapter.
type SyncRemote struct {
	// Address is the remote record store base URL.
	Address string
	// APIVersion is the remote API version segment.
	APIVersion string
	// Token is the opaque bearer token for outbound requests.
	Token string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// SyncStorage groups local cache backend settings.
type SyncStorage struct {
	// DB holds local database settings.
	DB SyncDB
}

// SyncDB contains local database connection settings.
type SyncDB struct {
	// Driver is the database/sql driver name (sqlite3 or pgx).
	Driver string
	// DSN is the connection string for the selected driver.
	DSN string
}

// SyncTarget contains briefcase target settings.
type SyncTarget struct {
	// BriefcasePath is the serialized briefcase config location.
	BriefcasePath string
	// SliceSize overrides the briefcase config's slice size when positive.
	SliceSize int
	// Interval defines how often the background sync job runs.
	Interval time.Duration
	// RunID identifies this sync target in the local cache.
	RunID string
	// CleanGhosts requests a ghost-cleanup pass instead of an incremental run.
	CleanGhosts bool
}

// SyncConfig is the top-level runtime configuration assembled from
// [StructuredConfig].
type SyncConfig struct {
	// App contains application-level settings.
	App SyncApp
	// Remote contains transport addresses and timeouts.
	Remote SyncRemote
	// Storage contains local cache settings.
	Storage SyncStorage
	// Sync contains briefcase target settings.
	Sync SyncTarget
}

// GetSyncConfig builds and validates the runtime config view from the merged
// structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the sync runtime, and validates the resulting [SyncConfig].
func GetSyncConfig() (*SyncConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	syncCfg := &SyncConfig{
		App: SyncApp{
			Version: cfg.App.Version,
		},
		Remote: SyncRemote{
			Address:        cfg.Remote.Address,
			APIVersion:     cfg.Remote.APIVersion,
			Token:          cfg.Remote.Token,
			RequestTimeout: cfg.Remote.RequestTimeout,
		},
		Storage: SyncStorage{
			DB: SyncDB{
				Driver: cfg.Storage.DB.Driver,
				DSN:    cfg.Storage.DB.DSN,
			},
		},
		Sync: SyncTarget{
			BriefcasePath: cfg.Sync.BriefcasePath,
			SliceSize:     cfg.Sync.SliceSize,
			Interval:      cfg.Sync.Interval,
			RunID:         cfg.Sync.RunID,
			CleanGhosts:   cfg.Sync.CleanGhosts,
		},
	}

	return syncCfg, syncCfg.validate()
}

func (cfg *SyncConfig) validate() error {
	if cfg.Remote.Address == "" || cfg.Remote.APIVersion == "" {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}
	switch cfg.Storage.DB.Driver {
	case "", "sqlite3", "pgx":
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.Sync.BriefcasePath == "" {
		return ErrInvalidSyncConfigs
	}

	return nil
}
