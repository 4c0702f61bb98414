package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a remote record store base URL
//	-api-version remote API version (e.g. "58.0")
//	-t bearer token for outbound requests
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-d database DSN for the local cache
//	-driver database driver for the local cache (sqlite3 or pgx)
//	-b briefcase config file path
//	-slice-size ids per query override
//	-i sync interval for the background job (e.g., "5m")
//	-run-id sync target identifier
//	-ghosts run ghost cleanup instead of an incremental sync
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var remoteAddress string
	var apiVersion string
	var token string
	var requestTimeout time.Duration
	var databaseDSN string
	var databaseDriver string
	var briefcasePath string
	var sliceSize int
	var syncInterval time.Duration
	var runID string
	var cleanGhosts bool
	var jsonConfigPath string

	flag.StringVar(&remoteAddress, "a", "", "Remote record store base URL")
	flag.StringVar(&apiVersion, "api-version", "", "Remote API version")
	flag.StringVar(&token, "t", "", "Bearer token")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.StringVar(&databaseDSN, "d", "", "Local cache database DSN")
	flag.StringVar(&databaseDriver, "driver", "", "Local cache database driver (sqlite3 or pgx)")
	flag.StringVar(&briefcasePath, "b", "", "Briefcase config file path")
	flag.IntVar(&sliceSize, "slice-size", 0, "Ids per query override")
	flag.DurationVar(&syncInterval, "i", 0, "Sync interval (e.g., 5m)")
	flag.StringVar(&runID, "run-id", "", "Sync target identifier")
	flag.BoolVar(&cleanGhosts, "ghosts", false, "Run ghost cleanup")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Remote: Remote{
			Address:        remoteAddress,
			APIVersion:     apiVersion,
			Token:          token,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Sync: Sync{
			BriefcasePath: briefcasePath,
			SliceSize:     sliceSize,
			Interval:      syncInterval,
			RunID:         runID,
			CleanGhosts:   cleanGhosts,
		},
		JSONFilePath: jsonConfigPath,
	}
}
