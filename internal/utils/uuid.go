package utils

import "github.com/google/uuid"

// NewRunID returns a fresh sync-run identifier. UUIDv7 keeps run ids
// time-ordered in the cache; the random v4 fallback only matters if the
// clock source misbehaves.
func NewRunID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
