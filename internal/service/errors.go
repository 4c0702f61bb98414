package service

import "errors"

var (
	// ErrSyncsSuspended is returned by the admission gate while syncs are
	// suspended; it aborts the in-flight run between slice requests.
	ErrSyncsSuspended = errors.New("syncs are suspended")

	// ErrFeedNotExhausted is returned by ghost cleanup when the priming feed
	// keeps returning continuation tokens past any plausible page count. A
	// feed that never signals exhaustion is a remote fault; surfacing it
	// beats scanning forever.
	ErrFeedNotExhausted = errors.New("priming feed did not exhaust")
)
