package adapter

import "errors"

var (
	// ErrUnauthorized is returned when the remote store rejects the bearer
	// token (HTTP 401). Obtaining a fresh token is the caller's concern.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrTooManyRequests is returned when the remote store throttles the
	// client (HTTP 429). Retry policy belongs to the invoking lifecycle.
	ErrTooManyRequests = errors.New("request rate limited")

	// ErrMalformedResponse marks a parse fault: the transport call succeeded
	// but the response body could not be decoded into the expected shape.
	ErrMalformedResponse = errors.New("malformed remote response")
)
