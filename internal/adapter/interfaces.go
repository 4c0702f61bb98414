package adapter

import (
	"context"

	"github.com/MKhiriev/go-briefcase-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_adapter_mock.go -package=mock

// RemoteAdapter defines transport-agnostic communication with the remote
// record store. Implementations are responsible for serialisation, bearer
// token management, and mapping transport-level errors to the sentinel
// values defined in this package.
type RemoteAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent requests. The token is carried opaquely and never inspected.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// GetPrimingPage fetches one page of the priming notification feed.
	// relayToken is the continuation token from the previous page; pass an
	// empty string for the first page. The returned page's RelayToken is
	// empty once the feed is exhausted. Returns a transport error unchanged,
	// or an error wrapping [ErrMalformedResponse] when the response cannot
	// be decoded.
	GetPrimingPage(ctx context.Context, relayToken string) (models.PrimingPage, error)

	// Query executes one bounded query against the remote store and returns
	// the resulting records in response order. The query string is built by
	// the caller; its length must respect the facility's maximum expression
	// length. Returns a transport error unchanged, or an error wrapping
	// [ErrMalformedResponse] when the response cannot be decoded.
	Query(ctx context.Context, query string) ([]models.Record, error)
}
