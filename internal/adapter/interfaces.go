// Package adapter provides resilient HTTP clients for the two upstream
// microservices the reservations service consumes: the user directory and the
// listing catalog.
//
// Every outbound call runs through a shared failure-handling pipeline:
// exponential-backoff retries for transient faults (transport errors and 5xx
// responses) wrapped in a per-upstream circuit breaker. Definitive responses
// such as 404 or an unsuccessful response envelope are returned immediately
// and never consume retry budget or trip the breaker.
//
// Error values defined in errors.go are mapped from HTTP status codes so that
// callers can use [errors.Is] for transport-agnostic error handling
// (e.g. [ErrNotFound] for a missing entity, [ErrUpstreamUnavailable] when the
// upstream is down or the circuit is open).
package adapter

import (
	"context"

	"github.com/homestays/reservations-api/models"
)

// UserDirectory resolves user records from the user directory service.
// Implementations forward the caller's bearer token so that the upstream can
// apply its own authorization rules.
type UserDirectory interface {
	// GetUser fetches a single user by id. Returns [ErrNotFound] (wrapped) if
	// the upstream reports the user does not exist, and
	// [ErrUpstreamUnavailable] (wrapped) if the upstream cannot be reached
	// after retries or the circuit is open.
	GetUser(ctx context.Context, userID string, token string) (models.RemoteUser, error)
}

// ListingCatalog resolves listing records from the listing catalog service.
type ListingCatalog interface {
	// GetListing fetches a single listing by id. Error semantics match
	// [UserDirectory.GetUser].
	GetListing(ctx context.Context, listingID string, token string) (models.RemoteListing, error)
}
