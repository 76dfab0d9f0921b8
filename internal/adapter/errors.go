package adapter

import "errors"

var (
	// ErrNotFound indicates the upstream definitively answered without
	// resolving the entity: a 404, any other non-5xx non-success status
	// (401/403 included), or a 2xx carrying an unsuccessful envelope.
	// Not retried.
	ErrNotFound = errors.New("entity not found in upstream")

	// ErrUpstreamUnavailable indicates the upstream could not produce a
	// definitive answer: transport failures and 5xx responses that survived
	// the retry budget, or a circuit breaker rejecting calls outright.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrUnexpectedResponse indicates the upstream answered with a payload
	// shape this client does not know how to interpret.
	ErrUnexpectedResponse = errors.New("unexpected upstream response")
)
