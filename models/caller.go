package models

// Caller identifies who is invoking an operation. It is derived from the
// bearer token by the transport layer and passed down explicitly; the service
// core never extracts identity on its own.
type Caller struct {
	// ID is the caller's user identifier (the token subject).
	ID string

	// Role is the caller's parsed role claim.
	Role Role

	// Token is the raw bearer token, forwarded verbatim to upstream
	// services so that they can apply their own authorization. It is never
	// fabricated by this service.
	Token string
}
