// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, JWT token parsing
// and validation, and other common operations.
package utils

import (
	"context"

	"github.com/homestays/reservations-api/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// CallerCtxKey is the key used to store the authenticated caller in the
// context. Used together with CallerFromContext for type-safe retrieval
// of the caller from context.Context.
var CallerCtxKey = contextKey("caller")

// WithCaller returns a copy of ctx carrying the authenticated caller.
func WithCaller(ctx context.Context, caller models.Caller) context.Context {
	return context.WithValue(ctx, CallerCtxKey, caller)
}

// CallerFromContext retrieves the authenticated caller from the context.
//
// Returns the caller and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func CallerFromContext(ctx context.Context) (models.Caller, bool) {
	caller, ok := ctx.Value(CallerCtxKey).(models.Caller)
	return caller, ok
}
