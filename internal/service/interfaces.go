package service

import (
	"context"

	"github.com/homestays/reservations-api/models"
)

// ReservationService orchestrates reservation operations: it gates every call
// through the authorization policy, resolves remote references, and delegates
// persistence to the store.
//
// All methods return the package's error taxonomy and never a raw transport
// error: [ErrUnauthorized], [ReferenceNotFoundError],
// store.ErrReservationNotFound, store.ErrDuplicateReservation, or
// adapter.ErrUpstreamUnavailable.
type ReservationService interface {
	// Create books a reservation for req.ClientID on req.AirbnbID. The
	// referenced user and listing are resolved concurrently from their
	// owning services (forwarding the caller's bearer token) and their
	// display fields are denormalized into the stored record. The store is
	// written only after both lookups succeed.
	Create(ctx context.Context, caller models.Caller, req models.CreateReservationRequest) (models.Reservation, error)

	// GetByID loads one reservation and applies the single-reservation read
	// rule, which for Host callers requires a deferred listing lookup.
	GetByID(ctx context.Context, caller models.Caller, reservationID int64) (models.Reservation, error)

	// ListAll returns every reservation. Admin only.
	ListAll(ctx context.Context, caller models.Caller) ([]models.Reservation, error)

	// ListByClient returns the reservations booked by clientID.
	ListByClient(ctx context.Context, caller models.Caller, clientID string) ([]models.Reservation, error)

	// ListByHost returns the reservations on listings owned by hostID.
	ListByHost(ctx context.Context, caller models.Caller, hostID string) ([]models.Reservation, error)

	// Delete cancels a reservation by id. The reservation is loaded first so
	// that ownership can be checked; absence is reported before any policy
	// verdict.
	Delete(ctx context.Context, caller models.Caller, reservationID int64) error
}
