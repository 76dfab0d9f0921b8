package store

import (
	"context"

	"github.com/homestays/reservations-api/models"
)

// ReservationRepository is the persistence contract for reservation records.
// All methods honor context cancellation and return the package's sentinel
// errors for well-known conditions.
type ReservationRepository interface {
	// GetAll returns every stored reservation ordered by id.
	GetAll(ctx context.Context) ([]models.Reservation, error)

	// GetByClient returns the reservations whose client_id equals clientID,
	// ordered by id. An empty result is not an error.
	GetByClient(ctx context.Context, clientID string) ([]models.Reservation, error)

	// GetByHost returns the reservations whose host_id equals hostID,
	// ordered by id. An empty result is not an error.
	GetByHost(ctx context.Context, hostID string) ([]models.Reservation, error)

	// GetByID returns a single reservation by primary key. Returns
	// [ErrReservationNotFound] if no such row exists.
	GetByID(ctx context.Context, reservationID int64) (models.Reservation, error)

	// Create inserts a fully denormalized reservation and populates the
	// server-assigned ReservationID, CreatedAt and UpdatedAt fields of the
	// passed record. Returns [ErrDuplicateReservation] on a uniqueness
	// violation.
	Create(ctx context.Context, reservation *models.Reservation) error

	// Delete removes a reservation by primary key. Returns
	// [ErrReservationNotFound] if no row was deleted.
	Delete(ctx context.Context, reservationID int64) error
}

// ErrorClassificator determines whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
