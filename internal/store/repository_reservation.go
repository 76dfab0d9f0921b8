package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/homestays/reservations-api/internal/logger"
	"github.com/homestays/reservations-api/models"
)

// reservationRepository is the PostgreSQL-backed implementation of
// [ReservationRepository]. It executes all reservation CRUD operations
// directly against the "micro_reservas" table using the embedded [*DB]
// connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (reservation_id, client_id, host_id, etc.).
type reservationRepository struct {
	*DB
	logger *logger.Logger
}

// NewReservationRepository constructs a [ReservationRepository] backed by
// the provided database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewReservationRepository(db *DB, logger *logger.Logger) ReservationRepository {
	return &reservationRepository{
		DB:     db,
		logger: logger,
	}
}

// GetAll implements [ReservationRepository].
func (r *reservationRepository) GetAll(ctx context.Context) ([]models.Reservation, error) {
	query, args, err := buildSelectReservationsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryReservations(ctx, "reservationRepository.GetAll", query, args)
}

// GetByClient implements [ReservationRepository].
func (r *reservationRepository) GetByClient(ctx context.Context, clientID string) ([]models.Reservation, error) {
	query, args, err := buildSelectReservationsByClientQuery(clientID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryReservations(ctx, "reservationRepository.GetByClient", query, args)
}

// GetByHost implements [ReservationRepository].
func (r *reservationRepository) GetByHost(ctx context.Context, hostID string) ([]models.Reservation, error) {
	query, args, err := buildSelectReservationsByHostQuery(hostID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryReservations(ctx, "reservationRepository.GetByHost", query, args)
}

// GetByID implements [ReservationRepository]. Returns
// [ErrReservationNotFound] when no row matches reservationID.
func (r *reservationRepository) GetByID(ctx context.Context, reservationID int64) (models.Reservation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectReservationByIDQuery(reservationID)
	if err != nil {
		return models.Reservation{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var reservation models.Reservation
	scanErr := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ReservationID,
		&reservation.AirbnbID,
		&reservation.AirbnbName,
		&reservation.HostID,
		&reservation.ClientID,
		&reservation.ClientName,
		&reservation.ReservationDate,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		log.Warn().
			Str("func", "reservationRepository.GetByID").
			Int64("reservation_id", reservationID).
			Msg("reservation not found")
		return models.Reservation{}, ErrReservationNotFound
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "reservationRepository.GetByID").
			Int64("reservation_id", reservationID).
			Msg("failed to execute query for getting reservation")
		return models.Reservation{}, fmt.Errorf("%w: %w", ErrExecutingQuery, scanErr)
	}

	return reservation, nil
}

// Create implements [ReservationRepository]. The generated primary key and
// audit timestamps are written back into reservation via the
// INSERT … RETURNING clause. Returns [ErrDuplicateReservation] on a unique
// constraint violation.
func (r *reservationRepository) Create(ctx context.Context, reservation *models.Reservation) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertReservationQuery(reservation)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	log.Debug().
		Str("func", "reservationRepository.Create").
		Str("client_id", reservation.ClientID).
		Str("airbnb_id", reservation.AirbnbID).
		Msg("saving reservation record")

	queryErr := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ReservationID,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
	)
	if queryErr != nil {
		if isUniqueViolation(queryErr) {
			log.Warn().
				Str("func", "reservationRepository.Create").
				Str("client_id", reservation.ClientID).
				Str("airbnb_id", reservation.AirbnbID).
				Msg("duplicate reservation rejected by constraint")
			return fmt.Errorf("%w: %w", ErrDuplicateReservation, queryErr)
		}

		log.Err(queryErr).
			Str("func", "reservationRepository.Create").
			Str("client_id", reservation.ClientID).
			Str("airbnb_id", reservation.AirbnbID).
			Bool("retryable", r.errorClassificator.Classify(queryErr) == Retryable).
			Msg("failed to save reservation")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}

	log.Info().
		Str("func", "reservationRepository.Create").
		Int64("reservation_id", reservation.ReservationID).
		Str("client_id", reservation.ClientID).
		Msg("successfully saved reservation")

	return nil
}

// Delete implements [ReservationRepository]. Returns
// [ErrReservationNotFound] when no row was deleted.
func (r *reservationRepository) Delete(ctx context.Context, reservationID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteReservationQuery(reservationID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, execErr := r.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "reservationRepository.Delete").
			Int64("reservation_id", reservationID).
			Msg("failed to execute delete query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, execErr)
	}

	affected, affErr := result.RowsAffected()
	if affErr != nil {
		log.Err(affErr).
			Str("func", "reservationRepository.Delete").
			Int64("reservation_id", reservationID).
			Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, affErr)
	}

	if affected == 0 {
		log.Warn().
			Str("func", "reservationRepository.Delete").
			Int64("reservation_id", reservationID).
			Msg("reservation not found")
		return ErrReservationNotFound
	}

	log.Info().
		Str("func", "reservationRepository.Delete").
		Int64("reservation_id", reservationID).
		Msg("successfully deleted reservation")

	return nil
}

// queryReservations runs a multi-row SELECT and scans the full reservation
// column set. An empty result produces an empty slice, never nil.
func (r *reservationRepository) queryReservations(ctx context.Context, funcName, query string, args []any) ([]models.Reservation, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := r.DB.QueryContext(ctx, query, args...)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", funcName).
			Msg("failed to execute query for getting reservations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	reservations := make([]models.Reservation, 0, 50)

	for rows.Next() {
		var reservation models.Reservation

		scanErr := rows.Scan(
			&reservation.ReservationID,
			&reservation.AirbnbID,
			&reservation.AirbnbName,
			&reservation.HostID,
			&reservation.ClientID,
			&reservation.ClientName,
			&reservation.ReservationDate,
			&reservation.CreatedAt,
			&reservation.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", funcName).
				Msg("failed to scan reservation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		reservations = append(reservations, reservation)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", funcName).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return reservations, nil
}
