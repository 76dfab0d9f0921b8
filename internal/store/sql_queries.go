package store

import (
	"github.com/Masterminds/squirrel"

	"github.com/homestays/reservations-api/models"
)

// psql is the shared squirrel statement builder configured for PostgreSQL
// positional placeholders ($1, $2, ...).
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var reservationColumns = []string{
	"reservation_id",
	"airbnb_id",
	"airbnb_name",
	"host_id",
	"client_id",
	"client_name",
	"reservation_date",
	"created_at",
	"updated_at",
}

func buildSelectReservationsQuery() (string, []any, error) {
	return psql.
		Select(reservationColumns...).
		From(models.Reservation{}.TableName()).
		OrderBy("reservation_id").
		ToSql()
}

func buildSelectReservationsByClientQuery(clientID string) (string, []any, error) {
	return psql.
		Select(reservationColumns...).
		From(models.Reservation{}.TableName()).
		Where(squirrel.Eq{"client_id": clientID}).
		OrderBy("reservation_id").
		ToSql()
}

func buildSelectReservationsByHostQuery(hostID string) (string, []any, error) {
	return psql.
		Select(reservationColumns...).
		From(models.Reservation{}.TableName()).
		Where(squirrel.Eq{"host_id": hostID}).
		OrderBy("reservation_id").
		ToSql()
}

func buildSelectReservationByIDQuery(reservationID int64) (string, []any, error) {
	return psql.
		Select(reservationColumns...).
		From(models.Reservation{}.TableName()).
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()
}

func buildInsertReservationQuery(reservation *models.Reservation) (string, []any, error) {
	return psql.
		Insert(models.Reservation{}.TableName()).
		Columns(
			"airbnb_id",
			"airbnb_name",
			"host_id",
			"client_id",
			"client_name",
			"reservation_date",
		).
		Values(
			reservation.AirbnbID,
			reservation.AirbnbName,
			reservation.HostID,
			reservation.ClientID,
			reservation.ClientName,
			reservation.ReservationDate,
		).
		Suffix("RETURNING reservation_id, created_at, updated_at").
		ToSql()
}

func buildDeleteReservationQuery(reservationID int64) (string, []any, error) {
	return psql.
		Delete(models.Reservation{}.TableName()).
		Where(squirrel.Eq{"reservation_id": reservationID}).
		ToSql()
}
