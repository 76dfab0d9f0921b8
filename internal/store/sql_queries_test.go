package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/homestays/reservations-api/models"
)

func TestBuildSelectReservationsQuery(t *testing.T) {
	query, args, err := buildSelectReservationsQuery()
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT reservation_id, airbnb_id, airbnb_name, host_id, client_id, client_name, reservation_date, created_at, updated_at FROM micro_reservas ORDER BY reservation_id",
		query)
	assert.Empty(t, args)
}

func TestBuildSelectReservationsByClientQuery(t *testing.T) {
	query, args, err := buildSelectReservationsByClientQuery("42")
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE client_id = $1")
	assert.Contains(t, query, "ORDER BY reservation_id")
	assert.Equal(t, []any{"42"}, args)
}

func TestBuildSelectReservationsByHostQuery(t *testing.T) {
	query, args, err := buildSelectReservationsByHostQuery("7")
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE host_id = $1")
	assert.Equal(t, []any{"7"}, args)
}

func TestBuildSelectReservationByIDQuery(t *testing.T) {
	query, args, err := buildSelectReservationByIDQuery(11)
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE reservation_id = $1")
	assert.Equal(t, []any{int64(11)}, args)
}

func TestBuildInsertReservationQuery(t *testing.T) {
	date := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	reservation := &models.Reservation{
		AirbnbID:        "L-1",
		AirbnbName:      "Loft",
		HostID:          "7",
		ClientID:        "42",
		ClientName:      "Ana",
		ReservationDate: date,
	}

	query, args, err := buildInsertReservationQuery(reservation)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO micro_reservas")
	assert.Contains(t, query, "RETURNING reservation_id, created_at, updated_at")
	assert.Equal(t, []any{"L-1", "Loft", "7", "42", "Ana", date}, args)
}

func TestBuildDeleteReservationQuery(t *testing.T) {
	query, args, err := buildDeleteReservationQuery(3)
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM micro_reservas WHERE reservation_id = $1", query)
	assert.Equal(t, []any{int64(3)}, args)
}
