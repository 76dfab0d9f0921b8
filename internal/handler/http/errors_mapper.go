package http

import (
	"errors"
	"net/http"

	"github.com/homestays/reservations-api/internal/adapter"
	"github.com/homestays/reservations-api/internal/service"
	"github.com/homestays/reservations-api/internal/store"
	"github.com/homestays/reservations-api/internal/utils"
	"github.com/homestays/reservations-api/internal/validators"
	"github.com/homestays/reservations-api/models"
)

var errorStatusMap = map[error]int{
	service.ErrUnauthorized:      http.StatusForbidden,
	service.ErrReferenceNotFound: http.StatusNotFound,

	validators.ErrInvalidCreateRequest: http.StatusBadRequest,
	validators.ErrUnsupportedType:      http.StatusBadRequest,

	store.ErrReservationNotFound:  http.StatusNotFound,
	store.ErrDuplicateReservation: http.StatusConflict,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,

	adapter.ErrUpstreamUnavailable: http.StatusBadGateway,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to its HTTP status and writes the standard error
// envelope. Internal failures are masked with a generic message so storage
// details never leak to clients.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.ErrorResponse(message, status), status) //nolint:errcheck
}
