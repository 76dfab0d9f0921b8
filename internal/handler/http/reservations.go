package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/homestays/reservations-api/internal/logger"
	"github.com/homestays/reservations-api/internal/utils"
	"github.com/homestays/reservations-api/models"
)

// createReservation handles POST /api/reservations. The body carries the two
// references (clientId, airbnbId); everything else is resolved server-side.
func (h *Handler) createReservation(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	caller, ok := utils.CallerFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	var req models.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("failed to decode create reservation request")
		utils.WriteJSON(w, models.ErrorResponse("invalid request body", http.StatusBadRequest), http.StatusBadRequest) //nolint:errcheck
		return
	}

	if err := h.validator.Validate(r.Context(), req); err != nil {
		log.Err(err).Msg("create reservation request failed validation")
		writeError(w, err)
		return
	}

	reservation, err := h.services.Reservations.Create(r.Context(), caller, req)
	if err != nil {
		log.Err(err).
			Str("client_id", req.ClientID).
			Str("airbnb_id", req.AirbnbID).
			Msg("failed to create reservation")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse(reservation, "reservation created", http.StatusCreated), http.StatusCreated) //nolint:errcheck
}

// listReservations handles GET /api/reservations. Admin only.
func (h *Handler) listReservations(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.CallerFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	reservations, err := h.services.Reservations.ListAll(r.Context(), caller)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("failed to list reservations")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse(reservations, "reservations listed", http.StatusOK), http.StatusOK) //nolint:errcheck
}

// listReservationsByClient handles GET /api/reservations/client/{clientId}.
func (h *Handler) listReservationsByClient(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.CallerFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	clientID := chi.URLParam(r, "clientId")

	reservations, err := h.services.Reservations.ListByClient(r.Context(), caller, clientID)
	if err != nil {
		logger.FromRequest(r).Err(err).
			Str("client_id", clientID).
			Msg("failed to list reservations by client")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse(reservations, "reservations listed", http.StatusOK), http.StatusOK) //nolint:errcheck
}

// listReservationsByHost handles GET /api/reservations/host/{hostId}.
func (h *Handler) listReservationsByHost(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.CallerFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	hostID := chi.URLParam(r, "hostId")

	reservations, err := h.services.Reservations.ListByHost(r.Context(), caller, hostID)
	if err != nil {
		logger.FromRequest(r).Err(err).
			Str("host_id", hostID).
			Msg("failed to list reservations by host")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse(reservations, "reservations listed", http.StatusOK), http.StatusOK) //nolint:errcheck
}

// getReservation handles GET /api/reservations/{reservationId}.
func (h *Handler) getReservation(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.CallerFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	reservationID, err := parseReservationID(r)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse("invalid reservation id", http.StatusBadRequest), http.StatusBadRequest) //nolint:errcheck
		return
	}

	reservation, err := h.services.Reservations.GetByID(r.Context(), caller, reservationID)
	if err != nil {
		logger.FromRequest(r).Err(err).
			Int64("reservation_id", reservationID).
			Msg("failed to get reservation")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse(reservation, "reservation found", http.StatusOK), http.StatusOK) //nolint:errcheck
}

// deleteReservation handles DELETE /api/reservations/{reservationId}.
func (h *Handler) deleteReservation(w http.ResponseWriter, r *http.Request) {
	caller, ok := utils.CallerFromContext(r.Context())
	if !ok {
		writeUnauthorized(w, http.StatusText(http.StatusUnauthorized))
		return
	}

	reservationID, err := parseReservationID(r)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse("invalid reservation id", http.StatusBadRequest), http.StatusBadRequest) //nolint:errcheck
		return
	}

	if err := h.services.Reservations.Delete(r.Context(), caller, reservationID); err != nil {
		logger.FromRequest(r).Err(err).
			Int64("reservation_id", reservationID).
			Msg("failed to delete reservation")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.SuccessResponse[any](nil, "reservation deleted", http.StatusOK), http.StatusOK) //nolint:errcheck
}

func parseReservationID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "reservationId"), 10, 64)
}
