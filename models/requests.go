package models

// CreateReservationRequest is the inbound payload for creating a reservation.
// Only the two references are accepted; every denormalized field is resolved
// server-side from the owning services.
type CreateReservationRequest struct {
	ClientID string `json:"clientId" validate:"required"`
	AirbnbID string `json:"airbnbId" validate:"required"`
}
