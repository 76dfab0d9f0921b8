package models

import "time"

// Reservation is the booking record owned by this service. The airbnb and
// client fields are a point-in-time snapshot of the referenced listing and
// user, copied at creation so later reads never need a remote call. They are
// never refreshed if the source entities change; a reservation is immutable
// after creation except for deletion (cancellation).
type Reservation struct {
	// ReservationID is generated by the database on creation.
	ReservationID int64 `json:"reservationId"`

	// AirbnbID identifies the reserved listing in the listing catalog.
	AirbnbID string `json:"airbnbId"`

	// AirbnbName is the listing's display name at creation time.
	AirbnbName string `json:"airbnbName"`

	// HostID is the listing owner's identifier at creation time.
	HostID string `json:"hostId"`

	// ClientID identifies the booking user in the user directory.
	ClientID string `json:"clientId"`

	// ClientName is the booking user's display name at creation time.
	ClientName string `json:"clientName"`

	// ReservationDate is the server-clock timestamp of creation.
	ReservationDate time.Time `json:"reservationDate"`

	// CreatedAt and UpdatedAt are persistence-layer audit timestamps.
	// They are not exposed via JSON.
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Reservation model.
func (r Reservation) TableName() string {
	return "micro_reservas"
}
