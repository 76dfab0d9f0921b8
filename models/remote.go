package models

import "time"

// RemoteUser is the read-only projection of a user directory record. This
// service never creates or mutates users; it fetches them fresh per
// reservation-create call to denormalize name data into the reservation.
type RemoteUser struct {
	UserID int64  `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Email  string `json:"email"`
}

// RemoteListing is the read-only projection of a listing catalog record.
// Only ID, Name, and HostID participate in orchestration; the remaining
// fields are display data passed through untouched.
type RemoteListing struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	HostID   string `json:"hostId"`
	HostName string `json:"hostName"`

	NeighbourhoodGroup string `json:"neighbourhoodGroup"`
	Neighbourhood      string `json:"neighbourhood"`
	RoomType           string `json:"roomType"`
	Price              string `json:"price"`
	MinimumNights      string `json:"minimumNights"`
	Rating             string `json:"rating"`
}

// Envelope is the JSON wrapper every upstream microservice (and this one)
// uses for its responses.
type Envelope[T any] struct {
	StatusCode int       `json:"statusCode"`
	Message    string    `json:"message"`
	Data       T         `json:"data"`
	Success    bool      `json:"success"`
	Timestamp  time.Time `json:"timestamp"`
}
