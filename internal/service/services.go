package service

import (
	"github.com/homestays/reservations-api/internal/adapter"
	"github.com/homestays/reservations-api/internal/logger"
	"github.com/homestays/reservations-api/internal/store"
)

type Services struct {
	Reservations ReservationService
}

func NewServices(repository store.ReservationRepository, users adapter.UserDirectory, listings adapter.ListingCatalog, logger *logger.Logger) *Services {
	policy := NewPolicy(listings, logger)

	return &Services{
		Reservations: NewReservationService(repository, users, listings, policy, logger),
	}
}
