package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/homestays/reservations-api/internal/adapter"
	"github.com/homestays/reservations-api/internal/logger"
	"github.com/homestays/reservations-api/internal/store"
	"github.com/homestays/reservations-api/models"
)

// reservationService is the default implementation of [ReservationService].
// Each call is a one-shot sequence of authorize, resolve references, touch
// the store; no state is held between calls.
type reservationService struct {
	repository store.ReservationRepository
	users      adapter.UserDirectory
	listings   adapter.ListingCatalog
	policy     *Policy

	logger *logger.Logger

	// now is injected so tests can pin the reservation timestamp.
	now func() time.Time
}

// NewReservationService constructs the orchestrating [ReservationService].
func NewReservationService(
	repository store.ReservationRepository,
	users adapter.UserDirectory,
	listings adapter.ListingCatalog,
	policy *Policy,
	logger *logger.Logger,
) ReservationService {
	return &reservationService{
		repository: repository,
		users:      users,
		listings:   listings,
		policy:     policy,
		logger:     logger,
		now:        time.Now,
	}
}

// Create implements [ReservationService].
//
// The user and listing lookups are independent, so they run concurrently;
// both share the caller's context, and the first definitive failure cancels
// the other lookup. The store write happens strictly after both snapshots
// are in hand, so a failed create never persists a partial record.
func (s *reservationService) Create(ctx context.Context, caller models.Caller, req models.CreateReservationRequest) (models.Reservation, error) {
	log := logger.FromContext(ctx)

	if err := s.policy.CanCreate(caller, req.ClientID); err != nil {
		return models.Reservation{}, err
	}

	var (
		user    models.RemoteUser
		listing models.RemoteListing
	)

	g, groupCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		found, err := s.users.GetUser(groupCtx, req.ClientID, caller.Token)
		if err != nil {
			if errors.Is(err, adapter.ErrNotFound) {
				return &ReferenceNotFoundError{Kind: "user", ID: req.ClientID}
			}
			return fmt.Errorf("resolving user %s: %w", req.ClientID, err)
		}
		user = found
		return nil
	})
	g.Go(func() error {
		found, err := s.listings.GetListing(groupCtx, req.AirbnbID, caller.Token)
		if err != nil {
			if errors.Is(err, adapter.ErrNotFound) {
				return &ReferenceNotFoundError{Kind: "listing", ID: req.AirbnbID}
			}
			return fmt.Errorf("resolving listing %s: %w", req.AirbnbID, err)
		}
		listing = found
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.Reservation{}, err
	}

	reservation := models.Reservation{
		AirbnbID:        listing.ID,
		AirbnbName:      listing.Name,
		HostID:          listing.HostID,
		ClientID:        req.ClientID,
		ClientName:      user.Name,
		ReservationDate: s.now(),
	}

	if err := s.repository.Create(ctx, &reservation); err != nil {
		return models.Reservation{}, err
	}

	log.Info().
		Int64("reservation_id", reservation.ReservationID).
		Str("client_id", reservation.ClientID).
		Str("airbnb_id", reservation.AirbnbID).
		Str("host_id", reservation.HostID).
		Msg("reservation created")

	return reservation, nil
}

// GetByID implements [ReservationService]. Absence is reported before the
// policy verdict so a caller probing for foreign reservations learns nothing
// beyond existence.
func (s *reservationService) GetByID(ctx context.Context, caller models.Caller, reservationID int64) (models.Reservation, error) {
	reservation, err := s.repository.GetByID(ctx, reservationID)
	if err != nil {
		return models.Reservation{}, err
	}

	if err := s.policy.CanView(ctx, caller, reservation); err != nil {
		return models.Reservation{}, err
	}

	return reservation, nil
}

// ListAll implements [ReservationService].
func (s *reservationService) ListAll(ctx context.Context, caller models.Caller) ([]models.Reservation, error) {
	if err := s.policy.CanListAll(caller); err != nil {
		return nil, err
	}

	return s.repository.GetAll(ctx)
}

// ListByClient implements [ReservationService].
func (s *reservationService) ListByClient(ctx context.Context, caller models.Caller, clientID string) ([]models.Reservation, error) {
	if err := s.policy.CanListByClient(caller, clientID); err != nil {
		return nil, err
	}

	return s.repository.GetByClient(ctx, clientID)
}

// ListByHost implements [ReservationService].
func (s *reservationService) ListByHost(ctx context.Context, caller models.Caller, hostID string) ([]models.Reservation, error) {
	if err := s.policy.CanListByHost(caller, hostID); err != nil {
		return nil, err
	}

	return s.repository.GetByHost(ctx, hostID)
}

// Delete implements [ReservationService].
func (s *reservationService) Delete(ctx context.Context, caller models.Caller, reservationID int64) error {
	log := logger.FromContext(ctx)

	reservation, err := s.repository.GetByID(ctx, reservationID)
	if err != nil {
		return err
	}

	if err := s.policy.CanDelete(caller, reservation); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, reservationID); err != nil {
		return err
	}

	log.Info().
		Int64("reservation_id", reservationID).
		Str("deleted_by", caller.ID).
		Msg("reservation deleted")

	return nil
}
