package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/homestays/reservations-api/internal/adapter"
	"github.com/homestays/reservations-api/internal/logger"
	"github.com/homestays/reservations-api/models"
)

// Policy is the stateless capability matrix deciding which caller may perform
// which reservation operation. Every verdict is an identity or ownership
// comparison over the closed role set; the single exception is the Host
// read-single rule, which needs one remote listing lookup to learn who owns
// the reserved listing.
//
// Every denial is returned as [ErrUnauthorized] wrapped with a reason.
type Policy struct {
	listings adapter.ListingCatalog
	logger   *logger.Logger
}

// NewPolicy constructs a [Policy]. The listing catalog client is only used by
// [Policy.CanView] for Host callers.
func NewPolicy(listings adapter.ListingCatalog, logger *logger.Logger) *Policy {
	return &Policy{
		listings: listings,
		logger:   logger,
	}
}

// CanCreate decides whether caller may create a reservation booked for
// clientID. Admins may book for anyone, Clientes only for themselves, Hosts
// never.
func (p *Policy) CanCreate(caller models.Caller, clientID string) error {
	switch caller.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleCliente:
		if caller.ID == clientID {
			return nil
		}
		return fmt.Errorf("%w: client %s may only book for themselves", ErrUnauthorized, caller.ID)
	case models.RoleHost:
		return fmt.Errorf("%w: hosts cannot create reservations", ErrUnauthorized)
	default:
		return fmt.Errorf("%w: unknown role %q", ErrUnauthorized, caller.Role)
	}
}

// CanListAll decides whether caller may read the unfiltered reservation list.
// Admin only.
func (p *Policy) CanListAll(caller models.Caller) error {
	if caller.Role == models.RoleAdmin {
		return nil
	}
	return fmt.Errorf("%w: only admins may list all reservations", ErrUnauthorized)
}

// CanListByClient decides whether caller may read the reservations booked by
// clientID.
func (p *Policy) CanListByClient(caller models.Caller, clientID string) error {
	switch caller.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleCliente:
		if caller.ID == clientID {
			return nil
		}
		return fmt.Errorf("%w: client %s may only read their own reservations", ErrUnauthorized, caller.ID)
	case models.RoleHost:
		return fmt.Errorf("%w: hosts cannot read reservations by client", ErrUnauthorized)
	default:
		return fmt.Errorf("%w: unknown role %q", ErrUnauthorized, caller.Role)
	}
}

// CanListByHost decides whether caller may read the reservations on listings
// owned by hostID.
func (p *Policy) CanListByHost(caller models.Caller, hostID string) error {
	switch caller.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleHost:
		if caller.ID == hostID {
			return nil
		}
		return fmt.Errorf("%w: host %s may only read their own listings' reservations", ErrUnauthorized, caller.ID)
	case models.RoleCliente:
		return fmt.Errorf("%w: clients cannot read reservations by host", ErrUnauthorized)
	default:
		return fmt.Errorf("%w: unknown role %q", ErrUnauthorized, caller.Role)
	}
}

// CanView decides whether caller may read a single reservation.
//
// Guards are evaluated in cost order: Admin always passes, Cliente passes on
// ownership of the booking, and only then does the Host rule pay for the
// remote listing lookup to compare the listing owner with the caller. A
// listing that no longer resolves denies the read; an unavailable catalog
// propagates so the caller can distinguish "denied" from "unknown".
func (p *Policy) CanView(ctx context.Context, caller models.Caller, reservation models.Reservation) error {
	if caller.Role == models.RoleAdmin {
		return nil
	}

	if caller.Role == models.RoleCliente {
		if caller.ID == reservation.ClientID {
			return nil
		}
		return fmt.Errorf("%w: client %s does not own reservation %d", ErrUnauthorized, caller.ID, reservation.ReservationID)
	}

	if caller.Role == models.RoleHost {
		listing, err := p.listings.GetListing(ctx, reservation.AirbnbID, caller.Token)
		if err != nil {
			if errors.Is(err, adapter.ErrNotFound) {
				return fmt.Errorf("%w: listing %s not resolvable for ownership check", ErrUnauthorized, reservation.AirbnbID)
			}
			return fmt.Errorf("checking listing ownership: %w", err)
		}

		if listing.HostID == caller.ID {
			return nil
		}
		return fmt.Errorf("%w: host %s does not own listing %s", ErrUnauthorized, caller.ID, reservation.AirbnbID)
	}

	return fmt.Errorf("%w: unknown role %q", ErrUnauthorized, caller.Role)
}

// CanDelete decides whether caller may cancel a reservation. Admins always,
// Clientes on ownership of the booking, Hosts never.
func (p *Policy) CanDelete(caller models.Caller, reservation models.Reservation) error {
	switch caller.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleCliente:
		if caller.ID == reservation.ClientID {
			return nil
		}
		return fmt.Errorf("%w: client %s does not own reservation %d", ErrUnauthorized, caller.ID, reservation.ReservationID)
	case models.RoleHost:
		return fmt.Errorf("%w: hosts cannot delete reservations", ErrUnauthorized)
	default:
		return fmt.Errorf("%w: unknown role %q", ErrUnauthorized, caller.Role)
	}
}
