package models

import (
	"errors"
	"fmt"
)

// Role is the closed set of caller roles recognised by the reservation
// service. Every authorization decision is an exhaustive function over this
// set; there is no default-allow for unknown values.
type Role string

const (
	// RoleAdmin may manage any reservation.
	RoleAdmin Role = "Admin"

	// RoleHost owns listings and may inspect reservations made against them.
	RoleHost Role = "Host"

	// RoleCliente books reservations and may only act on their own.
	RoleCliente Role = "Cliente"
)

// ErrUnknownRole is returned by [ParseRole] when the input does not name one
// of the three recognised roles.
var ErrUnknownRole = errors.New("unknown role")

// ParseRole converts a raw role claim into a [Role]. The comparison is exact;
// unknown or differently-cased values are rejected so that a typo in a token
// claim can never widen access.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleHost:
		return RoleHost, nil
	case RoleCliente:
		return RoleCliente, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, raw)
	}
}

// Valid reports whether r is one of the recognised roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleHost, RoleCliente:
		return true
	default:
		return false
	}
}

// String implements the fmt.Stringer interface.
func (r Role) String() string {
	return string(r)
}
