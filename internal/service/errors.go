package service

import (
	"errors"
	"fmt"
)

var (
	// ErrUnauthorized is returned whenever the authorization policy denies an
	// operation. The wrapping error always carries a human-readable reason.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrReferenceNotFound is the matching target for
	// [ReferenceNotFoundError]. Use errors.Is against this value when the
	// kind and id do not matter.
	ErrReferenceNotFound = errors.New("referenced entity not found")
)

// ReferenceNotFoundError reports that an entity referenced by a create
// request (a user or a listing) does not exist upstream. It matches
// [ErrReferenceNotFound] via errors.Is.
type ReferenceNotFoundError struct {
	// Kind names the referenced entity class: "user" or "listing".
	Kind string
	// ID is the identifier that failed to resolve.
	ID string
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("referenced %s %q not found", e.Kind, e.ID)
}

func (e *ReferenceNotFoundError) Is(target error) bool {
	return target == ErrReferenceNotFound
}
