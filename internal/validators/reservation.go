package validators

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/homestays/reservations-api/models"
)

// ReservationValidator implements the Validator interface for the
// reservation request models. Structural rules live in the `validate` struct
// tags of the models; this type owns the shared validator/v10 instance.
//
// Both value and pointer forms of each supported model are accepted.
type ReservationValidator struct {
	validate *validator.Validate
}

// NewReservationValidator constructs a new ReservationValidator
// and returns it as the Validator interface.
func NewReservationValidator() Validator {
	return &ReservationValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate dispatches validation to the appropriate type-specific check
// based on the dynamic type of obj.
//
// Supported types:
//   - models.CreateReservationRequest / *models.CreateReservationRequest
//
// Returns ErrUnsupportedType if obj does not match any known model, and a
// wrapped ErrInvalidCreateRequest carrying the first offending field
// otherwise.
func (v *ReservationValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.CreateReservationRequest:
		return v.validateCreateRequest(ctx, value)
	case *models.CreateReservationRequest:
		return v.validateCreateRequest(ctx, *value)
	default:
		return ErrUnsupportedType
	}
}

func (v *ReservationValidator) validateCreateRequest(ctx context.Context, req models.CreateReservationRequest) error {
	if err := v.validate.StructCtx(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCreateRequest, err)
	}

	return nil
}
