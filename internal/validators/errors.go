package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrInvalidCreateRequest = errors.New("invalid create reservation request")
)
