package models

import "time"

// SuccessResponse builds the standard response envelope for a successful
// operation. All endpoints of this service answer with the same wrapper the
// upstream microservices use, so clients can decode every service uniformly.
func SuccessResponse[T any](data T, message string, statusCode int) Envelope[T] {
	return Envelope[T]{
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
		Success:    true,
		Timestamp:  time.Now().UTC(),
	}
}

// ErrorResponse builds the standard response envelope for a failed operation.
// Data is left at the zero value.
func ErrorResponse(message string, statusCode int) Envelope[any] {
	return Envelope[any]{
		StatusCode: statusCode,
		Message:    message,
		Success:    false,
		Timestamp:  time.Now().UTC(),
	}
}
