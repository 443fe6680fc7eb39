package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrMissingParam is returned by a rule declared without a parameter it needs.
	ErrMissingParam = errors.New("validator: missing rule parameter")

	// ErrInvalidParam is returned by a rule whose parameter cannot be interpreted.
	ErrInvalidParam = errors.New("validator: invalid rule parameter")
)
