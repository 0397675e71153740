package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// ErrAmountNegative is returned when a negative amount is passed to an
	// operation that only accepts non-negative ones.
	ErrAmountNegative = errors.New("amounts must not be negative")
)
