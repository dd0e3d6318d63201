package service

import (
	"errors"
	"fmt"
)

// Every rejected path maps to one of these so callers can tell the outcomes
// apart. Validation errors are always raised before any write happens;
// ErrPersistence is the only failure possible after validation passes.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidDateRange   = errors.New("end date must be on or after start date")
	ErrInvalidQuantity    = errors.New("invalid quantity")
	ErrForbidden          = errors.New("forbidden")
	ErrPersistence        = errors.New("persistence failure")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

func persistenceError(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistence, err)
}
