package errs

import (
	"errors"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrResourceNotFound    = errors.New("resource not found")
	ErrResourceUnavailable = errors.New("resource not available")
	ErrUnauthorized        = errors.New("not record owner")
	ErrAlreadyReturned     = errors.New("transaction already returned")
	ErrAlreadyPaid         = errors.New("fine already paid")
	// ErrConsistency means available_quantity would exceed total_quantity.
	// It signals a concurrency-control failure and is never corrected silently.
	ErrConsistency = errors.New("inventory consistency violation")
)
