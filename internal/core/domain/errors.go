package domain

import "errors"

var (
	// ErrInvalidRequest marks a request rejected before any rate lookup.
	ErrInvalidRequest = errors.New("invalid calculation request")
	// ErrDataIntegrity marks broken reference data that aborts a calculation.
	ErrDataIntegrity = errors.New("rate data integrity violation")
	// ErrPersistence marks a computed result whose audit record was not written.
	ErrPersistence = errors.New("calculation log not saved")

	// ErrIdempotencyConflict marks an idempotency key already used for a
	// different calculation.
	ErrIdempotencyConflict = errors.New("idempotency key already used for a different calculation")

	ErrLogNotFound     = errors.New("calculation log not found")
	ErrPendingNotFound = errors.New("pending calculation not found")
)
