// Package services contains domain business logic.
package services

import "errors"

var (
	// ErrUnauthenticated is returned when an operation needs an actor and none is set.
	ErrUnauthenticated = errors.New("no active user")
	// ErrForbidden is returned when the actor's role may not perform the operation.
	ErrForbidden = errors.New("role not permitted")
	// ErrNotFound is returned for unknown place, request or notification IDs.
	ErrNotFound = errors.New("not found")
	// ErrInvalidOutcome is returned when a decision is not APPROVED, REJECTED or HOLD.
	ErrInvalidOutcome = errors.New("invalid decision outcome")
	// ErrAlreadyDecided is returned when deciding a request that is no longer pending.
	ErrAlreadyDecided = errors.New("request already decided")
	// ErrInvalidRating is returned for ratings outside 1-5.
	ErrInvalidRating = errors.New("rating must be between 1 and 5")
	// ErrInvalidPlace is returned when a new place is missing required fields.
	ErrInvalidPlace = errors.New("invalid place")
)

// ErrSearchUnavailable is returned by semantic search when no embedder or index is configured.
var ErrSearchUnavailable = errors.New("semantic search is not configured")
