package services

import "errors"

var (
	// ErrFoodNotFound aborts an entire nutrition-entry write when any
	// referenced food is missing; no partial entry is ever persisted.
	ErrFoodNotFound = errors.New("food not found")

	// ErrNotFound covers a target entity that does not exist or is not
	// owned by the caller — deliberately indistinguishable, so endpoints
	// never leak the existence of other users' records.
	ErrNotFound = errors.New("not found")

	// ErrGoalNotActive rejects progress updates against paused, completed
	// or cancelled goals.
	ErrGoalNotActive = errors.New("goal is not active")

	// ErrInvalidValue rejects non-finite numeric input.
	ErrInvalidValue = errors.New("invalid value")
)
