package queueing

import "errors"

var (
	// ErrInvalidInput marks out-of-domain parameters: negative offered
	// load, negative server counts, non-positive rates or horizons.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientSamples is returned when a simulation horizon was too
	// short to produce a single arrival, so no blocking estimate exists.
	ErrInsufficientSamples = errors.New("insufficient samples")

	// ErrEventBudget is returned when a run exceeds its event cap before
	// reaching the horizon (or the minimum-arrival target).
	ErrEventBudget = errors.New("event budget exhausted")
)
