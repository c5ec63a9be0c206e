package domain

import "errors"

var (
	// ErrEmptyCatalog is returned when a selection or extraction is attempted
	// against a catalog with no products. Fatal to the request, not the process.
	ErrEmptyCatalog = errors.New("product catalog is empty")

	// ErrProductNotFound is returned when a product id cannot be resolved
	ErrProductNotFound = errors.New("product not found in catalog")

	// ErrNoRelevantMatch is returned when the relevance filter removes every
	// candidate. An expected, user-visible outcome rather than a failure.
	ErrNoRelevantMatch = errors.New("no highly relevant product matches found")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrGeneratorUnavailable is returned when the generator cannot be reached
	ErrGeneratorUnavailable = errors.New("generator request failed")
)
