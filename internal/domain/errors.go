package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart indicates a checkout was attempted with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrSubmissionInFlight indicates an order submission is already in
	// progress and the new attempt was rejected.
	ErrSubmissionInFlight = errors.New("submission already in flight")
)
