package store

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuantity is returned when a cart mutation asks for a
	// negative quantity. The cart is left unchanged.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrMalformedOrder is returned when a response body fails the basic
	// shape checks, e.g. a non-numeric price or quantity.
	ErrMalformedOrder = errors.New("malformed order payload")

	// ErrInvalidTransition is returned for a status change that is not an
	// edge of the order workflow. No request is issued.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// FetchError wraps any transport failure or non-2xx response. Local state is
// always left as it was before the call that produced one.
type FetchError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }
