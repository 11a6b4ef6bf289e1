package adaptation

import (
	"errors"
	"fmt"

	"adaptation-engine/capability"
)

var (
	// ErrNoAdaptation is returned when no chain of offers adapts a value
	// to the requested capability.
	ErrNoAdaptation = errors.New("no adaptation possible")
	// ErrDeclined may be returned by a factory to refuse an adaptee.
	// Returning a nil adapter with a nil error has the same effect.
	ErrDeclined = errors.New("factory declined adaptee")
	// ErrInvalidOffer is returned when registering a malformed offer.
	ErrInvalidOffer = errors.New("invalid adaptation offer")
	// ErrUnknownFactory is returned by lazily bound factories whose name
	// cannot be resolved.
	ErrUnknownFactory = errors.New("unknown factory")
)

// Error describes a failed adaptation. It matches ErrNoAdaptation.
type Error struct {
	Adaptee any
	From    capability.Capability
	To      capability.Capability
}

func (e *Error) Error() string {
	return fmt.Sprintf("could not adapt %T (%s) to %s", e.Adaptee, e.From, e.To)
}

func (e *Error) Unwrap() error {
	return ErrNoAdaptation
}

// FactoryError wraps an unexpected error raised by an offer's factory.
// Such errors abort the adaptation instead of being treated as a refusal.
type FactoryError struct {
	Offer *Offer
	Err   error
}

func (e *FactoryError) Error() string {
	return fmt.Sprintf("factory for offer %s failed: %v", e.Offer, e.Err)
}

func (e *FactoryError) Unwrap() error {
	return e.Err
}
