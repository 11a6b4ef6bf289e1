package adaptation

import (
	"fmt"

	"adaptation-engine/capability"
)

// Factory creates an adapter for adaptee. Returning a nil adapter, or an
// error matching ErrDeclined, refuses the adaptee. Any other error aborts
// the adaptation and is returned to the caller.
type Factory func(adaptee any) (any, error)

// Offer declares that Factory adapts values satisfying From into values
// satisfying To. Offers are compared by identity: two offers with the same
// fields are still distinct offers.
type Offer struct {
	// Name is an optional label used in logs and diagnostics.
	Name    string
	Factory Factory
	From    capability.Capability
	To      capability.Capability
}

// String returns a human-readable representation of the Offer.
func (o *Offer) String() string {
	if o.Name != "" {
		return fmt.Sprintf("%s: %s -> %s", o.Name, o.From, o.To)
	}

	return fmt.Sprintf("%s -> %s", o.From, o.To)
}

func (o *Offer) validate() error {
	switch {
	case o == nil:
		return fmt.Errorf("%w: offer is nil", ErrInvalidOffer)
	case o.Factory == nil:
		return fmt.Errorf("%w: %s has no factory", ErrInvalidOffer, o)
	case o.From.IsZero():
		return fmt.Errorf("%w: %s has no source capability", ErrInvalidOffer, o)
	case o.To.IsZero():
		return fmt.Errorf("%w: %s has no target capability", ErrInvalidOffer, o)
	}

	return nil
}

// NoAdapterNecessary is the factory used by RegisterProvides: the adaptee
// already behaves as the target capability and is returned as is.
func NoAdapterNecessary(adaptee any) (any, error) {
	return adaptee, nil
}

// Adapter can be embedded by adapter types to keep a reference to the
// value they wrap.
type Adapter struct {
	Adaptee any
}

// Adapted returns the wrapped value.
func (a Adapter) Adapted() any {
	return a.Adaptee
}
