package adaptation

import (
	"sync/atomic"

	"adaptation-engine/capability"
)

var defaultManager atomic.Pointer[Manager]

func init() {
	ResetDefault()
}

// Default returns the process-wide Manager used by the package-level
// functions. Prefer passing an explicit Manager where possible.
func Default() *Manager {
	return defaultManager.Load()
}

// SetDefault replaces the process-wide Manager.
func SetDefault(m *Manager) {
	if m == nil {
		m = New()
	}

	defaultManager.Store(m)
}

// ResetDefault replaces the process-wide Manager with a new empty one.
func ResetDefault() {
	defaultManager.Store(New())
}

// Adapt calls Adapt on the default Manager.
func Adapt(adaptee any, to capability.Capability) (any, error) {
	return Default().Adapt(adaptee, to)
}

// AdaptOr calls AdaptOr on the default Manager.
func AdaptOr(adaptee any, to capability.Capability, def any) (any, error) {
	return Default().AdaptOr(adaptee, to, def)
}

// Supports calls Supports on the default Manager.
func Supports(obj any, to capability.Capability) bool {
	return Default().Supports(obj, to)
}

// RegisterOffer calls RegisterOffer on the default Manager.
func RegisterOffer(offer *Offer) error {
	return Default().RegisterOffer(offer)
}

// RegisterFactory calls RegisterFactory on the default Manager.
func RegisterFactory(factory Factory, from, to capability.Capability) (*Offer, error) {
	return Default().RegisterFactory(factory, from, to)
}

// RegisterProvides calls RegisterProvides on the default Manager.
func RegisterProvides(provider, to capability.Capability) (*Offer, error) {
	return Default().RegisterProvides(provider, to)
}
