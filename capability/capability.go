package capability

import "reflect"

// Capability identifies a protocol by its package path and name.
// Two capabilities are the same capability iff they are ==.
type Capability struct {
	PkgPath string // e.g., "adaptation-engine/examples/plugs"
	Name    string // e.g., "UKStandard"
}

// Named returns a capability without a package path.
func Named(name string) Capability {
	return Capability{Name: name}
}

// New returns a capability qualified by a package path.
func New(pkgPath, name string) Capability {
	return Capability{PkgPath: pkgPath, Name: name}
}

// Key returns the textual form "pkg/path.Name", or Name when unqualified.
// It is not unique: Named("p.X") and New("p", "X") share a key, so
// index by the Capability itself.
func (c Capability) Key() string {
	if c.PkgPath == "" {
		return c.Name
	}

	return c.PkgPath + "." + c.Name
}

// String returns a human-readable representation of the Capability.
func (c Capability) String() string {
	return c.Key()
}

// IsZero reports whether c is the zero Capability.
func (c Capability) IsZero() bool {
	return c.PkgPath == "" && c.Name == ""
}

// Provider is implemented by values that report their own capability
// instead of having it derived from their Go type.
type Provider interface {
	Capability() Capability
}

// Of returns the runtime capability of v.
func Of(v any) Capability {
	if v == nil {
		return Capability{}
	}

	if p, ok := v.(Provider); ok {
		return p.Capability()
	}

	return FromType(reflect.TypeOf(v))
}

// FromType returns the capability naming a Go type. Pointers are stripped,
// so *T and T share a capability. Unnamed types use their type literal.
func FromType(t reflect.Type) Capability {
	if t == nil {
		return Capability{}
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t.Name() == "" {
		return Capability{Name: t.String()}
	}

	return Capability{PkgPath: t.PkgPath(), Name: t.Name()}
}

// TypeFor returns the capability naming the type parameter T.
func TypeFor[T any]() Capability {
	return FromType(reflect.TypeFor[T]())
}
