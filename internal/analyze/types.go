package analyze

import (
	"go/types"

	"adaptation-engine/capability"
)

// Summary describes what a load contributed to the table.
type Summary struct {
	// Packages lists loaded package paths in load order.
	Packages []string
	// Types lists the declared non-interface types.
	Types []capability.Capability
	// Interfaces lists the declared interface types.
	Interfaces []capability.Capability
	// Provides counts the provide declarations recorded.
	Provides int
}

// CapabilityOf returns the capability naming a go/types named type.
// It agrees with capability.FromType for the same Go type.
func CapabilityOf(named *types.Named) capability.Capability {
	obj := named.Obj()
	if obj.Pkg() == nil {
		return capability.Named(obj.Name())
	}

	return capability.New(obj.Pkg().Path(), obj.Name())
}

// isInterface reports whether named has an interface underlying type.
func isInterface(named *types.Named) bool {
	_, ok := named.Underlying().(*types.Interface)
	return ok
}
