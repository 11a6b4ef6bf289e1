package manifest

import (
	"adaptation-engine/capability"
	"adaptation-engine/internal/common"
)

// CurrentVersion is the only manifest version understood.
const CurrentVersion = "1"

// File is the root of an adaptation manifest.
type File struct {
	Version string `yaml:"version"`
	// Packages are Go package patterns whose types are declared before the
	// manifest entries.
	Packages []string      `yaml:"packages,omitempty"`
	Types    []TypeDecl    `yaml:"types,omitempty"`
	Offers   []OfferDecl   `yaml:"offers,omitempty"`
	Provides []ProvideDecl `yaml:"provides,omitempty"`
}

// TypeDecl declares a capability with its direct parents, most significant
// first, and the capabilities it provides.
type TypeDecl struct {
	Name     string   `yaml:"name"`
	Parents  []string `yaml:"parents,omitempty"`
	Provides []string `yaml:"provides,omitempty"`
}

// OfferDecl registers a named factory converting From into To.
type OfferDecl struct {
	From    string `yaml:"from"`
	To      string `yaml:"to"`
	Factory string `yaml:"factory"`
	// Cache keeps up to Cache adapters per adaptee when positive.
	Cache int `yaml:"cache,omitempty"`
}

// ProvideDecl registers From as already satisfying To. It behaves like an
// offer whose factory returns the adaptee unchanged.
type ProvideDecl struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Resolve turns a manifest name into a capability. Qualified names
// ("pkg/path.Name") keep their package path; bare names are unqualified.
func Resolve(name string) capability.Capability {
	return capability.New(common.SplitQualified(name))
}
