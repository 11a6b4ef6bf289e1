// Package analyze populates a capability table from Go source.
//
// It uses golang.org/x/tools/go/packages with go/types to discover the
// conformance of every exported named type in the loaded packages:
//   - Embedded named structs become parents of a struct type.
//   - Embedded named interfaces become parents of an interface type.
//   - A type provides every loaded interface that T or *T implements.
//
// Generic types and method-less interfaces are skipped.
package analyze
