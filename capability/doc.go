// Package capability provides the capability model used by adaptation.
//
// A Capability identifies a contract (an interface, a concrete type, or a
// purely nominal protocol such as "UKStandard") that a value can satisfy.
// Conformance is never probed at query time: it is declared up front in a
// Table, either explicitly or through the reflect bridge, and queried by
// identity afterwards.
//
// Key operations:
//   - Satisfies: does type T satisfy capability C?
//   - Distance: how many steps up T's ancestor chain is C still satisfied?
//   - Rank: how specific is a capability (used for deterministic ordering)?
package capability
