// Package manifest loads adaptation manifests: YAML files that declare
// capabilities, provide relations and adaptation offers whose factories are
// looked up by name in a Catalog.
//
// A manifest is processed in three steps:
//   - Parse or LoadFile decodes it and fills defaults.
//   - Validate reports problems as diagnostics without touching any state.
//   - Apply declares the capabilities in a table and registers the offers
//     with a manager.
//
// Example:
//
//	version: "1"
//	packages: [adaptation-engine/examples/plugs]
//	offers:
//	  - from: adaptation-engine/examples/plugs.UKStandard
//	    to: adaptation-engine/examples/plugs.EUStandard
//	    factory: uk_to_eu
package manifest
