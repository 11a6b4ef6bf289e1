// Package main provides the CLI entrypoint for adaptation-engine.
//
// adaptation-engine works on adaptation manifests:
//   - check validates a manifest against its Go packages and factories
//   - plan shows the adapter chain chosen between two capabilities
//   - capabilities lists the declared capabilities with their ancestors
package main

import (
	"os"

	"adaptation-engine/adaptation"
	"adaptation-engine/examples/editors"
	"adaptation-engine/examples/plugs"
	"adaptation-engine/internal/cmd"
	"adaptation-engine/internal/manifest"
)

func main() {
	catalog := manifest.NewCatalog()

	for _, factories := range []map[string]adaptation.Factory{plugs.Factories(), editors.Factories()} {
		for name, factory := range factories {
			catalog.MustAdd(name, factory)
		}
	}

	if err := cmd.Execute(catalog); err != nil {
		os.Exit(1)
	}
}
