package manifest

import (
	"fmt"
	"sort"
	"sync"

	"adaptation-engine/adaptation"
)

// Catalog maps factory names used by manifests to Go factories.
type Catalog struct {
	mu        sync.RWMutex
	factories map[string]adaptation.Factory
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{factories: make(map[string]adaptation.Factory)}
}

// Add registers factory under name. Names must be unique.
func (c *Catalog) Add(name string, factory adaptation.Factory) error {
	if name == "" || factory == nil {
		return fmt.Errorf("catalog entry %q: name and factory are required", name)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.factories[name]; ok {
		return fmt.Errorf("catalog entry %q already exists", name)
	}

	c.factories[name] = factory

	return nil
}

// MustAdd is Add for static catalogs; it panics on error.
func (c *Catalog) MustAdd(name string, factory adaptation.Factory) *Catalog {
	if err := c.Add(name, factory); err != nil {
		panic(err)
	}

	return c
}

// Lookup returns the factory registered under name. It satisfies
// adaptation.Lookup.
func (c *Catalog) Lookup(name string) (adaptation.Factory, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, ok := c.factories[name]

	return f, ok
}

// Names returns the registered names, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.factories))
	for name := range c.factories {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
