package adaptation

import (
	"fmt"
	"reflect"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedFactory memoizes the adapters created by a factory, one per
// adaptee. Adaptees whose value is not comparable are never cached.
type CachedFactory struct {
	factory Factory
	cache   *lru.Cache[any, any]
}

// Cached wraps factory so repeated adaptations of the same adaptee return
// the same adapter. At most size adapters are kept.
func Cached(factory Factory, size int) (*CachedFactory, error) {
	cache, err := lru.New[any, any](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create adapter cache: %w", err)
	}

	return &CachedFactory{factory: factory, cache: cache}, nil
}

// Adapt is the Factory of the cache.
func (c *CachedFactory) Adapt(adaptee any) (any, error) {
	// A comparable type can still hold an unhashable value in an interface
	// field, so check the dynamic value.
	if adaptee == nil || !reflect.ValueOf(adaptee).Comparable() {
		return c.factory(adaptee)
	}

	if adapter, ok := c.cache.Get(adaptee); ok {
		return adapter, nil
	}

	adapter, err := c.factory(adaptee)
	if err != nil || isNil(adapter) {
		return adapter, err
	}

	c.cache.Add(adaptee, adapter)

	return adapter, nil
}

// Len returns the number of cached adapters.
func (c *CachedFactory) Len() int {
	return c.cache.Len()
}

// Purge drops every cached adapter.
func (c *CachedFactory) Purge() {
	c.cache.Purge()
}

// Lookup resolves a factory by name.
type Lookup func(name string) (Factory, bool)

// Lazy returns a factory bound to name and resolved through lookup on its
// first call. An unresolvable name fails every call with ErrUnknownFactory.
func Lazy(name string, lookup Lookup) Factory {
	var (
		once    sync.Once
		factory Factory
		err     error
	)

	return func(adaptee any) (any, error) {
		once.Do(func() {
			f, ok := lookup(name)
			if !ok || f == nil {
				err = fmt.Errorf("%w: %q", ErrUnknownFactory, name)
				return
			}

			factory = f
		})

		if err != nil {
			return nil, err
		}

		return factory(adaptee)
	}
}
