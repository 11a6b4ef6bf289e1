package capability

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultDistanceCacheSize bounds the number of memoized distances.
const DefaultDistanceCacheSize = 4096

// ErrAlreadyDeclared is returned when a capability is declared twice.
var ErrAlreadyDeclared = errors.New("capability already declared")

// Model answers the conformance questions the chain search needs.
type Model interface {
	// Satisfies reports whether t is c or is declared to implement c.
	Satisfies(t, c Capability) bool
	// Distance returns the specificity distance from t to c, and false
	// when t does not satisfy c.
	Distance(t, c Capability) (int, bool)
	// Rank orders capabilities by specificity: a strict sub-capability
	// always ranks higher than the capabilities it satisfies.
	Rank(c Capability) int
}

type distanceKey struct {
	from, to Capability
}

// Table is an explicit conformance table. It is safe for concurrent use.
type Table struct {
	mu       sync.RWMutex
	parents  map[Capability][]Capability
	chains   map[Capability][]Capability // ancestor chains, nearest first
	provides map[Capability][]Capability

	cacheMu   sync.Mutex
	closures  map[Capability]map[Capability]struct{}
	distances *lru.Cache[distanceKey, int]
}

// Ensure Table implements Model at compile time.
var _ Model = (*Table)(nil)

// NewTable creates an empty Table with the default distance cache size.
func NewTable() *Table {
	t, _ := NewTableSize(DefaultDistanceCacheSize)
	return t
}

// NewTableSize creates an empty Table whose distance cache holds at most
// size entries.
func NewTableSize(size int) (*Table, error) {
	cache, err := lru.New[distanceKey, int](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create distance cache: %w", err)
	}

	return &Table{
		parents:   make(map[Capability][]Capability),
		chains:    make(map[Capability][]Capability),
		provides:  make(map[Capability][]Capability),
		closures:  make(map[Capability]map[Capability]struct{}),
		distances: cache,
	}, nil
}

// Declare records c with its direct parents, most significant first, and
// computes its ancestor chain. Parents that were never declared are treated
// as roots.
func (t *Table) Declare(c Capability, parents ...Capability) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.parents[c]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyDeclared, c)
	}

	chain, err := linearize(c, parents, func(p Capability) []Capability { return t.chains[p] })
	if err != nil {
		return err
	}

	t.parents[c] = append([]Capability(nil), parents...)
	t.chains[c] = chain
	t.invalidate()

	return nil
}

// Provide records that c implements each of provided. Descendants of c
// inherit the declaration.
func (t *Table) Provide(c Capability, provided ...Capability) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, p := range provided {
		if p == c || contains(t.provides[c], p) {
			continue
		}

		t.provides[c] = append(t.provides[c], p)
	}

	t.invalidate()
}

// IsDeclared reports whether c was passed to Declare.
func (t *Table) IsDeclared(c Capability) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.parents[c]

	return ok
}

// Parents returns the direct parents of c.
func (t *Table) Parents(c Capability) []Capability {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return append([]Capability(nil), t.parents[c]...)
}

// Ancestors returns the ancestor chain of c, nearest first, c excluded.
func (t *Table) Ancestors(c Capability) []Capability {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return append([]Capability(nil), t.chains[c]...)
}

// Provided returns the capabilities c was directly declared to implement.
func (t *Table) Provided(c Capability) []Capability {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return append([]Capability(nil), t.provides[c]...)
}

// Capabilities returns every capability known to the table, sorted by key.
func (t *Table) Capabilities() []Capability {
	t.mu.RLock()
	defer t.mu.RUnlock()

	seen := make(map[Capability]struct{})
	for c, ps := range t.parents {
		seen[c] = struct{}{}
		for _, p := range ps {
			seen[p] = struct{}{}
		}
	}

	for c, ps := range t.provides {
		seen[c] = struct{}{}
		for _, p := range ps {
			seen[p] = struct{}{}
		}
	}

	out := make([]Capability, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool {
		if ki, kj := out[i].Key(), out[j].Key(); ki != kj {
			return ki < kj
		}

		return out[i].PkgPath < out[j].PkgPath
	})

	return out
}

// Satisfies reports whether t is c itself or reaches c through its
// ancestors and provide declarations.
func (t *Table) Satisfies(typ, c Capability) bool {
	if typ == c {
		return true
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.closure(typ)[c]

	return ok
}

// Distance walks the ancestor chain of typ and counts the consecutive
// ancestors that still satisfy c. It returns false if typ does not satisfy
// c at all.
func (t *Table) Distance(typ, c Capability) (int, bool) {
	key := distanceKey{from: typ, to: c}

	t.mu.RLock()
	defer t.mu.RUnlock()

	if d, ok := t.distances.Get(key); ok {
		return d, d >= 0
	}

	d := -1

	if _, ok := t.closure(typ)[c]; ok {
		d = 0

		for _, a := range t.chains[typ] {
			if _, ok := t.closure(a)[c]; !ok {
				break
			}

			d++
		}
	}

	t.distances.Add(key, d)

	return d, d >= 0
}

// Rank returns the number of distinct capabilities c satisfies besides
// itself.
func (t *Table) Rank(c Capability) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.closure(c)) - 1
}

// closure returns every capability reachable from c, c included.
// Callers hold t.mu for reading.
func (t *Table) closure(c Capability) map[Capability]struct{} {
	t.cacheMu.Lock()
	defer t.cacheMu.Unlock()

	if cl, ok := t.closures[c]; ok {
		return cl
	}

	cl := map[Capability]struct{}{c: {}}
	stack := []Capability{c}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// A capability satisfies everything its ancestors provide.
		next := append([]Capability(nil), t.chains[cur]...)
		next = append(next, t.provides[cur]...)

		for _, a := range t.chains[cur] {
			next = append(next, t.provides[a]...)
		}

		for _, n := range next {
			if _, seen := cl[n]; seen {
				continue
			}

			cl[n] = struct{}{}
			stack = append(stack, n)
		}
	}

	t.closures[c] = cl

	return cl
}

// invalidate drops memoized answers. Callers hold t.mu for writing.
func (t *Table) invalidate() {
	t.cacheMu.Lock()
	defer t.cacheMu.Unlock()

	t.closures = make(map[Capability]map[Capability]struct{})
	t.distances.Purge()
}

func contains(cs []Capability, c Capability) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}

	return false
}
