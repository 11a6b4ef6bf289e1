package adaptation

import (
	"sync"
	"sync/atomic"

	"adaptation-engine/capability"
)

// entry is a registered offer together with its registration sequence.
type entry struct {
	offer *Offer
	seq   int
}

// snapshot is an immutable view of a Registry.
type snapshot struct {
	froms  []capability.Capability
	offers map[capability.Capability][]entry
}

// Registry stores adaptation offers indexed by the capability they adapt
// from. Reads are lock-free: every mutation publishes a new
// immutable snapshot, so a search always sees one consistent state.
type Registry struct {
	mu      sync.Mutex // serializes writers
	nextSeq int
	current atomic.Pointer[snapshot]
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	r := &Registry{}
	r.current.Store(&snapshot{offers: make(map[capability.Capability][]entry)})

	return r
}

// Register appends offer under offer.From. Registration order is kept and
// used as the final tie-breaker during search.
func (r *Registry) Register(offer *Offer) error {
	if err := offer.validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.current.Load()
	key := offer.From

	next := &snapshot{
		froms:  old.froms,
		offers: make(map[capability.Capability][]entry, len(old.offers)+1),
	}
	for k, v := range old.offers {
		next.offers[k] = v
	}

	if _, ok := old.offers[key]; !ok {
		next.froms = append(append([]capability.Capability(nil), old.froms...), offer.From)
	}

	list := make([]entry, len(old.offers[key]), len(old.offers[key])+1)
	copy(list, old.offers[key])
	next.offers[key] = append(list, entry{offer: offer, seq: r.nextSeq})
	r.nextSeq++

	r.current.Store(next)

	return nil
}

// Unregister removes every registration of offer. It reports whether the
// offer was registered.
func (r *Registry) Unregister(offer *Offer) bool {
	if offer == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	old := r.current.Load()
	key := offer.From

	var kept []entry

	for _, e := range old.offers[key] {
		if e.offer != offer {
			kept = append(kept, e)
		}
	}

	if len(kept) == len(old.offers[key]) {
		return false
	}

	next := &snapshot{offers: make(map[capability.Capability][]entry, len(old.offers))}
	for k, v := range old.offers {
		next.offers[k] = v
	}

	if len(kept) > 0 {
		next.offers[key] = kept
		next.froms = old.froms
	} else {
		delete(next.offers, key)

		for _, c := range old.froms {
			if c != key {
				next.froms = append(next.froms, c)
			}
		}
	}

	r.current.Store(next)

	return true
}

// OffersFrom returns the offers registered under c, in registration order.
func (r *Registry) OffersFrom(c capability.Capability) []*Offer {
	entries := r.current.Load().offers[c]

	out := make([]*Offer, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.offer)
	}

	return out
}

// FromCapabilities returns the distinct source capabilities of all
// registered offers, in first-registration order.
func (r *Registry) FromCapabilities() []capability.Capability {
	return append([]capability.Capability(nil), r.current.Load().froms...)
}

// Offers returns every registered offer in registration order.
func (r *Registry) Offers() []*Offer {
	snap := r.current.Load()

	var all []entry
	for _, c := range snap.froms {
		all = append(all, snap.offers[c]...)
	}

	sortEntries(all)

	out := make([]*Offer, 0, len(all))
	for _, e := range all {
		out = append(out, e.offer)
	}

	return out
}

// Len returns the number of registered offers.
func (r *Registry) Len() int {
	n := 0
	for _, v := range r.current.Load().offers {
		n += len(v)
	}

	return n
}

func (r *Registry) snapshot() *snapshot {
	return r.current.Load()
}
