package manifest

import (
	"fmt"

	"adaptation-engine/adaptation"
	"adaptation-engine/capability"
)

// Apply validates f, declares its types in table and registers its offers
// and provide relations with mgr, which must answer conformance questions
// through table. Package patterns are not loaded here. It returns the
// registered offers in manifest order, offers before provides.
func Apply(f *File, table *capability.Table, mgr *adaptation.Manager, catalog *Catalog) ([]*adaptation.Offer, error) {
	if err := Validate(f, table, catalog).Error(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}

	order, err := declarationOrder(f.Types)
	if err != nil {
		return nil, fmt.Errorf("failed to order types: %w", err)
	}

	for _, i := range order {
		t := f.Types[i]
		c := Resolve(t.Name)

		if !table.IsDeclared(c) {
			if err := table.Declare(c, resolveAll(t.Parents)...); err != nil {
				return nil, fmt.Errorf("failed to declare %s: %w", t.Name, err)
			}
		}

		if len(t.Provides) > 0 {
			table.Provide(c, resolveAll(t.Provides)...)
		}
	}

	offers := make([]*adaptation.Offer, 0, len(f.Offers)+len(f.Provides))

	for i, o := range f.Offers {
		factory := adaptation.Lazy(o.Factory, catalog.Lookup)

		if o.Cache > 0 {
			cached, err := adaptation.Cached(factory, o.Cache)
			if err != nil {
				return offers, fmt.Errorf("offers[%d]: %w", i, err)
			}

			factory = cached.Adapt
		}

		offer := &adaptation.Offer{
			Name:    o.Factory,
			Factory: factory,
			From:    Resolve(o.From),
			To:      Resolve(o.To),
		}

		if err := mgr.RegisterOffer(offer); err != nil {
			return offers, fmt.Errorf("offers[%d]: %w", i, err)
		}

		offers = append(offers, offer)
	}

	for i, p := range f.Provides {
		offer, err := mgr.RegisterProvides(Resolve(p.From), Resolve(p.To))
		if err != nil {
			return offers, fmt.Errorf("provides[%d]: %w", i, err)
		}

		offers = append(offers, offer)
	}

	return offers, nil
}

func resolveAll(names []string) []capability.Capability {
	out := make([]capability.Capability, 0, len(names))
	for _, n := range names {
		out = append(out, Resolve(n))
	}

	return out
}
