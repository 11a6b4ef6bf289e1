package manifest

import (
	"fmt"

	"adaptation-engine/capability"
	"adaptation-engine/internal/diagnostic"
	"adaptation-engine/internal/match"
)

const maxSuggestions = 3

// Validate checks f against the capabilities already known to table and the
// factories of catalog. It never modifies either. A nil table or catalog is
// treated as empty.
func Validate(f *File, table *capability.Table, catalog *Catalog) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError(diagnostic.CodeEmptyName, "manifest is nil", "", "")
		return res
	}

	if table == nil {
		table = capability.NewTable()
	}

	if catalog == nil {
		catalog = NewCatalog()
	}

	if f.Version != CurrentVersion {
		res.AddError(diagnostic.CodeUnsupportedVersion,
			fmt.Sprintf("unsupported manifest version %q (want %q)", f.Version, CurrentVersion), "", "version")
	}

	v := &validator{res: res, table: table, known: knownNames(f, table)}

	v.types(f.Types)

	for i, o := range f.Offers {
		subject := fmt.Sprintf("offers[%d]", i)
		if !v.pair(subject, o.From, o.To) {
			continue
		}

		if _, ok := catalog.Lookup(o.Factory); !ok {
			d := res.AddError(diagnostic.CodeUnknownFactory,
				fmt.Sprintf("unknown factory %q", o.Factory), subject, "factory")
			d.Suggestions = match.Names(match.Suggest(o.Factory, catalog.Names(), maxSuggestions, match.DefaultThreshold))
		}

		if o.Cache < 0 {
			res.AddError(diagnostic.CodeEmptyName, "cache size must not be negative", subject, "cache")
		}

		for j := range i {
			prev := f.Offers[j]
			if prev.From == o.From && prev.To == o.To && prev.Factory == o.Factory {
				res.AddWarning(diagnostic.CodeDuplicateOffer,
					fmt.Sprintf("same offer as offers[%d]", j), subject, "")

				break
			}
		}
	}

	for i, p := range f.Provides {
		v.pair(fmt.Sprintf("provides[%d]", i), p.From, p.To)
	}

	return res
}

type validator struct {
	res   *diagnostic.Diagnostics
	table *capability.Table
	known []string
}

func (v *validator) types(types []TypeDecl) {
	seen := make(map[string]int, len(types))

	for i, t := range types {
		subject := fmt.Sprintf("types[%d]", i)

		if t.Name == "" {
			v.res.AddError(diagnostic.CodeEmptyName, "type name is required", subject, "name")
			continue
		}

		if j, dup := seen[t.Name]; dup {
			v.res.AddError(diagnostic.CodeDuplicateType,
				fmt.Sprintf("type %q already declared in types[%d]", t.Name, j), subject, "name")

			continue
		}

		seen[t.Name] = i

		if len(t.Parents) > 0 && v.table.IsDeclared(Resolve(t.Name)) {
			v.res.AddError(diagnostic.CodeDuplicateType,
				fmt.Sprintf("type %q is already declared with its parents", t.Name), subject, "parents")
		}

		for _, p := range t.Parents {
			v.capability(subject, "parents", p)
		}

		for _, p := range t.Provides {
			v.capability(subject, "provides", p)
		}
	}

	if order, err := declarationOrder(types); err != nil {
		placed := make(map[int]bool, len(order))
		for _, i := range order {
			placed[i] = true
		}

		for i, t := range types {
			if !placed[i] {
				v.res.AddError(diagnostic.CodeCyclicParents,
					fmt.Sprintf("type %q is part of a parent cycle", t.Name), fmt.Sprintf("types[%d]", i), "parents")
			}
		}
	}
}

// pair checks the endpoints of an offer or provide entry. It returns false
// when the entry cannot be used at all.
func (v *validator) pair(subject, from, to string) bool {
	if from == "" || to == "" {
		v.res.AddError(diagnostic.CodeEmptyName, "from and to are required", subject, "")
		return false
	}

	if from == to {
		v.res.AddError(diagnostic.CodeSelfOffer,
			fmt.Sprintf("%q is adapted to itself", from), subject, "to")

		return false
	}

	v.capability(subject, "from", from)
	v.capability(subject, "to", to)

	if v.table.Satisfies(Resolve(from), Resolve(to)) {
		v.res.AddWarning(diagnostic.CodeRedundantOffer,
			fmt.Sprintf("%q already satisfies %q", from, to), subject, "")
	}

	return true
}

// capability warns about names neither declared by the manifest nor known
// to the table. Undeclared capabilities are legal roots, so this is only a
// warning.
func (v *validator) capability(subject, field, name string) {
	if name == "" {
		v.res.AddError(diagnostic.CodeEmptyName, "capability name is required", subject, field)
		return
	}

	for _, k := range v.known {
		if k == name {
			return
		}
	}

	d := v.res.AddWarning(diagnostic.CodeUnknownCapability,
		fmt.Sprintf("capability %q is not declared", name), subject, field)
	d.Suggestions = match.Names(match.Suggest(name, v.known, maxSuggestions, match.DefaultThreshold))
}

// knownNames returns the keys of every capability of table followed by the
// names declared in f, without duplicates.
func knownNames(f *File, table *capability.Table) []string {
	var names []string

	seen := make(map[string]bool)
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	for _, c := range table.Capabilities() {
		add(c.Key())
	}

	for _, t := range f.Types {
		add(t.Name)
	}

	return names
}
