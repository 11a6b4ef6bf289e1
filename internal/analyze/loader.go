package analyze

import (
	"errors"
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"

	"adaptation-engine/capability"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedTypes |
	packages.NeedImports

// Analyzer loads Go packages and declares their types in a table.
type Analyzer struct {
	table    *capability.Table
	declared map[*types.Named]bool
	visiting map[*types.Named]bool
}

// NewAnalyzer creates an Analyzer writing into table.
func NewAnalyzer(table *capability.Table) *Analyzer {
	return &Analyzer{
		table:    table,
		declared: make(map[*types.Named]bool),
		visiting: make(map[*types.Named]bool),
	}
}

// LoadPackages loads the specified packages and declares their exported
// named types. Patterns are standard Go package patterns
// (e.g., "./examples/plugs", "adaptation-engine/examples/editors").
func (a *Analyzer) LoadPackages(patterns ...string) (*Summary, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	summary := &Summary{}

	var named []*types.Named
	for _, pkg := range pkgs {
		summary.Packages = append(summary.Packages, pkg.PkgPath)
		named = append(named, exportedNamed(pkg.Types)...)
	}

	for _, n := range named {
		if err := a.declare(n); err != nil {
			return nil, fmt.Errorf("failed to declare %s: %w", CapabilityOf(n), err)
		}

		if isInterface(n) {
			summary.Interfaces = append(summary.Interfaces, CapabilityOf(n))
		} else {
			summary.Types = append(summary.Types, CapabilityOf(n))
		}
	}

	summary.Provides = a.provide(named)

	return summary, nil
}

// exportedNamed returns the exported, non-generic named types of pkg in
// scope order.
func exportedNamed(pkg *types.Package) []*types.Named {
	var out []*types.Named

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		typeName, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		n, ok := typeName.Type().(*types.Named)
		if !ok || n.TypeParams().Len() > 0 {
			continue
		}

		out = append(out, n)
	}

	return out
}

// declare declares n after its embedded parents. A parent that is still
// being declared (mutual pointer embedding) is left out of n's parents.
func (a *Analyzer) declare(n *types.Named) error {
	if a.declared[n] || a.visiting[n] {
		return nil
	}

	a.visiting[n] = true
	defer delete(a.visiting, n)

	var parents []capability.Capability

	for _, p := range embeddedParents(n) {
		if a.visiting[p] {
			continue
		}

		if err := a.declare(p); err != nil {
			return err
		}

		parents = append(parents, CapabilityOf(p))
	}

	a.declared[n] = true

	c := CapabilityOf(n)
	if a.table.IsDeclared(c) {
		return nil
	}

	return a.table.Declare(c, parents...)
}

// embeddedParents returns the named types embedded in n, in field order.
func embeddedParents(n *types.Named) []*types.Named {
	var out []*types.Named

	switch ut := n.Underlying().(type) {
	case *types.Struct:
		for i := range ut.NumFields() {
			f := ut.Field(i)
			if !f.Embedded() {
				continue
			}

			t := f.Type()
			if p, ok := t.(*types.Pointer); ok {
				t = p.Elem()
			}

			if en, ok := t.(*types.Named); ok && en != n {
				if _, isStruct := en.Underlying().(*types.Struct); isStruct {
					out = append(out, en)
				}
			}
		}

	case *types.Interface:
		for i := range ut.NumEmbeddeds() {
			if en, ok := ut.EmbeddedType(i).(*types.Named); ok && en != n && isInterface(en) {
				out = append(out, en)
			}
		}
	}

	return out
}

// provide records every implemented interface among named. It returns the
// number of declarations made.
func (a *Analyzer) provide(named []*types.Named) int {
	var ifaces []*types.Named

	for _, n := range named {
		if iface, ok := n.Underlying().(*types.Interface); ok && iface.NumMethods() > 0 {
			ifaces = append(ifaces, n)
		}
	}

	count := 0

	for _, n := range named {
		var provided []capability.Capability

		for _, i := range ifaces {
			if i == n {
				continue
			}

			iface := i.Underlying().(*types.Interface)
			if types.Implements(n, iface) || (!isInterface(n) && types.Implements(types.NewPointer(n), iface)) {
				provided = append(provided, CapabilityOf(i))
			}
		}

		if len(provided) > 0 {
			a.table.Provide(CapabilityOf(n), provided...)
			count += len(provided)
		}
	}

	return count
}
