package capability

import (
	"errors"
	"reflect"
)

// DeclareReflect declares the Go type typ using reflection once, at
// registration time. For struct types, embedded struct fields (in field
// order) become parents and are declared first. Each interface in ifaces
// that typ or *typ implements is recorded as provided.
//
// Re-declaring a type that is already in the table is not an error; its
// provide declarations are still refreshed against ifaces.
func (t *Table) DeclareReflect(typ reflect.Type, ifaces ...reflect.Type) error {
	return t.declareReflect(typ, ifaces, make(map[reflect.Type]bool))
}

func (t *Table) declareReflect(typ reflect.Type, ifaces []reflect.Type, visiting map[reflect.Type]bool) error {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	if visiting[typ] {
		return nil
	}

	visiting[typ] = true

	c := FromType(typ)

	if !t.IsDeclared(c) {
		parents, err := t.declareEmbedded(typ, ifaces, visiting)
		if err != nil {
			return err
		}

		if err := t.Declare(c, parents...); err != nil && !errors.Is(err, ErrAlreadyDeclared) {
			return err
		}
	}

	var provided []Capability

	for _, iface := range ifaces {
		if iface == nil || iface.Kind() != reflect.Interface || iface == typ {
			continue
		}

		if typ.Implements(iface) || reflect.PointerTo(typ).Implements(iface) {
			provided = append(provided, FromType(iface))
		}
	}

	if len(provided) > 0 {
		t.Provide(c, provided...)
	}

	return nil
}

func (t *Table) declareEmbedded(typ reflect.Type, ifaces []reflect.Type, visiting map[reflect.Type]bool) ([]Capability, error) {
	if typ.Kind() != reflect.Struct {
		return nil, nil
	}

	var parents []Capability

	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.Anonymous {
			continue
		}

		ft := f.Type
		for ft.Kind() == reflect.Pointer {
			ft = ft.Elem()
		}

		if ft.Kind() != reflect.Struct || ft.Name() == "" || visiting[ft] {
			continue
		}

		if err := t.declareReflect(ft, ifaces, visiting); err != nil {
			return nil, err
		}

		parents = append(parents, FromType(ft))
	}

	return parents, nil
}
