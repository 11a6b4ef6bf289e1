package adaptation

import (
	"errors"
	"reflect"
)

// materialize applies the factories of chain in order, starting from
// adaptee. It reports false as soon as one factory declines.
func materialize(adaptee any, chain []*Offer) (any, bool, error) {
	adapter := adaptee

	for _, offer := range chain {
		out, err := offer.Factory(adapter)
		if errors.Is(err, ErrDeclined) {
			return nil, false, nil
		}

		if err != nil {
			return nil, false, &FactoryError{Offer: offer, Err: err}
		}

		if isNil(out) {
			return nil, false, nil
		}

		adapter = out
	}

	return adapter, true, nil
}

// isNil reports whether v is nil or a typed nil.
func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
