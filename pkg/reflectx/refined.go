package reflectx

import (
	"reflect"
)

// Is reports whether t is exactly the type R. Named types are distinct from
// their underlying type.
func Is[R any](t reflect.Type) bool {
	return reflect.TypeFor[R]() == t
}

// Implements reports whether t, or a pointer to t, implements the interface I.
func Implements[I any](t reflect.Type) bool {
	if t == nil {
		return false
	}
	iface := reflect.TypeFor[I]()
	if iface.Kind() != reflect.Interface {
		return false
	}
	return t.Implements(iface) || (t.Kind() != reflect.Pointer && reflect.PointerTo(t).Implements(iface))
}

// Indirect strips pointer indirections from t and reports whether there were any.
func Indirect(t reflect.Type) (reflect.Type, bool) {
	ptr := false
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
		ptr = true
	}
	return t, ptr
}
