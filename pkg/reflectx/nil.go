package reflectx

import "reflect"

// IsNil reports whether a value is nil for any type where nil is
// meaningful. It handles untyped nil, nil interfaces, and typed nil
// pointers, maps, slices, channels and funcs; non-nilable values are never
// nil. This matters when a typed nil pointer is boxed into an interface:
// a plain == nil comparison reports false for it.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	val := reflect.ValueOf(v)

	switch val.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return val.IsNil()
	}

	return false
}
