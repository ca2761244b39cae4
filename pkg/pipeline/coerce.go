package pipeline

import (
	"reflect"
)

// Coerce normalises a step result into an Awaitable.
// Values implementing Awaitable are returned as is. Anything else is wrapped in an
// already resolved future, typed nil pointers included.
func Coerce(v any) Awaitable {
	if isNil(v) {
		return Resolve(v)
	}

	if aw, ok := v.(Awaitable); ok {
		return aw
	}

	return Resolve(v)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
