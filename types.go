package spawnpool

import "reflect"

// isNil reports whether object is an untyped nil or a typed nil
// pointer, map, slice, channel, function or interface.
func isNil(object any) bool {
	if object == nil {
		return true
	}

	v := reflect.ValueOf(object)

	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}

// compatible reports whether an entry tagged with have can be handed out
// for a request of want: same type, or want is an interface that have implements.
func compatible(have, want reflect.Type) bool {
	if have == want {
		return true
	}

	return want.Kind() == reflect.Interface && have.Implements(want)
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
