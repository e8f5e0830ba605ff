// Package value holds the comparison rules applied to the elements stored in the containers.
package value

import (
	"reflect"
	"unsafe"
)

// Equal reports whether x and y are strictly equal: same dynamic type and same value, without
// any coercion (1, int64(1), 1.0 and "1" are four different values).
//
// Slices, arrays and maps are values and are compared element by element. Pointers, channels
// and funcs are compared by identity. Other comparable values use ==, and what is left
// (structs holding slices or maps) falls back to a deep comparison.
//
// Two funcs are the same func when they are the same closure object: two closures built from
// the same literal but capturing their own variables are different.
//
// Self referencing slices or maps are not supported, comparing them never returns.
func Equal(x, y any) bool {
	switch x := x.(type) {
	case nil:
		return y == nil
	case bool:
		yy, ok := y.(bool)
		return ok && x == yy
	case int:
		yy, ok := y.(int)
		return ok && x == yy
	case float64:
		yy, ok := y.(float64)
		return ok && x == yy
	case string:
		yy, ok := y.(string)
		return ok && x == yy
	}

	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	if !vy.IsValid() || vx.Type() != vy.Type() {
		return false
	}
	return equalValues(vx, vy)
}

func equalValues(vx, vy reflect.Value) bool {
	switch vx.Kind() {
	case reflect.Slice, reflect.Array:
		return equalSequences(vx, vy)
	case reflect.Map:
		if vx.Len() != vy.Len() {
			return false
		}
		iter := vx.MapRange()
		for iter.Next() {
			other := vy.MapIndex(iter.Key())
			if !other.IsValid() || !Equal(iter.Value().Interface(), other.Interface()) {
				return false
			}
		}
		return true
	case reflect.Func:
		return closureOf(vx) == closureOf(vy)
	}

	if vx.Comparable() && vy.Comparable() {
		return vx.Equal(vy)
	}
	return reflect.DeepEqual(vx.Interface(), vy.Interface())
}

// closureOf returns the closure object of a func, the data word of the func boxed in an
// interface. reflect.Value.Pointer only gives the code pointer, shared by every closure of a
// literal.
func closureOf(v reflect.Value) unsafe.Pointer {
	boxed := v.Interface()
	return (*[2]unsafe.Pointer)(unsafe.Pointer(&boxed))[1]
}

func equalSequences(vx, vy reflect.Value) bool {
	if vx.Len() != vy.Len() {
		return false
	}
	for i := 0; i < vx.Len(); i++ {
		if !Equal(vx.Index(i).Interface(), vy.Index(i).Interface()) {
			return false
		}
	}
	return true
}

// Truthy reports whether v would pass a loose boolean test: nil, false, numeric zeros, the
// strings "" and "0", and empty slices, arrays and maps are falsy, everything else is truthy.
func Truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "0"
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Chan, reflect.Func:
		return !rv.IsNil()
	case reflect.String:
		return rv.String() != "" && rv.String() != "0"
	case reflect.Bool:
		return rv.Bool()
	}
	return true
}
