package reflectutils

import (
	"reflect"
	"strings"

	"github.com/a-peyrard/jscollections/fn"
)

// FieldTag is the struct tag used to rename (or skip with "-") a field exposed as a named key.
const FieldTag = "js"

// Field is an exported struct field, read through Fields.
type Field struct {
	Name  string
	Value any
}

// WalkStruct applies a tri-consumer on all fields and nested fields of a given object.
// The consumer receives the value, its static type and the path of field names leading to it.
func WalkStruct[T any](element T, consumer fn.TriConsumer[reflect.Value, reflect.Type, []string]) {
	walkStructInternal(reflect.ValueOf(element), []string{}, consumer)
}

func walkStructInternal(val reflect.Value, path []string, consumer fn.TriConsumer[reflect.Value, reflect.Type, []string]) {
	// apply the consumer
	consumer(val, val.Type(), path)

	val = Deref(val)
	if !val.IsValid() || val.Kind() != reflect.Struct {
		return
	}

	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		structField := typ.Field(i)
		if !structField.IsExported() {
			continue
		}
		walkStructInternal(val.Field(i), append(path, structField.Name), consumer)
	}
}

// Deref dereferences recursively a reflect.Value until it reaches a non-pointer or non-interface value
func Deref(value reflect.Value) reflect.Value {
	if value.Kind() == reflect.Ptr || value.Kind() == reflect.Interface {
		return Deref(value.Elem())
	}
	return value
}

// CreateNilStructs creates new struct instances for nil struct pointers
func CreateNilStructs(val reflect.Value, typ reflect.Type, _ []string) {
	if typ.Kind() == reflect.Pointer &&
		val.IsNil() &&
		typ.Elem().Kind() == reflect.Struct {

		val.Set(reflect.New(typ.Elem()))
	}
}

// IsStruct reports whether the element is a struct, or a non nil pointer chain to a struct.
func IsStruct(element any) bool {
	return Deref(reflect.ValueOf(element)).Kind() == reflect.Struct
}

// Fields returns the exported fields of a struct in declaration order.
//
// Embedded structs are not flattened, they are returned as a single field. A `js:"name"` tag
// renames the field, `js:"-"` hides it. Anything but a struct gives no field.
func Fields(element any) []Field {
	val := Deref(reflect.ValueOf(element))
	if val.Kind() != reflect.Struct {
		return nil
	}

	typ := val.Type()
	fields := make([]Field, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		structField := typ.Field(i)
		if !structField.IsExported() {
			continue
		}
		name := structField.Name
		if tag, ok := structField.Tag.Lookup(FieldTag); ok {
			tag, _, _ = strings.Cut(tag, ",")
			if tag == "-" {
				continue
			}
			if tag != "" {
				name = tag
			}
		}
		fields = append(fields, Field{Name: name, Value: val.Field(i).Interface()})
	}
	return fields
}
