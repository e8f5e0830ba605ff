// Package normalize turns the inputs accepted by the containers constructors into an ordered
// list of entries.
package normalize

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/a-peyrard/jscollections/heap"
	"github.com/a-peyrard/jscollections/ordered"
	"github.com/a-peyrard/jscollections/reflectutils"
	"github.com/emirpasic/gods/containers"
	"github.com/emirpasic/gods/maps"
)

// Entry is a normalized key/value pair.
type Entry = ordered.Entry[ordered.Key, any]

// Traversable is a finite producer of keyed values, drained eagerly by the normalizer. Every
// call to All must restart the production from the beginning.
type Traversable interface {
	All() iter.Seq2[any, any]
}

// Shape tells how an input was understood.
type Shape int

const (
	Absent Shape = iota
	Sequence
	Mapping
	Object
	Iterable
	Scalar
)

func (s Shape) String() string {
	switch s {
	case Absent:
		return "absent"
	case Sequence:
		return "sequence"
	case Mapping:
		return "mapping"
	case Object:
		return "object"
	case Iterable:
		return "iterable"
	default:
		return "scalar"
	}
}

// Entries normalizes the input into ordered entries, see EntriesWithShape.
func Entries(input any) []Entry {
	entries, _ := EntriesWithShape(input)
	return entries
}

// Values normalizes the input and keeps only the values, in order.
func Values(input any) []any {
	entries := Entries(input)
	values := make([]any, len(entries))
	for i, e := range entries {
		values[i] = e.Value
	}
	return values
}

// EntriesWithShape normalizes the input into ordered entries:
//
//   - nil gives no entry
//   - explicit entries ([]Entry) are kept in order
//   - slices and arrays give positional keys 0..n-1, nested sequences are not flattened
//   - Go maps give their coerced keys, positions ascending first and then names, since a Go
//     map has no order of its own
//   - structs (and pointers to structs) give their exported fields in declaration order
//   - iter.Seq, iter.Seq2 (of any element types), Traversable and gods containers are drained
//     in production order
//   - anything else, strings included, is a single value under the key 0
//
// Keys are unique in the result: a repeated key overwrites the value in place.
func EntriesWithShape(input any) ([]Entry, Shape) {
	switch in := input.(type) {
	case nil:
		return []Entry{}, Absent
	case string:
		return single(in), Scalar
	case []Entry:
		return ordered.NewStoreFrom(in).Entries(), Mapping
	case Traversable:
		return drainKeyed(in.All()), Iterable
	case iter.Seq2[any, any]:
		return drainKeyed(in), Iterable
	case func(func(any, any) bool):
		return drainKeyed(in), Iterable
	case iter.Seq[any]:
		return drain(in), Iterable
	case func(func(any) bool):
		return drain(in), Iterable
	case maps.Map:
		return fromGodsMap(in), Iterable
	case containers.Container:
		return positional(in.Values()), Iterable
	}

	val := reflect.ValueOf(input)
	switch val.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, val.Len())
		for i := range items {
			items[i] = val.Index(i).Interface()
		}
		return positional(items), Sequence
	case reflect.Map:
		return fromMap(val), Mapping
	case reflect.Func:
		if entries, ok := drainFunc(val); ok {
			return entries, Iterable
		}
	}

	if reflectutils.IsStruct(input) {
		fields := reflectutils.Fields(input)
		entries := make([]Entry, 0, len(fields))
		for _, f := range fields {
			entries = append(entries, Entry{Key: ordered.Name(f.Name), Value: f.Value})
		}
		return ordered.NewStoreFrom(entries).Entries(), Object
	}

	return single(input), Scalar
}

func single(value any) []Entry {
	return []Entry{{Key: ordered.Index(0), Value: value}}
}

func positional(items []any) []Entry {
	entries := make([]Entry, len(items))
	for i, item := range items {
		entries[i] = Entry{Key: ordered.Index(i), Value: item}
	}
	return entries
}

func drain(seq iter.Seq[any]) []Entry {
	var items []any
	for item := range seq {
		items = append(items, item)
	}
	return positional(items)
}

// drainKeyed keeps the produced keys, a key that cannot be coerced takes the next free position.
func drainKeyed(seq iter.Seq2[any, any]) []Entry {
	store := ordered.NewStore[ordered.Key, any]()
	next := 0
	for rawKey, v := range seq {
		key, ok := ordered.KeyOf(rawKey)
		if !ok {
			key = ordered.Index(next)
		}
		if i, isIndex := key.Index(); isIndex && i >= next {
			next = i + 1
		}
		store.Put(key, v)
	}
	return store.Entries()
}

var boolType = reflect.TypeFor[bool]()

// drainFunc drains a typed iterator, func(func(V) bool) or func(func(K, V) bool), through
// reflection. It reports false for any other func.
func drainFunc(val reflect.Value) ([]Entry, bool) {
	t := val.Type()
	if t.NumIn() != 1 || t.NumOut() != 0 || t.IsVariadic() {
		return nil, false
	}
	yieldType := t.In(0)
	if yieldType.Kind() != reflect.Func || yieldType.IsVariadic() ||
		yieldType.NumOut() != 1 || yieldType.Out(0) != boolType {
		return nil, false
	}
	if val.IsNil() {
		return []Entry{}, true
	}

	switch yieldType.NumIn() {
	case 1:
		return drain(func(yield func(any) bool) {
			val.Call([]reflect.Value{reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
				return []reflect.Value{reflect.ValueOf(yield(args[0].Interface()))}
			})})
		}), true
	case 2:
		return drainKeyed(func(yield func(any, any) bool) {
			val.Call([]reflect.Value{reflect.MakeFunc(yieldType, func(args []reflect.Value) []reflect.Value {
				return []reflect.Value{reflect.ValueOf(yield(args[0].Interface(), args[1].Interface()))}
			})})
		}), true
	}
	return nil, false
}

func fromGodsMap(m maps.Map) []Entry {
	keys, values := m.Keys(), m.Values()
	return drainKeyed(func(yield func(any, any) bool) {
		for i := range keys {
			if !yield(keys[i], values[i]) {
				return
			}
		}
	})
}

// fromMap reads a Go map. Raw keys coercing to the same key ("1", 1, 1.0, true) collide, the
// winner does not depend on the map iteration order: integers win over unsigned integers, then
// floats, then booleans, then strings. Ties go to the smallest "%T %v" rendering.
func fromMap(val reflect.Value) []Entry {
	type candidate struct {
		raw   any
		value any
	}
	byKey := make(map[ordered.Key]candidate, val.Len())
	keys := make([]ordered.Key, 0, val.Len())
	it := val.MapRange()
	for it.Next() {
		raw := it.Key().Interface()
		key, ok := ordered.KeyOf(raw)
		if !ok {
			continue
		}
		current, seen := byKey[key]
		if !seen {
			keys = append(keys, key)
		} else if !winsOver(raw, current.raw) {
			continue
		}
		byKey[key] = candidate{raw: raw, value: it.Value().Interface()}
	}

	entries := make([]Entry, 0, len(keys))
	for _, key := range heap.Sorted(ordered.CompareKeys, keys...) {
		entries = append(entries, Entry{Key: key, Value: byKey[key].value})
	}
	return entries
}

func winsOver(raw any, other any) bool {
	if r, o := rawKeyRank(raw), rawKeyRank(other); r != o {
		return r < o
	}
	return fmt.Sprintf("%T %v", raw, raw) < fmt.Sprintf("%T %v", other, other)
}

func rawKeyRank(raw any) int {
	switch reflect.ValueOf(raw).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return 1
	case reflect.Float32, reflect.Float64:
		return 2
	case reflect.Bool:
		return 3
	case reflect.String:
		return 4
	default:
		return 5
	}
}
