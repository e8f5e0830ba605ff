// Package jsmap provides Map, an insertion ordered key/value container with the observable
// behaviour of the JavaScript Map: chainable Set, size tracking and snapshot iterators.
package jsmap

import (
	"iter"

	"github.com/a-peyrard/jscollections/fn"
	"github.com/a-peyrard/jscollections/normalize"
	"github.com/a-peyrard/jscollections/option"
	"github.com/a-peyrard/jscollections/ordered"
	"github.com/a-peyrard/jscollections/property"
	"github.com/a-peyrard/jscollections/value"
)

// Entry is a single key => value pair of a Map.
type Entry = ordered.Entry[ordered.Key, any]

// Map is an insertion ordered container keyed by positions (integers) or names (strings).
//
// A Map is not safe for concurrent use.
type Map struct {
	store   *ordered.Store[ordered.Key, any]
	next    int
	options *option.Container
}

// New creates a Map out of any input accepted by normalize.Entries.
func New(input any, opts ...option.Option[option.Container]) *Map {
	entries, shape := normalize.EntriesWithShape(input)

	m := &Map{
		store:   ordered.NewStoreFrom(entries),
		options: option.BuildContainer(opts...),
	}
	for _, e := range entries {
		m.bumpNext(e.Key)
	}

	m.options.Logger.Debug().
		Stringer("shape", shape).
		Int("size", m.Size()).
		Msg("map created")

	return m
}

// Size returns the number of entries.
func (m *Map) Size() int {
	return m.store.Len()
}

// Get returns the value stored under key. A nil key or a key of an unsupported type is never found.
func (m *Map) Get(key any) (any, bool) {
	k, ok := ordered.KeyOf(key)
	if !ok {
		return nil, false
	}
	return m.store.Get(k)
}

// Has reports whether an entry exists under key.
//
// With the truthy lookup option, an entry holding a falsy value is reported as absent.
func (m *Map) Has(key any) bool {
	v, found := m.Get(key)
	if found && m.options.TruthyLookup {
		return value.Truthy(v)
	}
	return found
}

// Set stores value under key and returns the Map itself.
//
// A nil key appends the value under the next free position, one past the highest position ever
// used. Setting an existing key updates it in place. It panics with ordered.ErrUnsupportedKey
// when the key is neither nil, an integer, a string, a bool, a float nor an ordered.Key.
func (m *Map) Set(key any, v any) *Map {
	var k ordered.Key
	if key == nil {
		k = ordered.Index(m.next)
	} else {
		k = ordered.MustKeyOf(key)
	}

	m.store.Put(k, v)
	m.bumpNext(k)
	return m
}

// Delete removes the entry under key and reports whether there was one to remove.
func (m *Map) Delete(key any) bool {
	k, ok := ordered.KeyOf(key)
	if !ok {
		return false
	}
	if !m.Has(key) {
		if m.store.Has(k) {
			m.options.Logger.Debug().Stringer("key", k).Msg("delete refused, falsy value under key")
		}
		return false
	}
	return m.store.Remove(k)
}

// Clear removes all the entries, positions restart from 0.
func (m *Map) Clear() {
	m.store.Clear()
	m.next = 0
}

// ForEach calls the callback with (value, key, map) for each entry, in order.
//
// The entries are snapshotted first, changes made by the callback are not observed by the loop.
func (m *Map) ForEach(callback fn.TriConsumer[any, ordered.Key, *Map]) {
	for _, e := range m.store.Entries() {
		callback(e.Value, e.Key, m)
	}
}

// Entries returns an iterator over the key => value pairs.
func (m *Map) Entries() *Iterator[Entry] {
	return NewIterator(m.store.Entries())
}

// Keys returns an iterator over the keys.
func (m *Map) Keys() *Iterator[ordered.Key] {
	return NewIterator(m.store.Keys())
}

// Values returns an iterator over the values.
func (m *Map) Values() *Iterator[any] {
	return NewIterator(m.store.Values())
}

// ToArray returns the ordered entries.
func (m *Map) ToArray() []Entry {
	return m.store.Entries()
}

// All ranges over a snapshot of the entries with their raw keys (int or string).
//
// It makes a Map a normalize.Traversable, so a Map can be built out of another one.
func (m *Map) All() iter.Seq2[any, any] {
	entries := m.store.Entries()
	return func(yield func(any, any) bool) {
		for _, e := range entries {
			if !yield(e.Key.Value(), e.Value) {
				return
			}
		}
	}
}

// Property reads a property by name, "size" is the only one.
func (m *Map) Property(name string) (int, error) {
	size, err := property.Read(name, m.Size())
	if err != nil {
		m.options.Logger.Debug().Err(err).Msg("invalid map property read")
	}
	return size, err
}

// SetProperty always fails: a Map has no writable property.
func (m *Map) SetProperty(name string, _ any) error {
	err := property.Write(name)
	m.options.Logger.Debug().Err(err).Msg("map property write rejected")
	return err
}

func (m *Map) bumpNext(k ordered.Key) {
	if i, ok := k.Index(); ok && i >= m.next {
		m.next = i + 1
	}
}
