package ordered

import (
	"iter"

	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Entry is a key/value pair.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// E is a shorthand for building an entry keyed by a raw key (see KeyOf). It panics when the
// raw key is not supported.
func E(key any, value any) Entry[Key, any] {
	return Entry[Key, any]{Key: MustKeyOf(key), Value: value}
}

// Store is an insertion ordered mapping.
//
// Putting an existing key updates its value in place, it does not move the entry to the end.
type Store[K comparable, V any] struct {
	inner *linkedhashmap.Map
}

// NewStore creates an empty store.
func NewStore[K comparable, V any]() *Store[K, V] {
	return &Store[K, V]{inner: linkedhashmap.New()}
}

// NewStoreFrom creates a store holding the given entries, later duplicates overwrite earlier ones.
func NewStoreFrom[K comparable, V any](entries []Entry[K, V]) *Store[K, V] {
	s := NewStore[K, V]()
	for _, e := range entries {
		s.Put(e.Key, e.Value)
	}
	return s
}

func (s *Store[K, V]) Get(key K) (value V, found bool) {
	raw, found := s.inner.Get(key)
	if !found || raw == nil {
		return value, found
	}
	return raw.(V), true
}

func (s *Store[K, V]) Has(key K) bool {
	_, found := s.inner.Get(key)
	return found
}

func (s *Store[K, V]) Put(key K, value V) {
	s.inner.Put(key, value)
}

// Remove deletes the entry under key and reports whether there was one.
func (s *Store[K, V]) Remove(key K) bool {
	if !s.Has(key) {
		return false
	}
	s.inner.Remove(key)
	return true
}

func (s *Store[K, V]) Clear() {
	s.inner.Clear()
}

func (s *Store[K, V]) Len() int {
	return s.inner.Size()
}

func (s *Store[K, V]) Keys() []K {
	keys := make([]K, 0, s.Len())
	for k := range s.All() {
		keys = append(keys, k)
	}
	return keys
}

func (s *Store[K, V]) Values() []V {
	values := make([]V, 0, s.Len())
	for _, v := range s.All() {
		values = append(values, v)
	}
	return values
}

func (s *Store[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, s.Len())
	for k, v := range s.All() {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}

// All iterates over the entries in insertion order.
//
// The store must not be modified while iterating, snapshot it with Entries first.
func (s *Store[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		it := s.inner.Iterator()
		for it.Next() {
			var v V
			if raw := it.Value(); raw != nil {
				v = raw.(V)
			}
			if !yield(it.Key().(K), v) {
				return
			}
		}
	}
}
