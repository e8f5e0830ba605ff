// Package set provides Set, an insertion ordered collection of unique values with the
// observable behaviour of the JavaScript Set, plus the set algebra built on top of it.
package set

import (
	"iter"

	"github.com/a-peyrard/jscollections/fn"
	"github.com/a-peyrard/jscollections/normalize"
	"github.com/a-peyrard/jscollections/option"
	"github.com/a-peyrard/jscollections/ordered"
	"github.com/a-peyrard/jscollections/property"
	"github.com/a-peyrard/jscollections/slices"
	"github.com/a-peyrard/jscollections/value"
)

// Set is an insertion ordered collection of values, no two of them strictly equal (see value.Equal).
//
// Elements are stored under their insertion index. Uniqueness is checked with a linear scan.
// A Set is not safe for concurrent use.
type Set struct {
	store   *ordered.Store[int, any]
	next    int
	options *option.Container
}

// New creates a Set out of the values of any input accepted by normalize.Values, duplicates
// are dropped, the first occurrence wins.
func New(input any, opts ...option.Option[option.Container]) *Set {
	entries, shape := normalize.EntriesWithShape(input)
	values := make([]any, len(entries))
	for i, e := range entries {
		values[i] = e.Value
	}

	s := newFromUnique(Unique(values), option.BuildContainer(opts...))
	s.options.Logger.Debug().
		Stringer("shape", shape).
		Int("size", s.Size()).
		Int("duplicates", len(values)-s.Size()).
		Msg("set created")

	return s
}

func newFromUnique(values []any, options *option.Container) *Set {
	s := &Set{
		store:   ordered.NewStore[int, any](),
		options: options,
	}
	for _, v := range values {
		s.store.Put(s.next, v)
		s.next++
	}
	return s
}

// Unique returns the values without duplicates, keeping the first occurrence of each value in
// its original order.
func Unique(values []any) []any {
	seen := make([]any, 0, len(values))
	for _, v := range values {
		if !slices.Any(seen, equalTo(v)) {
			seen = append(seen, v)
		}
	}
	return seen
}

func equalTo(v any) fn.Predicate[any] {
	return func(other any) bool {
		return value.Equal(v, other)
	}
}

// Size returns the number of elements.
func (s *Set) Size() int {
	return s.store.Len()
}

// Add appends the value unless an equal one is already there, and returns the Set itself.
func (s *Set) Add(v any) *Set {
	if !s.Has(v) {
		s.store.Put(s.next, v)
		s.next++
	}
	return s
}

// Has reports whether an element strictly equal to v is in the Set.
func (s *Set) Has(v any) bool {
	_, found := s.indexOf(v)
	return found
}

// Delete removes the element strictly equal to v and reports whether there was one.
//
// With the truthy lookup option the element stored under index 0 is never deleted.
func (s *Set) Delete(v any) bool {
	idx, found := s.indexOf(v)
	if !found {
		return false
	}
	if idx == 0 && s.options.TruthyLookup {
		s.options.Logger.Debug().Interface("value", v).Msg("delete refused, element found at index 0")
		return false
	}
	return s.store.Remove(idx)
}

// Clear removes all the elements.
func (s *Set) Clear() {
	s.store.Clear()
	s.next = 0
}

// ForEach calls the callback with (value, value, set) for each element, in order.
//
// The elements are snapshotted first, changes made by the callback are not observed by the loop.
func (s *Set) ForEach(callback fn.TriConsumer[any, any, *Set]) {
	for _, v := range s.store.Values() {
		callback(v, v, s)
	}
}

// Entries returns an iterator over [value, value] pairs.
func (s *Set) Entries() *EntryIterator {
	return NewEntryIterator(s.store.Values())
}

// Values returns an iterator over the elements.
func (s *Set) Values() *Iterator {
	return NewIterator(s.store.Values())
}

// Keys is an alias of Values.
func (s *Set) Keys() *Iterator {
	return s.Values()
}

// ToArray returns the elements in order.
func (s *Set) ToArray() []any {
	return s.store.Values()
}

// All ranges over a snapshot of the elements keyed by their position in the snapshot.
//
// It makes a Set a normalize.Traversable, so a Set (or a Map) can be built out of a Set.
func (s *Set) All() iter.Seq2[any, any] {
	values := s.store.Values()
	return func(yield func(any, any) bool) {
		for i, v := range values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Property reads a property by name, "size" is the only one.
func (s *Set) Property(name string) (int, error) {
	size, err := property.Read(name, s.Size())
	if err != nil {
		s.options.Logger.Debug().Err(err).Msg("invalid set property read")
	}
	return size, err
}

// SetProperty always fails: a Set has no writable property.
func (s *Set) SetProperty(name string, _ any) error {
	err := property.Write(name)
	s.options.Logger.Debug().Err(err).Msg("set property write rejected")
	return err
}

func (s *Set) indexOf(v any) (int, bool) {
	for idx, elem := range s.store.All() {
		if value.Equal(elem, v) {
			return idx, true
		}
	}
	return -1, false
}
