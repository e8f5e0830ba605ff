package set

import (
	"iter"

	"github.com/a-peyrard/jscollections/iterator"
)

// Iterator is the forward iterator returned by Keys and Values.
type Iterator = iterator.Forward[any]

// NewIterator creates an iterator over a copy of items.
func NewIterator(items []any) *Iterator {
	return iterator.New(items)
}

// Pair is a [value, value] entry of a Set.
type Pair [2]any

// EntryIterator is the forward iterator returned by Entries: it walks the elements and hands
// each of them out as a [value, value] pair.
type EntryIterator struct {
	inner *iterator.Forward[any]
}

// NewEntryIterator creates an entry iterator over a copy of items.
func NewEntryIterator(items []any) *EntryIterator {
	return &EntryIterator{inner: iterator.New(items)}
}

// Current returns the pair under the cursor, false once the cursor is past the end.
func (it *EntryIterator) Current() (Pair, bool) {
	return pairOf(it.inner.Current())
}

// Next moves the cursor one step forward and then returns the pair under it.
func (it *EntryIterator) Next() (Pair, bool) {
	return pairOf(it.inner.Next())
}

func (it *EntryIterator) Position() int {
	return it.inner.Position()
}

// ToArray returns the snapshot of elements, not wrapped in pairs.
func (it *EntryIterator) ToArray() []any {
	return it.inner.ToArray()
}

// All ranges over every pair of the snapshot from its first element.
func (it *EntryIterator) All() iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for v := range it.inner.All() {
			if !yield(Pair{v, v}) {
				return
			}
		}
	}
}

func pairOf(v any, ok bool) (Pair, bool) {
	if !ok {
		return Pair{}, false
	}
	return Pair{v, v}, true
}
