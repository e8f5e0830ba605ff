package jsmap

import "github.com/a-peyrard/jscollections/iterator"

// Iterator is the forward iterator returned by Entries, Keys and Values.
type Iterator[T any] = iterator.Forward[T]

// NewIterator creates an iterator over a copy of items.
func NewIterator[T any](items []T) *Iterator[T] {
	return iterator.New(items)
}
