// Package iterator provides the forward only cursor returned by the containers query methods.
package iterator

import "iter"

// Forward is a cursor over a snapshot of elements.
//
// The snapshot is copied at construction, later changes of the source are never observed.
// The position only moves forward, reading past the end gives nothing instead of failing.
type Forward[T any] struct {
	items    []T
	position int
}

// New creates a cursor positioned on the first element of a copy of items.
func New[T any](items []T) *Forward[T] {
	snapshot := make([]T, len(items))
	copy(snapshot, items)
	return &Forward[T]{items: snapshot}
}

// Current returns the element under the cursor, false once the cursor is past the end.
func (it *Forward[T]) Current() (elem T, ok bool) {
	if it.position >= len(it.items) {
		return elem, false
	}
	return it.items[it.position], true
}

// Next moves the cursor one step forward and then returns the element under it, so the
// first call gives the second element.
func (it *Forward[T]) Next() (T, bool) {
	if it.position < len(it.items) {
		it.position++
	}
	return it.Current()
}

// Position returns the cursor position, len(ToArray()) once exhausted.
func (it *Forward[T]) Position() int {
	return it.position
}

// Len returns the size of the snapshot.
func (it *Forward[T]) Len() int {
	return len(it.items)
}

// ToArray returns a copy of the whole snapshot, whatever the cursor position.
func (it *Forward[T]) ToArray() []T {
	items := make([]T, len(it.items))
	copy(items, it.items)
	return items
}

// All ranges over the whole snapshot from its first element, the cursor is left untouched.
func (it *Forward[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range it.items {
			if !yield(item) {
				return
			}
		}
	}
}
