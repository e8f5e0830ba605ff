package slices

import "github.com/a-peyrard/jscollections/fn"

// Filter returns a new slice containing only the elements for which the predicate function returns true.
// The relative order of the kept elements is preserved.
func Filter[T any](slice []T, predicate fn.Predicate[T]) []T {
	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Index returns the position of the first element matching the predicate.
func Index[T any](slice []T, predicate fn.Predicate[T]) (int, bool) {
	for i, item := range slice {
		if predicate(item) {
			return i, true
		}
	}
	return -1, false
}

// Any returns true if at least one element matches the predicate.
func Any[T any](slice []T, predicate fn.Predicate[T]) bool {
	_, found := Index(slice, predicate)
	return found
}

// Every returns true if all the elements match the predicate, an empty slice always matches.
func Every[T any](slice []T, predicate fn.Predicate[T]) bool {
	return !Any(slice, fn.Not(predicate))
}
