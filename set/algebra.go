package set

import (
	"github.com/a-peyrard/jscollections/fn"
	"github.com/a-peyrard/jscollections/option"
	"github.com/a-peyrard/jscollections/slices"
)

// Every operation below leaves both operands untouched. The derived sets share the options of
// the receiver.

// Union returns the elements of s followed by the elements of other that are not in s.
func (s *Set) Union(other *Set) *Set {
	return s.derive(Unique(append(s.ToArray(), other.ToArray()...)))
}

// Intersection returns the elements of s that are also in other, in the order of s.
func (s *Set) Intersection(other *Set) *Set {
	return s.derive(slices.Filter(s.ToArray(), other.Has))
}

// Difference returns the elements of s that are not in other, in the order of s.
func (s *Set) Difference(other *Set) *Set {
	return s.derive(slices.Filter(s.ToArray(), fn.Not(other.Has)))
}

// SymmetricDifference returns the elements only in s followed by the elements only in other.
func (s *Set) SymmetricDifference(other *Set) *Set {
	onlyInS := slices.Filter(s.ToArray(), fn.Not(other.Has))
	onlyInOther := slices.Filter(other.ToArray(), fn.Not(s.Has))
	return s.derive(append(onlyInS, onlyInOther...))
}

// IsSubsetOf reports whether every element of s is in other, an empty set is a subset of any set.
func (s *Set) IsSubsetOf(other *Set) bool {
	return slices.Every(s.ToArray(), other.Has)
}

// IsSupersetOf reports whether every element of other is in s.
func (s *Set) IsSupersetOf(other *Set) bool {
	return other.IsSubsetOf(s)
}

// IsDisjointFrom reports whether s and other have no element in common.
func (s *Set) IsDisjointFrom(other *Set) bool {
	return !slices.Any(s.ToArray(), other.Has)
}

// derive builds a set out of values already known to be unique.
func (s *Set) derive(values []any) *Set {
	return newFromUnique(values, option.BuildContainer(option.Inherit(s.options)))
}
