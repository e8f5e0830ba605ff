package ordered

import (
	"errors"
	"math"
	"strconv"

	"github.com/a-peyrard/jscollections/fn"
	"github.com/a-peyrard/jscollections/str"
)

// ErrUnsupportedKey is raised when a value cannot be used as a key.
var ErrUnsupportedKey = errors.New("unsupported key type")

// Key is either positional (an integer) or named (a string).
//
// Named keys holding a canonical decimal integer collapse into positional keys, so "1" and 1
// address the same entry. The zero Key is the positional key 0.
type Key struct {
	name  string
	index int
	named bool
}

// Index returns the positional key i.
func Index(i int) Key {
	return Key{index: i}
}

// Name returns the named key s, or the positional key it denotes when s is a canonical integer.
func Name(s string) Key {
	if i, ok := str.ParseCanonicalInt(s); ok {
		return Index(i)
	}
	return Key{name: s, named: true}
}

// KeyOf coerces a raw value into a key.
//
// Integers and strings are keys, booleans become 0 or 1 and floats are truncated toward zero.
// nil (the null sentinel) and any other type give false.
func KeyOf(raw any) (Key, bool) {
	switch k := raw.(type) {
	case Key:
		return k, true
	case string:
		return Name(k), true
	case int:
		return Index(k), true
	case int8:
		return Index(int(k)), true
	case int16:
		return Index(int(k)), true
	case int32:
		return Index(int(k)), true
	case int64:
		return Index(int(k)), true
	case uint:
		return uintKey(uint64(k))
	case uint8:
		return Index(int(k)), true
	case uint16:
		return Index(int(k)), true
	case uint32:
		return uintKey(uint64(k))
	case uint64:
		return uintKey(k)
	case bool:
		if k {
			return Index(1), true
		}
		return Index(0), true
	case float32:
		return floatKey(float64(k))
	case float64:
		return floatKey(k)
	}
	return Key{}, false
}

func uintKey(u uint64) (Key, bool) {
	if u > math.MaxInt {
		return Key{}, false
	}
	return Index(int(u)), true
}

func floatKey(f float64) (Key, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt || f < math.MinInt {
		return Key{}, false
	}
	return Index(int(f)), true
}

// IsIndex reports whether the key is positional.
func (k Key) IsIndex() bool {
	return !k.named
}

// Index returns the position of a positional key, false for a named key.
func (k Key) Index() (int, bool) {
	return k.index, !k.named
}

// Value returns the raw key, an int or a string.
func (k Key) Value() any {
	if k.named {
		return k.name
	}
	return k.index
}

func (k Key) String() string {
	if k.named {
		return k.name
	}
	return strconv.Itoa(k.index)
}

// Equal reports whether both keys address the same entry.
func (k Key) Equal(other Key) bool {
	return k == other
}

// CompareKeys orders positional keys before named keys, positions ascending and names
// lexicographically.
func CompareKeys(k1 Key, k2 Key) fn.ComparisonResult {
	switch {
	case !k1.named && k2.named:
		return fn.Less
	case k1.named && !k2.named:
		return fn.Greater
	case !k1.named:
		return compare(k1.index, k2.index)
	default:
		return compare(k1.name, k2.name)
	}
}

func compare[T int | string](a T, b T) fn.ComparisonResult {
	switch {
	case a < b:
		return fn.Less
	case a > b:
		return fn.Greater
	default:
		return fn.Equal
	}
}
