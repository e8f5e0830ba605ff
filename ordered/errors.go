package ordered

import "fmt"

func unsupportedKey(raw any) error {
	return fmt.Errorf("%w: %T", ErrUnsupportedKey, raw)
}

// MustKeyOf is KeyOf panicking on unsupported raw keys.
func MustKeyOf(raw any) Key {
	k, ok := KeyOf(raw)
	if !ok {
		panic(unsupportedKey(raw))
	}
	return k
}
