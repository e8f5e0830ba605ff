// Package property implements the property contract of the containers: "size" is the only
// readable property, and no property can be written.
package property

import (
	"errors"
	"fmt"
)

// Size is the only property exposed by the containers.
const Size = "size"

var (
	ErrInvalidProperty   = errors.New("undefined property")
	ErrImmutableProperty = errors.New("immutable property")
)

// Error reports a property misuse, it wraps ErrInvalidProperty or ErrImmutableProperty.
type Error struct {
	Name string
	Err  error
}

func (e *Error) Error() string {
	if errors.Is(e.Err, ErrImmutableProperty) {
		return fmt.Sprintf("property [%s] is immutable", e.Name)
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Name)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Read resolves a property read against a container of the given size.
func Read(name string, size int) (int, error) {
	if name != Size {
		return 0, &Error{Name: name, Err: ErrInvalidProperty}
	}
	return size, nil
}

// Write rejects every property write.
func Write(name string) error {
	return &Error{Name: name, Err: ErrImmutableProperty}
}
