package notion

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a required JSON field is absent.
	ErrMissingField = errors.New("missing field")
	// ErrNotAString is returned when a field is present but does not hold a string.
	ErrNotAString = errors.New("field is not a string")
	// ErrUnknownPropertyType is returned when a property type tag is not one of the known kinds.
	ErrUnknownPropertyType = errors.New("unknown property type")
	// ErrTransport is returned when the remote API could not be reached or answered with an error.
	ErrTransport = errors.New("transport error")
)

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}

func notAString(name string) error {
	return fmt.Errorf("%w: %s", ErrNotAString, name)
}

func unknownPropertyType(tag string) error {
	return fmt.Errorf("%w: %s", ErrUnknownPropertyType, tag)
}
