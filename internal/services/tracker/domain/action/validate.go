package action

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrIDRequired indicates a record without an id.
var ErrIDRequired = errors.New("id is required")

// RequireID rejects blank record ids.
func RequireID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrIDRequired
	}
	return nil
}

// RequireOneOf rejects values outside allowed. field names the payload field.
func RequireOneOf[T ~string](field string, value T, allowed ...T) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%s %q must be one of %v", field, value, allowed)
}

// OptionalOneOf is RequireOneOf that also accepts the empty value.
func OptionalOneOf[T ~string](field string, value T, allowed ...T) error {
	if value == "" {
		return nil
	}
	return RequireOneOf(field, value, allowed...)
}

// RequireNonNegative rejects negative numbers.
func RequireNonNegative[T ~int | ~float64](field string, value T) error {
	if value < 0 {
		return fmt.Errorf("%s must not be negative", field)
	}
	return nil
}
