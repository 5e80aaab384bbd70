// Package field pads and validates single NACHA fields into their
// fixed-width textual form. All functions are pure: string in, string out.
package field

import (
	"errors"
	"regexp"
	"strings"
)

// Common errors
var (
	ErrNotNumeric          = errors.New("numeric field contains non-digit characters")
	ErrFieldTooLong        = errors.New("numeric field exceeds declared width")
	ErrInvalidAlphaNumeric = errors.New("field does not match alphanumeric criteria")
	ErrInvalidBinary       = errors.New("binary field must be '0' or '1'")
)

// alphaNumericPrefix captures the longest run of permitted characters
// starting at the beginning of the value. Anything past the declared
// length is dropped, not rejected; only a value whose first character is
// outside the class fails outright.
var alphaNumericPrefix = regexp.MustCompile(`^[A-Za-z0-9_\s]+`)

// Numeric validates a digits-only value and left-pads it with zeros to
// the declared length. A value longer than length is an error, unlike
// AlphaNumeric which truncates.
func Numeric(value string, length int) (string, error) {
	if value == "" || !isDigits(value) {
		return "", ErrNotNumeric
	}
	if len(value) > length {
		return "", ErrFieldTooLong
	}
	return Zeros(length-len(value)) + value, nil
}

// AlphaNumeric validates the value against the permitted character class,
// truncates it to the declared length, right-pads with spaces and
// upper-cases the result.
func AlphaNumeric(value string, length int) (string, error) {
	match := alphaNumericPrefix.FindString(value)
	if match == "" {
		return "", ErrInvalidAlphaNumeric
	}
	if len(match) > length {
		match = match[:length]
	}
	if len(match) < length {
		match += Spaces(length - len(match))
	}
	return strings.ToUpper(match), nil
}

// Binary validates a one-character flag field.
func Binary(value string) (string, error) {
	if value != "1" && value != "0" {
		return "", ErrInvalidBinary
	}
	return value, nil
}

// RightJustify pads the value with leading spaces to the declared length.
// No character-class validation: routing numbers and company IDs arrive
// pre-formatted from the bank.
func RightJustify(value string, length int) string {
	if len(value) != length {
		return Spaces(length-len(value)) + value
	}
	return value
}

// Zeros returns a run of n '0' characters.
func Zeros(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat("0", n)
}

// Spaces returns a run of n space characters.
func Spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
