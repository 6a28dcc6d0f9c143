package quantity

import (
	"errors"
	"fmt"
)

// Sentinel causes carried by ParseError. Callers match them with errors.Is.
var (
	ErrEmptyInput  = errors.New("empty input")
	ErrUnparseable = errors.New("unparseable format")
	ErrUnknownUnit = errors.New("unrecognized unit")
	ErrNonPositive = errors.New("value must be positive")
)

// Dimension names the physical quantity a raw string was parsed as.
type Dimension string

const (
	DimensionMass   Dimension = "weight"
	DimensionLength Dimension = "height"
)

// ParseError reports why a raw measurement string was rejected. The caller is
// expected to re-prompt; nothing here is fatal.
type ParseError struct {
	Dimension Dimension
	Input     string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s %q: %v", e.Dimension, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Hint returns the message shown to a user before asking again.
func (e *ParseError) Hint() string {
	switch {
	case errors.Is(e.Err, ErrEmptyInput):
		return fmt.Sprintf("Please enter your %s.", e.Dimension)
	case errors.Is(e.Err, ErrNonPositive):
		if e.Dimension == DimensionMass {
			return "Weight must be positive."
		}
		return "Height must be positive."
	case errors.Is(e.Err, ErrUnknownUnit) && e.Dimension == DimensionMass:
		return "Unknown unit; use 'kg' or 'lb'."
	case errors.Is(e.Err, ErrUnknownUnit):
		return "Unknown unit; use 'cm', 'm', 'ft' or 'in'."
	case e.Dimension == DimensionMass:
		return "Couldn't parse weight. Examples: '70', '70 kg', '154 lb'."
	default:
		return "Couldn't parse height. Examples: '170 cm', '5 ft 9 in', '1.75 m'."
	}
}

func parseErr(dim Dimension, input string, cause error) *ParseError {
	return &ParseError{Dimension: dim, Input: input, Err: cause}
}
