package core

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// numericPrefix consumes an optional sign followed by digits and decimal
// points, at least one of them a digit. For "12.34.56abc" it captures
// "12.34.56", which ParseFloat then rejects.
var numericPrefix = regexp.MustCompile(`^[+-]?(?:[0-9][0-9.]*|\.[0-9][0-9.]*)`)

// Classify turns a raw value string into a Log or a Quantity.
//
// The input is trimmed first. When it starts with a number the number becomes
// the magnitude and everything after it the unit, otherwise the whole string
// is a Log. A numeric prefix that cannot be parsed as a float yields
// ErrMalformedQuantity.
func Classify(raw string) (Value, error) {
	s := strings.TrimSpace(raw)

	prefix := numericPrefix.FindString(s)
	if prefix == "" {
		return Log{Text: s}, nil
	}

	m, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrMalformedQuantity, prefix)
	}

	return Quantity{Magnitude: m, Unit: s[len(prefix):]}, nil
}
