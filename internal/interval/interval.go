// Package interval converts sleep arguments such as "1.5", "30s", "2m",
// "1h" or "1d" into a total number of milliseconds.
//
// Each argument is a number with an optional unit suffix. Without a suffix
// the number is read as seconds. Given several arguments the result is the
// sum of all of them, so "1m 30s" waits ninety seconds.
package interval

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Unit is the unit suffix of a duration token.
type Unit int

const (
	// Seconds is the 's' suffix, and the unit of a token with no suffix.
	Seconds Unit = iota
	// Minutes is the 'm' suffix.
	Minutes
	// Hours is the 'h' suffix.
	Hours
	// Days is the 'd' suffix.
	Days
)

// suffixes are tried in this order; at most one can match.
var suffixes = []struct {
	suffix string
	unit   Unit
}{
	{"s", Seconds},
	{"m", Minutes},
	{"h", Hours},
	{"d", Days},
}

// Multiplier returns the number of milliseconds in one unit.
func (u Unit) Multiplier() float64 {
	switch u {
	case Minutes:
		return 60 * 1000
	case Hours:
		return 60 * 60 * 1000
	case Days:
		return 24 * 60 * 60 * 1000
	default:
		return 1000
	}
}

// String returns the suffix character of the unit.
func (u Unit) String() string {
	switch u {
	case Minutes:
		return "m"
	case Hours:
		return "h"
	case Days:
		return "d"
	default:
		return "s"
	}
}

// UnitFor splits a token into its unit and the numeric text in front of it.
func UnitFor(token string) (Unit, string) {
	for _, s := range suffixes {
		if value, ok := strings.CutSuffix(token, s.suffix); ok {
			return s.unit, value
		}
	}
	return Seconds, token
}

// ParseToken returns the value of a single token in milliseconds, before
// rounding.
func ParseToken(token string) (float64, error) {
	unit, text := UnitFor(token)
	value, err := parseNumber(text)
	if err != nil {
		return 0, &InvalidIntervalError{Token: token}
	}
	return value * unit.Multiplier(), nil
}

// Parse sums the tokens and returns the total in whole milliseconds.
// It stops at the first token that is not a valid number and reports that
// token unchanged; the tokens after it are not looked at.
func Parse(tokens []string) (uint64, error) {
	if len(tokens) == 0 {
		return 0, ErrNoInterval
	}

	var sum float64
	for _, token := range tokens {
		ms, err := ParseToken(token)
		if err != nil {
			return 0, err
		}
		sum += ms
	}
	return toMillis(sum), nil
}

// parseNumber accepts decimal floats with an optional sign and exponent,
// and inf/infinity/nan, any of them signed. Hex floats and digit separators
// are refused. A value too large for a float64 is returned as an infinity
// instead of an error.
func parseNumber(text string) (float64, error) {
	digits := strings.TrimLeft(text, "+-")
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		return 0, strconv.ErrSyntax
	}
	if strings.Contains(text, "_") {
		return 0, strconv.ErrSyntax
	}

	// ParseFloat only takes a sign in front of inf, not nan.
	unsigned, signed := strings.CutPrefix(text, "+")
	if !signed {
		unsigned, signed = strings.CutPrefix(text, "-")
	}
	if signed && strings.EqualFold(unsigned, "nan") {
		return math.NaN(), nil
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return value, nil
		}
		return 0, err
	}
	return value, nil
}

// toMillis rounds the sum and converts it, saturating at both ends.
func toMillis(sum float64) uint64 {
	rounded := math.Round(sum)
	switch {
	case math.IsNaN(rounded) || rounded <= 0:
		return 0
	case rounded >= math.MaxUint64:
		return math.MaxUint64
	default:
		return uint64(rounded)
	}
}
