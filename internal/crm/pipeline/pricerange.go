// Package pipeline holds the read-side valuation and dashboard aggregation
// logic. Everything here is pure computation over rows the caller has already
// fetched and scoped; there is no I/O and no access-control filtering.
package pipeline

import (
	"strconv"
	"strings"
)

// unitMultipliers maps the Indian-numbering unit suffixes used in price-range
// labels to their rupee multipliers. Kept in one table so the vocabulary can
// be extended without touching the aggregation code.
var unitMultipliers = map[string]float64{
	"K":  1_000,      // thousand
	"L":  100_000,    // lakh
	"CR": 10_000_000, // crore
}

// PriceRanges is the closed set of bucket labels offered by the customer
// interest form. Stored as plain strings, so legacy rows may still carry
// values outside this list.
var PriceRanges = []string{
	"0-25K",
	"25K-50K",
	"50K-75K",
	"75K-1L",
	"1L-2L",
	"2L-3L",
	"3L-5L",
	"5L-10L",
	"10L-20L",
	"20L-50L",
	"50L-1CR",
	">1CR",
}

// IsKnownPriceRange reports whether label is in the current form vocabulary.
func IsKnownPriceRange(label string) bool {
	for _, r := range PriceRanges {
		if r == label {
			return true
		}
	}
	return false
}

// ParsePriceRange converts a textual price-range bucket into a single
// representative rupee estimate: the midpoint of the bounds for two-sided
// labels, and the threshold value itself for the one-sided ">" form (there is
// no upper bound to average against). Every call site uses this same
// estimate, so aggregated totals are reproducible.
//
// Malformed, empty or unknown input returns 0 rather than an error: one bad
// legacy value must not take down a whole dashboard render.
func ParsePriceRange(bucket string) float64 {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		return 0
	}

	if strings.HasPrefix(bucket, ">") {
		floor, ok := parseAmount(bucket[1:])
		if !ok {
			return 0
		}
		return floor
	}

	parts := strings.SplitN(bucket, "-", 2)
	if len(parts) != 2 {
		return 0
	}
	low, ok := parseAmount(parts[0])
	if !ok {
		return 0
	}
	high, ok := parseAmount(parts[1])
	if !ok {
		return 0
	}
	return (low + high) / 2
}

// parseAmount parses one "<number><unit>" component, e.g. "25K" or "1CR".
// A bare number with no unit suffix (the "0" in "0-25K") is taken at face
// value.
func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	i := 0
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		i++
	}
	if i == 0 {
		return 0, false
	}

	value, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, false
	}

	unit := strings.ToUpper(strings.TrimSpace(s[i:]))
	if unit == "" {
		return value, true
	}
	mult, ok := unitMultipliers[unit]
	if !ok {
		return 0, false
	}
	return value * mult, true
}
