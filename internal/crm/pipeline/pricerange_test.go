package pipeline

import (
	"testing"
)

func TestParsePriceRangeVocabulary(t *testing.T) {
	// Midpoint of the bounds; the one-sided form returns its threshold.
	cases := []struct {
		bucket string
		want   float64
	}{
		{"0-25K", 12_500},
		{"25K-50K", 37_500},
		{"50K-75K", 62_500},
		{"75K-1L", 87_500},
		{"1L-2L", 150_000},
		{"2L-3L", 250_000},
		{"3L-5L", 400_000},
		{"5L-10L", 750_000},
		{"10L-20L", 1_500_000},
		{"20L-50L", 3_500_000},
		{"50L-1CR", 7_500_000},
		{">1CR", 10_000_000},
	}

	for _, tc := range cases {
		if got := ParsePriceRange(tc.bucket); got != tc.want {
			t.Errorf("ParsePriceRange(%q) = %v, want %v", tc.bucket, got, tc.want)
		}
	}
}

func TestParsePriceRangeMalformed(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"garbage",
		"1X-2X",
		"1L",
		"-",
		"1L-",
		"-2L",
		">",
		">abc",
		"K-L",
	}

	for _, bucket := range cases {
		if got := ParsePriceRange(bucket); got != 0 {
			t.Errorf("ParsePriceRange(%q) = %v, want 0", bucket, got)
		}
	}
}

func TestParsePriceRangeWhitespaceAndCase(t *testing.T) {
	if got := ParsePriceRange(" 1L-2L "); got != 150_000 {
		t.Errorf("ParsePriceRange with surrounding spaces = %v, want 150000", got)
	}
	if got := ParsePriceRange("1l-2l"); got != 150_000 {
		t.Errorf("ParsePriceRange with lowercase units = %v, want 150000", got)
	}
}

func TestIsKnownPriceRange(t *testing.T) {
	for _, r := range PriceRanges {
		if !IsKnownPriceRange(r) {
			t.Errorf("IsKnownPriceRange(%q) = false, want true", r)
		}
	}
	if IsKnownPriceRange("1CR-2CR") {
		t.Error("IsKnownPriceRange accepted a label outside the vocabulary")
	}
}
