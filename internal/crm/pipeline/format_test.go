package pipeline

import (
	"testing"
)

func TestFormatINRIndianGrouping(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{0, "₹0"},
		{999, "₹999"},
		{12_500, "₹12,500"},
		{150_000, "₹1,50,000"},
		{7_500_000, "₹75,00,000"},
		{10_000_000, "₹1,00,00,000"},
	}

	for _, tc := range cases {
		if got := FormatINR(tc.amount); got != tc.want {
			t.Errorf("FormatINR(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}
