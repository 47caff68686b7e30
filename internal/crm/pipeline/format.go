package pipeline

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// inr prints amounts with Indian digit grouping (1,00,000 not 100,000).
var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders a rupee amount as a display string with the rupee sign
// and Indian grouping, rounded to whole rupees.
func FormatINR(amount float64) string {
	return inr.Sprintf("₹%v", number.Decimal(amount, number.MaxFractionDigits(0)))
}
