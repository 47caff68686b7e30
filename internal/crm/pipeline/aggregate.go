package pipeline

import (
	"strconv"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
)

// CustomerPipelineValue sums the parsed price-range estimate of every product
// entry across all of the customer's interest categories. Every entry counts
// once, fully; nil or empty interest data contributes 0.
func CustomerPipelineValue(c *entity.Customer) float64 {
	var total float64
	for _, cat := range c.InterestCategories {
		for _, p := range cat.Products {
			total += ParsePriceRange(p.PriceRange)
		}
	}
	return total
}

// AggregatePipelineValue sums CustomerPipelineValue over an already-scoped
// customer set.
func AggregatePipelineValue(customers []entity.Customer) float64 {
	var total float64
	for i := range customers {
		total += CustomerPipelineValue(&customers[i])
	}
	return total
}

// ConversionSummary converted-revenue metrics over one customer set
type ConversionSummary struct {
	TotalCustomers     int     `json:"total_customers"`
	ConvertedCustomers int     `json:"converted_customers"`
	ConvertedRevenue   float64 `json:"converted_revenue"`
	ConversionRate     string  `json:"conversion_rate"`
}

// SummarizeConversions accumulates purchase amounts and converted counts over
// the set. A customer converts only with a strictly positive purchase amount.
func SummarizeConversions(customers []entity.Customer) ConversionSummary {
	s := ConversionSummary{TotalCustomers: len(customers)}
	for i := range customers {
		amount := customers[i].PurchaseAmount
		if amount != nil && *amount > 0 {
			s.ConvertedCustomers++
			s.ConvertedRevenue += *amount
		}
	}
	s.ConversionRate = rateString(s.ConvertedCustomers, s.TotalCustomers)
	return s
}

// rateString formats part/whole as a percentage with one decimal. An empty
// base reports "0.0" rather than NaN.
func rateString(part, whole int) string {
	if whole == 0 {
		return "0.0"
	}
	return strconv.FormatFloat(float64(part)/float64(whole)*100, 'f', 1, 64)
}
