package pipeline

import (
	"testing"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
)

func interestedCustomer(status string, ranges ...string) entity.Customer {
	products := make([]entity.InterestProduct, 0, len(ranges))
	for _, r := range ranges {
		products = append(products, entity.InterestProduct{ProductName: "Necklace", PriceRange: r})
	}
	return entity.Customer{
		LeadStatus: status,
		InterestCategories: entity.InterestCategories{
			{CategoryType: entity.CategoryGold, Products: products},
		},
	}
}

func convertedCustomer(amount float64) entity.Customer {
	return entity.Customer{
		LeadStatus:     entity.LeadStatusClosedWon,
		PurchaseAmount: &amount,
	}
}

func TestCustomerPipelineValue(t *testing.T) {
	c := interestedCustomer(entity.LeadStatusQualified, "25K-50K", "50K-75K")
	if got := CustomerPipelineValue(&c); got != 100_000 {
		t.Errorf("CustomerPipelineValue = %v, want 100000", got)
	}

	empty := entity.Customer{LeadStatus: entity.LeadStatusNew}
	if got := CustomerPipelineValue(&empty); got != 0 {
		t.Errorf("customer without interest data contributed %v, want 0", got)
	}

	nilProducts := entity.Customer{
		InterestCategories: entity.InterestCategories{
			{CategoryType: entity.CategoryDiamond},
		},
	}
	if got := CustomerPipelineValue(&nilProducts); got != 0 {
		t.Errorf("category with nil products contributed %v, want 0", got)
	}
}

func TestAggregatePipelineValueAdditivity(t *testing.T) {
	a := []entity.Customer{
		interestedCustomer(entity.LeadStatusNew, "1L-2L"),
		interestedCustomer(entity.LeadStatusContacted, "0-25K"),
	}
	b := []entity.Customer{
		interestedCustomer(entity.LeadStatusQualified, ">1CR"),
	}

	union := append(append([]entity.Customer{}, a...), b...)
	if got, want := AggregatePipelineValue(union), AggregatePipelineValue(a)+AggregatePipelineValue(b); got != want {
		t.Errorf("AggregatePipelineValue(A∪B) = %v, want %v", got, want)
	}
}

func TestAggregatePipelineValueEmpty(t *testing.T) {
	if got := AggregatePipelineValue(nil); got != 0 {
		t.Errorf("AggregatePipelineValue(nil) = %v, want 0", got)
	}
	if got := AggregatePipelineValue([]entity.Customer{}); got != 0 {
		t.Errorf("AggregatePipelineValue(empty) = %v, want 0", got)
	}
}

func TestSummarizeConversionsZeroBaseline(t *testing.T) {
	s := SummarizeConversions(nil)
	if s.ConversionRate != "0.0" {
		t.Errorf("conversion rate over empty set = %q, want \"0.0\"", s.ConversionRate)
	}
	if s.ConvertedRevenue != 0 || s.ConvertedCustomers != 0 {
		t.Errorf("empty set produced revenue %v / count %d", s.ConvertedRevenue, s.ConvertedCustomers)
	}
}

func TestSummarizeConversionsIgnoresNonPositiveAmounts(t *testing.T) {
	zero := 0.0
	negative := -500.0
	customers := []entity.Customer{
		{PurchaseAmount: &zero},
		{PurchaseAmount: &negative},
		{PurchaseAmount: nil},
		convertedCustomer(75_000),
	}

	s := SummarizeConversions(customers)
	if s.ConvertedCustomers != 1 {
		t.Errorf("ConvertedCustomers = %d, want 1", s.ConvertedCustomers)
	}
	if s.ConvertedRevenue != 75_000 {
		t.Errorf("ConvertedRevenue = %v, want 75000", s.ConvertedRevenue)
	}
	if s.ConversionRate != "25.0" {
		t.Errorf("ConversionRate = %q, want \"25.0\"", s.ConversionRate)
	}
}

// Three-customer scenario: one open lead with interest, one converted buyer
// without interest data, one Closed Won lead whose interest must not count as
// active pipeline.
func TestConversionScenario(t *testing.T) {
	customers := []entity.Customer{
		interestedCustomer(entity.LeadStatusQualified, "1L-2L"),
		convertedCustomer(75_000),
		interestedCustomer(entity.LeadStatusClosedWon, "25K-50K", "50K-75K"),
	}

	s := SummarizeConversions(customers)
	if s.ConvertedRevenue != 75_000 {
		t.Errorf("ConvertedRevenue = %v, want 75000", s.ConvertedRevenue)
	}
	if s.ConvertedCustomers != 1 {
		t.Errorf("ConvertedCustomers = %d, want 1", s.ConvertedCustomers)
	}
	if s.ConversionRate != "33.3" {
		t.Errorf("ConversionRate = %q, want \"33.3\"", s.ConversionRate)
	}

	open := FilterOpen(customers)
	if got := AggregatePipelineValue(open); got != 150_000 {
		t.Errorf("active pipeline = %v, want 150000 (closed customer excluded)", got)
	}
	if got := AggregatePipelineValue(customers); got != 250_000 {
		t.Errorf("all-customer pipeline = %v, want 250000", got)
	}
}
