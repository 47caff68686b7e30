package pipeline

import (
	"testing"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
)

func TestPctChange(t *testing.T) {
	cases := []struct {
		current, previous, want float64
	}{
		{1500, 1000, 50},
		{500, 1000, -50},
		{1000, 1000, 0},
		{5000, 0, 100}, // zero-base convention
		{0, 0, 0},
		{1000, 3000, -66.7},
	}

	for _, tc := range cases {
		if got := PctChange(tc.current, tc.previous); got != tc.want {
			t.Errorf("PctChange(%v, %v) = %v, want %v", tc.current, tc.previous, got, tc.want)
		}
	}
}

func TestFilterOpenExcludesTerminalStatuses(t *testing.T) {
	customers := []entity.Customer{
		{LeadStatus: entity.LeadStatusNew},
		{LeadStatus: entity.LeadStatusClosedWon},
		{LeadStatus: entity.LeadStatusNegotiation},
		{LeadStatus: entity.LeadStatusClosedLost},
	}

	open := FilterOpen(customers)
	if len(open) != 2 {
		t.Fatalf("FilterOpen kept %d customers, want 2", len(open))
	}
	for _, c := range open {
		if c.LeadStatus == entity.LeadStatusClosedWon || c.LeadStatus == entity.LeadStatusClosedLost {
			t.Errorf("terminal status %q survived the open filter", c.LeadStatus)
		}
	}
}

func TestLeadSourceCountsOrdering(t *testing.T) {
	customers := []entity.Customer{
		{LeadSource: "Walk-in"},
		{LeadSource: "Referral"},
		{LeadSource: "Walk-in"},
		{LeadSource: "Instagram"},
		{LeadSource: "Referral"},
		{LeadSource: "Walk-in"},
		{LeadSource: ""},
	}

	rows := LeadSourceCounts(customers)
	want := []LabelCount{
		{Label: "Walk-in", Count: 3},
		{Label: "Referral", Count: 2},
		{Label: "Instagram", Count: 1},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
}

func TestLeadSourceCountsStableTies(t *testing.T) {
	customers := []entity.Customer{
		{LeadSource: "Referral"},
		{LeadSource: "Walk-in"},
		{LeadSource: "Instagram"},
		{LeadSource: "Walk-in"},
		{LeadSource: "Referral"},
		{LeadSource: "Instagram"},
	}

	rows := LeadSourceCounts(customers)
	// All tied at 2: first-seen order must be preserved.
	wantOrder := []string{"Referral", "Walk-in", "Instagram"}
	for i, label := range wantOrder {
		if rows[i].Label != label {
			t.Errorf("tie order broken at %d: got %q, want %q", i, rows[i].Label, label)
		}
	}
}

func TestCategoryConversionRates(t *testing.T) {
	paid := 50_000.0
	customers := []entity.Customer{
		{
			InterestCategories: entity.InterestCategories{{CategoryType: entity.CategoryGold}},
			PurchaseAmount:     &paid,
		},
		{InterestCategories: entity.InterestCategories{{CategoryType: entity.CategoryGold}}},
		{InterestCategories: entity.InterestCategories{{CategoryType: entity.CategoryDiamond}}},
		{InterestCategories: entity.InterestCategories{{CategoryType: entity.CategoryPolki}}},
	}

	rows := CategoryConversionRates(customers)
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}

	// Worst performers first; Diamond and Polki tie at 0.0 and keep
	// first-seen order, Gold (50.0) comes last.
	if rows[0].Label != entity.CategoryDiamond || rows[0].Rate != "0.0" {
		t.Errorf("row 0 = %+v, want Diamond at 0.0", rows[0])
	}
	if rows[1].Label != entity.CategoryPolki || rows[1].Rate != "0.0" {
		t.Errorf("row 1 = %+v, want Polki at 0.0", rows[1])
	}
	if rows[2].Label != entity.CategoryGold || rows[2].Rate != "50.0" || rows[2].Seen != 2 || rows[2].Converted != 1 {
		t.Errorf("row 2 = %+v, want Gold 1/2 converted", rows[2])
	}
}

func TestCategoryConversionRatesCountsCustomerOncePerCategory(t *testing.T) {
	customers := []entity.Customer{
		{
			InterestCategories: entity.InterestCategories{
				{CategoryType: entity.CategoryGold},
				{CategoryType: entity.CategoryGold},
			},
		},
	}

	rows := CategoryConversionRates(customers)
	if len(rows) != 1 || rows[0].Seen != 1 {
		t.Fatalf("duplicate categories on one customer inflated seen-count: %+v", rows)
	}
}

func TestComposeKPIs(t *testing.T) {
	customers := []entity.Customer{
		interestedCustomer(entity.LeadStatusQualified, "1L-2L"),
		convertedCustomer(75_000),
		interestedCustomer(entity.LeadStatusClosedWon, "25K-50K", "50K-75K"),
	}
	customers[0].LeadSource = "Walk-in"
	customers[1].LeadSource = "Referral"
	customers[2].LeadSource = "Walk-in"

	rec := ComposeKPIs(KPIInput{
		Customers:        customers,
		YTD:              PeriodSums{Current: 300_000, Previous: 200_000},
		MTD:              PeriodSums{Current: 75_000, Previous: 0},
		ShowroomCount:    3,
		ManagerCount:     4,
		SalespersonCount: 12,
	})

	if rec.TotalCustomers != 3 || rec.ShowroomCount != 3 || rec.ManagerCount != 4 || rec.SalespersonCount != 12 {
		t.Errorf("counts wrong: %+v", rec)
	}
	if rec.OpenOpportunities != 1 {
		t.Errorf("OpenOpportunities = %d, want 1", rec.OpenOpportunities)
	}
	if rec.ActivePipelineValue != 150_000 {
		t.Errorf("ActivePipelineValue = %v, want 150000", rec.ActivePipelineValue)
	}
	if rec.ActivePipelineAmount != "₹1,50,000" {
		t.Errorf("ActivePipelineAmount = %q, want ₹1,50,000", rec.ActivePipelineAmount)
	}
	if rec.ConvertedRevenue != 75_000 || rec.ConvertedCustomers != 1 {
		t.Errorf("conversion figures wrong: %+v", rec)
	}
	if rec.ConversionRate != "33.3" {
		t.Errorf("ConversionRate = %q, want \"33.3\"", rec.ConversionRate)
	}
	if rec.YTDChangePct != 50 {
		t.Errorf("YTDChangePct = %v, want 50", rec.YTDChangePct)
	}
	if rec.MTDChangePct != 100 {
		t.Errorf("MTDChangePct = %v, want 100 (zero-base convention)", rec.MTDChangePct)
	}
	if len(rec.LeadSources) != 2 || rec.LeadSources[0].Label != "Walk-in" {
		t.Errorf("LeadSources = %+v, want Walk-in first", rec.LeadSources)
	}
}
