package pipeline

import (
	"math"
	"sort"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
)

// PctChange compares a current-period sum against the matching prior-period
// sum and returns the percentage change rounded to one decimal.
//
// A positive current against a zero base reports 100. That is the dashboard
// display convention for a missing baseline, not a derived fact.
func PctChange(current, previous float64) float64 {
	if previous > 0 {
		return math.Round((current-previous)/previous*1000) / 10
	}
	if current > 0 {
		return 100
	}
	return 0
}

// FilterOpen returns the customers still in a non-terminal funnel stage.
// Closed Won / Closed Lost never contribute to open-opportunity counts or
// active pipeline value, whatever their interest data says.
func FilterOpen(customers []entity.Customer) []entity.Customer {
	open := make([]entity.Customer, 0, len(customers))
	for i := range customers {
		if entity.IsOpenLeadStatus(customers[i].LeadStatus) {
			open = append(open, customers[i])
		}
	}
	return open
}

// LabelCount one row of a grouped breakdown
type LabelCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CategoryRate per-category conversion breakdown row
type CategoryRate struct {
	Label     string `json:"label"`
	Seen      int    `json:"seen"`
	Converted int    `json:"converted"`
	Rate      string `json:"rate"`
}

// LeadSourceCounts groups customers by lead source, most common first.
// Ties keep first-seen order.
func LeadSourceCounts(customers []entity.Customer) []LabelCount {
	return countByLabel(customers, func(c *entity.Customer) string { return c.LeadSource })
}

// WalkoutReasonCounts groups walked-out customers by recorded reason, most
// common first. Customers without a reason are skipped.
func WalkoutReasonCounts(customers []entity.Customer) []LabelCount {
	return countByLabel(customers, func(c *entity.Customer) string { return c.WalkoutReason })
}

func countByLabel(customers []entity.Customer, key func(*entity.Customer) string) []LabelCount {
	index := make(map[string]int)
	var rows []LabelCount
	for i := range customers {
		label := key(&customers[i])
		if label == "" {
			continue
		}
		at, ok := index[label]
		if !ok {
			at = len(rows)
			index[label] = at
			rows = append(rows, LabelCount{Label: label})
		}
		rows[at].Count++
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Count > rows[j].Count })
	return rows
}

// CategoryConversionRates computes, per interest category type, how many
// customers recorded interest in it and how many of those converted. Sorted
// ascending by rate so the worst-performing category surfaces first; ties
// keep first-seen order.
func CategoryConversionRates(customers []entity.Customer) []CategoryRate {
	index := make(map[string]int)
	var rows []CategoryRate
	for i := range customers {
		c := &customers[i]
		converted := c.PurchaseAmount != nil && *c.PurchaseAmount > 0
		seen := make(map[string]bool)
		for _, cat := range c.InterestCategories {
			if cat.CategoryType == "" || seen[cat.CategoryType] {
				continue
			}
			seen[cat.CategoryType] = true
			at, ok := index[cat.CategoryType]
			if !ok {
				at = len(rows)
				index[cat.CategoryType] = at
				rows = append(rows, CategoryRate{Label: cat.CategoryType})
			}
			rows[at].Seen++
			if converted {
				rows[at].Converted++
			}
		}
	}
	for i := range rows {
		rows[i].Rate = rateString(rows[i].Converted, rows[i].Seen)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		ri := float64(rows[i].Converted) / float64(rows[i].Seen)
		rj := float64(rows[j].Converted) / float64(rows[j].Seen)
		return ri < rj
	})
	return rows
}

// PeriodSums current-window and matching prior-year-window transaction totals
type PeriodSums struct {
	Current  float64 `json:"current"`
	Previous float64 `json:"previous"`
}

// KPIInput everything the composer needs, already fetched and scoped by the
// caller: the customer set visible to the requesting role, the time-windowed
// transaction sums, and organizational counts.
type KPIInput struct {
	Customers        []entity.Customer
	YTD              PeriodSums
	MTD              PeriodSums
	ShowroomCount    int64
	ManagerCount     int64
	SalespersonCount int64
}

// KPIRecord the display-ready dashboard figures. Plain data, no behavior.
type KPIRecord struct {
	ShowroomCount    int64 `json:"showroom_count"`
	ManagerCount     int64 `json:"manager_count"`
	SalespersonCount int64 `json:"salesperson_count"`
	TotalCustomers   int   `json:"total_customers"`

	OpenOpportunities    int     `json:"open_opportunities"`
	ActivePipelineValue  float64 `json:"active_pipeline_value"`
	ActivePipelineAmount string  `json:"active_pipeline_amount"`

	ConvertedCustomers     int     `json:"converted_customers"`
	ConvertedRevenue       float64 `json:"converted_revenue"`
	ConvertedRevenueAmount string  `json:"converted_revenue_amount"`
	ConversionRate         string  `json:"conversion_rate"`

	YTDSales       float64 `json:"ytd_sales"`
	YTDSalesAmount string  `json:"ytd_sales_amount"`
	YTDChangePct   float64 `json:"ytd_change_pct"`
	MTDSales       float64 `json:"mtd_sales"`
	MTDSalesAmount string  `json:"mtd_sales_amount"`
	MTDChangePct   float64 `json:"mtd_change_pct"`

	LeadSources    []LabelCount   `json:"lead_sources"`
	CategoryRates  []CategoryRate `json:"category_rates"`
	WalkoutReasons []LabelCount   `json:"walkout_reasons"`
}

// ComposeKPIs assembles the dashboard KPI record. Active pipeline value is
// aggregated over open opportunities only; conversion metrics run over the
// whole scoped set.
func ComposeKPIs(in KPIInput) KPIRecord {
	open := FilterOpen(in.Customers)
	pipelineValue := AggregatePipelineValue(open)
	conv := SummarizeConversions(in.Customers)

	return KPIRecord{
		ShowroomCount:    in.ShowroomCount,
		ManagerCount:     in.ManagerCount,
		SalespersonCount: in.SalespersonCount,
		TotalCustomers:   conv.TotalCustomers,

		OpenOpportunities:    len(open),
		ActivePipelineValue:  pipelineValue,
		ActivePipelineAmount: FormatINR(pipelineValue),

		ConvertedCustomers:     conv.ConvertedCustomers,
		ConvertedRevenue:       conv.ConvertedRevenue,
		ConvertedRevenueAmount: FormatINR(conv.ConvertedRevenue),
		ConversionRate:         conv.ConversionRate,

		YTDSales:       in.YTD.Current,
		YTDSalesAmount: FormatINR(in.YTD.Current),
		YTDChangePct:   PctChange(in.YTD.Current, in.YTD.Previous),
		MTDSales:       in.MTD.Current,
		MTDSalesAmount: FormatINR(in.MTD.Current),
		MTDChangePct:   PctChange(in.MTD.Current, in.MTD.Previous),

		LeadSources:    LeadSourceCounts(in.Customers),
		CategoryRates:  CategoryConversionRates(in.Customers),
		WalkoutReasons: WalkoutReasonCounts(in.Customers),
	}
}
