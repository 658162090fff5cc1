// Package finance turns stored invoices into income, cost and profit
// rollups for the dashboard.
package finance

import (
	"sort"
	"time"

	"github.com/labcore/lims/internal/domain/invoice"
)

// CostInfo is the slice of a catalog entry finance cares about.
type CostInfo struct {
	EstimatedCost float64
	Category      string
}

// Catalog maps test codes to their cost and category. Unknown codes
// cost 0 and fall into the "Other" category.
type Catalog map[string]CostInfo

// Summary is the headline rollup over one filtered invoice set.
type Summary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalCost     float64 `json:"totalCost"`
	TotalProfit   float64 `json:"totalProfit"`
	ProfitMargin  float64 `json:"profitMargin"`
	AverageTicket float64 `json:"averageTicket"`
	InvoiceCount  int     `json:"invoiceCount"`
}

// Summarize computes the headline numbers. Profit is accumulated per
// line item so a partially discounted invoice never double counts.
func Summarize(invoices []*invoice.Record, cat Catalog) Summary {
	var s Summary
	s.InvoiceCount = len(invoices)
	for _, inv := range invoices {
		s.TotalIncome += inv.GrandTotal
		for _, li := range inv.LineItems {
			cost := cat[li.TestCode].EstimatedCost * float64(li.Quantity)
			s.TotalCost += cost
			s.TotalProfit += li.Total - cost
		}
	}
	if s.InvoiceCount > 0 {
		s.AverageTicket = s.TotalIncome / float64(s.InvoiceCount)
	}
	if s.TotalIncome > 0 {
		s.ProfitMargin = s.TotalProfit / s.TotalIncome * 100
	}
	return s
}

// DayBucket accumulates one calendar day's invoices.
type DayBucket struct {
	Date         string  `json:"date"`
	Income       float64 `json:"income"`
	InvoiceCount int     `json:"invoiceCount"`
}

// ByDay groups invoices by calendar day, ascending.
func ByDay(invoices []*invoice.Record) []DayBucket {
	index := map[string]int{}
	var buckets []DayBucket
	for _, inv := range invoices {
		day := inv.CreatedAt.Format("2006-01-02")
		i, ok := index[day]
		if !ok {
			i = len(buckets)
			index[day] = i
			buckets = append(buckets, DayBucket{Date: day})
		}
		buckets[i].Income += inv.GrandTotal
		buckets[i].InvoiceCount++
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Date < buckets[j].Date })
	return buckets
}

// CategoryBucket accumulates one test category's line items.
type CategoryBucket struct {
	Category string  `json:"category"`
	Income   float64 `json:"income"`
	Cost     float64 `json:"cost"`
	Profit   float64 `json:"profit"`
	Count    int     `json:"count"`
}

// ByCategory groups line items by catalog category, alphabetical, with
// unknown codes under "Other".
func ByCategory(invoices []*invoice.Record, cat Catalog) []CategoryBucket {
	index := map[string]int{}
	var buckets []CategoryBucket
	for _, inv := range invoices {
		for _, li := range inv.LineItems {
			info, known := cat[li.TestCode]
			category := info.Category
			if !known || category == "" {
				category = "Other"
			}
			i, ok := index[category]
			if !ok {
				i = len(buckets)
				index[category] = i
				buckets = append(buckets, CategoryBucket{Category: category})
			}
			cost := info.EstimatedCost * float64(li.Quantity)
			buckets[i].Income += li.Total
			buckets[i].Cost += cost
			buckets[i].Count++
		}
	}
	for i := range buckets {
		buckets[i].Profit = buckets[i].Income - buckets[i].Cost
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Category < buckets[j].Category })
	return buckets
}

// Filter names accepted by the summary endpoint.
const (
	FilterToday  = "today"
	FilterWeek   = "week"
	FilterMonth  = "month"
	FilterCustom = "custom"
)

// Range translates a filter name into a [from, to) window. The custom
// filter (and any unknown name) applies no bounds.
func Range(filter string, now time.Time) (from, to time.Time) {
	switch filter {
	case FilterToday:
		from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		to = from.AddDate(0, 0, 1)
	case FilterWeek:
		from = now.Add(-7 * 24 * time.Hour)
	case FilterMonth:
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to = from.AddDate(0, 1, 0)
	}
	return from, to
}
