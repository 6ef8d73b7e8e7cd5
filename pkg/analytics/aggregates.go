// Package analytics computes summary aggregates over validated sales
// transactions.
//
// Every function takes the transaction set as its only input and owns its
// own accumulators, so the functions are pure: callable in any order, any
// number of times, with no shared state. Grouping uses insertion-ordered
// accumulators (a keys index plus a slice), so ties in sorted output always
// resolve to the group encountered first in the input.
package analytics

import (
	"sort"

	"github.com/somrent17-glitch/sales-analytics-system/pkg/sales"
)

// Defaults for caller-supplied limits.
const (
	DefaultTopN         = 5
	DefaultLowThreshold = 10
)

// RegionStats holds per-region totals and the region's share of revenue.
type RegionStats struct {
	Region           string
	TotalSales       float64
	TransactionCount int
	Percentage       float64
}

// ProductSales holds per-product quantity and revenue totals.
type ProductSales struct {
	Name     string
	Quantity int
	Revenue  float64
}

// CustomerStats holds per-customer purchase totals.
type CustomerStats struct {
	CustomerID    string
	TotalSpent    float64
	PurchaseCount int
	AvgOrderValue float64
	Products      []string // sorted distinct product names
}

// DailyStats holds per-date totals.
type DailyStats struct {
	Date             string
	Revenue          float64
	TransactionCount int
	UniqueCustomers  int
}

// TotalRevenue returns the sum of line amounts. 0 for an empty set.
func TotalRevenue(transactions []sales.Transaction) float64 {
	total := 0.0
	for _, t := range transactions {
		total += t.Amount()
	}
	return total
}

// RegionWiseSales groups transactions by region and returns the groups
// ordered by total sales descending. Each group carries its percentage of
// total revenue; percentages are 0 when total revenue is 0. Ties keep the
// region first seen in the input ahead.
func RegionWiseSales(transactions []sales.Transaction) []RegionStats {
	totalRevenue := TotalRevenue(transactions)

	index := make(map[string]int)
	var groups []RegionStats

	for _, t := range transactions {
		i, ok := index[t.Region]
		if !ok {
			i = len(groups)
			index[t.Region] = i
			groups = append(groups, RegionStats{Region: t.Region})
		}
		groups[i].TotalSales += t.Amount()
		groups[i].TransactionCount++
	}

	for i := range groups {
		if totalRevenue > 0 {
			groups[i].Percentage = groups[i].TotalSales / totalRevenue * 100
		}
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].TotalSales > groups[b].TotalSales
	})

	return groups
}

// productTotals accumulates per-product quantity and revenue in input order.
func productTotals(transactions []sales.Transaction) []ProductSales {
	index := make(map[string]int)
	var groups []ProductSales

	for _, t := range transactions {
		i, ok := index[t.ProductName]
		if !ok {
			i = len(groups)
			index[t.ProductName] = i
			groups = append(groups, ProductSales{Name: t.ProductName})
		}
		groups[i].Quantity += t.Quantity
		groups[i].Revenue += t.Amount()
	}

	return groups
}

// TopSellingProducts returns the top n products by total quantity sold,
// descending. n defaults to DefaultTopN when not positive. Ties keep the
// product first seen in the input ahead. Fewer than n distinct products
// yields all of them.
func TopSellingProducts(transactions []sales.Transaction, n int) []ProductSales {
	if n <= 0 {
		n = DefaultTopN
	}

	products := productTotals(transactions)
	sort.SliceStable(products, func(a, b int) bool {
		return products[a].Quantity > products[b].Quantity
	})

	if len(products) > n {
		products = products[:n]
	}
	return products
}

// LowPerformingProducts returns products whose total quantity sold is
// strictly below threshold, ascending by quantity. threshold defaults to
// DefaultLowThreshold when not positive.
func LowPerformingProducts(transactions []sales.Transaction, threshold int) []ProductSales {
	if threshold <= 0 {
		threshold = DefaultLowThreshold
	}

	var low []ProductSales
	for _, p := range productTotals(transactions) {
		if p.Quantity < threshold {
			low = append(low, p)
		}
	}

	sort.SliceStable(low, func(a, b int) bool {
		return low[a].Quantity < low[b].Quantity
	})

	return low
}

// CustomerAnalysis groups transactions by customer and returns per-customer
// spend totals ordered by total spent descending. The average order value is
// total spent over purchase count; any grouped customer has at least one
// purchase, so the division is always defined.
func CustomerAnalysis(transactions []sales.Transaction) []CustomerStats {
	type accumulator struct {
		spent    float64
		count    int
		products map[string]bool
	}

	index := make(map[string]int)
	var keys []string
	var accs []*accumulator

	for _, t := range transactions {
		i, ok := index[t.CustomerID]
		if !ok {
			i = len(accs)
			index[t.CustomerID] = i
			keys = append(keys, t.CustomerID)
			accs = append(accs, &accumulator{products: make(map[string]bool)})
		}
		accs[i].spent += t.Amount()
		accs[i].count++
		accs[i].products[t.ProductName] = true
	}

	customers := make([]CustomerStats, 0, len(accs))
	for i, acc := range accs {
		products := make([]string, 0, len(acc.products))
		for name := range acc.products {
			products = append(products, name)
		}
		sort.Strings(products)

		customers = append(customers, CustomerStats{
			CustomerID:    keys[i],
			TotalSpent:    acc.spent,
			PurchaseCount: acc.count,
			AvgOrderValue: acc.spent / float64(acc.count),
			Products:      products,
		})
	}

	sort.SliceStable(customers, func(a, b int) bool {
		return customers[a].TotalSpent > customers[b].TotalSpent
	})

	return customers
}

// dailyTotals accumulates per-date revenue, counts and distinct customers
// in input order.
func dailyTotals(transactions []sales.Transaction) []DailyStats {
	type accumulator struct {
		revenue   float64
		count     int
		customers map[string]bool
	}

	index := make(map[string]int)
	var keys []string
	var accs []*accumulator

	for _, t := range transactions {
		i, ok := index[t.Date]
		if !ok {
			i = len(accs)
			index[t.Date] = i
			keys = append(keys, t.Date)
			accs = append(accs, &accumulator{customers: make(map[string]bool)})
		}
		accs[i].revenue += t.Amount()
		accs[i].count++
		accs[i].customers[t.CustomerID] = true
	}

	days := make([]DailyStats, 0, len(accs))
	for i, acc := range accs {
		days = append(days, DailyStats{
			Date:             keys[i],
			Revenue:          acc.revenue,
			TransactionCount: acc.count,
			UniqueCustomers:  len(acc.customers),
		})
	}

	return days
}

// DailySalesTrend groups transactions by date and returns the days in
// chronological order. Dates are in YYYY-MM-DD format, so lexical order is
// calendar order.
func DailySalesTrend(transactions []sales.Transaction) []DailyStats {
	days := dailyTotals(transactions)
	sort.SliceStable(days, func(a, b int) bool {
		return days[a].Date < days[b].Date
	})
	return days
}

// PeakSalesDay returns the date with the highest revenue, along with that
// day's revenue and transaction count. An empty input yields ("", 0, 0).
//
// When two dates tie on revenue, the one encountered first in the input
// wins. This mirrors the behavior of the system this replaces; it is an
// arbitrary but stable choice, not a business rule.
func PeakSalesDay(transactions []sales.Transaction) (date string, revenue float64, count int) {
	for i, day := range dailyTotals(transactions) {
		if i == 0 || day.Revenue > revenue {
			date = day.Date
			revenue = day.Revenue
			count = day.TransactionCount
		}
	}
	return date, revenue, count
}
