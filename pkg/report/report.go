// Package report renders aggregate results and enrichment statistics into
// the fixed-layout text report.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/somrent17-glitch/sales-analytics-system/pkg/analytics"
	"github.com/somrent17-glitch/sales-analytics-system/pkg/enrich"
	"github.com/somrent17-glitch/sales-analytics-system/pkg/sales"
)

const lineWidth = 50

// Options control report rendering.
type Options struct {
	Currency     string    // currency symbol, e.g. "₹"
	TopN         int       // product/customer table size; 0 means default
	LowThreshold int       // low-performer quantity threshold; 0 means default
	Now          time.Time // timestamp printed in the header
}

// Generate builds the full sales report from the validated transaction set
// and the enriched record set. Section order is fixed: header, overall
// summary, region performance, top products, top customers, daily trend,
// performance analysis, enrichment summary.
func Generate(transactions []sales.Transaction, enriched []enrich.EnrichedTransaction, opts Options) string {
	if opts.Currency == "" {
		opts.Currency = "₹"
	}
	if opts.TopN <= 0 {
		opts.TopN = analytics.DefaultTopN
	}
	if opts.LowThreshold <= 0 {
		opts.LowThreshold = analytics.DefaultLowThreshold
	}
	if opts.Now.IsZero() {
		opts.Now = time.Now()
	}

	var sb strings.Builder
	rule := strings.Repeat("=", lineWidth)
	thin := strings.Repeat("-", lineWidth)

	// Header
	sb.WriteString(rule + "\n")
	sb.WriteString("SALES ANALYTICS REPORT\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n", opts.Now.Format("2006-01-02 15:04:05")))
	sb.WriteString(fmt.Sprintf("Records Processed: %d\n", len(transactions)))
	sb.WriteString(rule + "\n\n")

	writeOverallSummary(&sb, thin, transactions, opts)
	regions := writeRegionPerformance(&sb, thin, transactions, opts)
	writeTopProducts(&sb, thin, transactions, opts)
	writeTopCustomers(&sb, thin, transactions, opts)
	writeDailyTrend(&sb, thin, transactions, opts)
	writePerformanceAnalysis(&sb, thin, transactions, regions, opts)
	writeEnrichmentSummary(&sb, thin, enriched)

	sb.WriteString(rule + "\n")
	sb.WriteString("END OF REPORT\n")
	sb.WriteString(rule + "\n")

	return sb.String()
}

func writeOverallSummary(sb *strings.Builder, thin string, transactions []sales.Transaction, opts Options) {
	totalRevenue := analytics.TotalRevenue(transactions)
	avgOrderValue := 0.0
	if len(transactions) > 0 {
		avgOrderValue = totalRevenue / float64(len(transactions))
	}

	minDate, maxDate := "N/A", "N/A"
	for i, t := range transactions {
		if i == 0 || t.Date < minDate {
			minDate = t.Date
		}
		if i == 0 || t.Date > maxDate {
			maxDate = t.Date
		}
	}

	sb.WriteString("OVERALL SUMMARY\n")
	sb.WriteString(thin + "\n")
	sb.WriteString(fmt.Sprintf("Total Revenue: %s%s\n", opts.Currency, formatAmount(totalRevenue)))
	sb.WriteString(fmt.Sprintf("Total Transactions: %d\n", len(transactions)))
	sb.WriteString(fmt.Sprintf("Average Order Value: %s%s\n", opts.Currency, formatAmount(avgOrderValue)))
	sb.WriteString(fmt.Sprintf("Date Range: %s to %s\n\n", minDate, maxDate))
}

func writeRegionPerformance(sb *strings.Builder, thin string, transactions []sales.Transaction, opts Options) []analytics.RegionStats {
	regions := analytics.RegionWiseSales(transactions)

	sb.WriteString("REGION-WISE PERFORMANCE\n")
	sb.WriteString(thin + "\n")
	sb.WriteString(fmt.Sprintf("%-15s %-20s %-12s %-12s\n", "Region", "Sales", "% of Total", "Transactions"))
	sb.WriteString(thin + "\n")

	for _, r := range regions {
		sb.WriteString(fmt.Sprintf("%-15s %s%15s  %7.2f%%  %10d\n",
			r.Region, opts.Currency, formatAmount(r.TotalSales), r.Percentage, r.TransactionCount))
	}
	sb.WriteString("\n")

	return regions
}

func writeTopProducts(sb *strings.Builder, thin string, transactions []sales.Transaction, opts Options) {
	top := analytics.TopSellingProducts(transactions, opts.TopN)

	sb.WriteString(fmt.Sprintf("TOP %d PRODUCTS\n", opts.TopN))
	sb.WriteString(thin + "\n")
	sb.WriteString(fmt.Sprintf("%-6s %-25s %-12s %-15s\n", "Rank", "Product Name", "Quantity", "Revenue"))
	sb.WriteString(thin + "\n")

	for i, p := range top {
		sb.WriteString(fmt.Sprintf("%-6d %-25s %-12d %s%12s\n",
			i+1, p.Name, p.Quantity, opts.Currency, formatAmount(p.Revenue)))
	}
	sb.WriteString("\n")
}

func writeTopCustomers(sb *strings.Builder, thin string, transactions []sales.Transaction, opts Options) {
	customers := analytics.CustomerAnalysis(transactions)
	if len(customers) > opts.TopN {
		customers = customers[:opts.TopN]
	}

	sb.WriteString(fmt.Sprintf("TOP %d CUSTOMERS\n", opts.TopN))
	sb.WriteString(thin + "\n")
	sb.WriteString(fmt.Sprintf("%-6s %-15s %-20s %-10s\n", "Rank", "Customer ID", "Total Spent", "Orders"))
	sb.WriteString(thin + "\n")

	for i, c := range customers {
		sb.WriteString(fmt.Sprintf("%-6d %-15s %s%15s  %8d\n",
			i+1, c.CustomerID, opts.Currency, formatAmount(c.TotalSpent), c.PurchaseCount))
	}
	sb.WriteString("\n")
}

func writeDailyTrend(sb *strings.Builder, thin string, transactions []sales.Transaction, opts Options) {
	days := analytics.DailySalesTrend(transactions)

	sb.WriteString("DAILY SALES TREND\n")
	sb.WriteString(thin + "\n")
	sb.WriteString(fmt.Sprintf("%-15s %-20s %-13s %-16s\n", "Date", "Revenue", "Transactions", "Unique Customers"))
	sb.WriteString(thin + "\n")

	for _, d := range days {
		sb.WriteString(fmt.Sprintf("%-15s %s%15s  %12d  %15d\n",
			d.Date, opts.Currency, formatAmount(d.Revenue), d.TransactionCount, d.UniqueCustomers))
	}
	sb.WriteString("\n")
}

func writePerformanceAnalysis(sb *strings.Builder, thin string, transactions []sales.Transaction, regions []analytics.RegionStats, opts Options) {
	sb.WriteString("PERFORMANCE ANALYSIS\n")
	sb.WriteString(thin + "\n")

	peakDate, peakRevenue, _ := analytics.PeakSalesDay(transactions)
	if peakDate != "" {
		sb.WriteString(fmt.Sprintf("Best Selling Day: %s (%s%s)\n", peakDate, opts.Currency, formatAmount(peakRevenue)))
	} else {
		sb.WriteString("Best Selling Day: N/A\n")
	}

	low := analytics.LowPerformingProducts(transactions, opts.LowThreshold)
	if len(low) > 0 {
		sb.WriteString(fmt.Sprintf("\nLow Performing Products (< %d units sold):\n", opts.LowThreshold))
		for _, p := range low {
			sb.WriteString(fmt.Sprintf("  - %s: %d units (%s%s)\n", p.Name, p.Quantity, opts.Currency, formatAmount(p.Revenue)))
		}
	} else {
		sb.WriteString("Low Performing Products: None\n")
	}

	sb.WriteString("\nAverage Transaction Value per Region:\n")
	for _, r := range regions {
		avg := 0.0
		if r.TransactionCount > 0 {
			avg = r.TotalSales / float64(r.TransactionCount)
		}
		sb.WriteString(fmt.Sprintf("  - %s: %s%s\n", r.Region, opts.Currency, formatAmount(avg)))
	}
	sb.WriteString("\n")
}

func writeEnrichmentSummary(sb *strings.Builder, thin string, enriched []enrich.EnrichedTransaction) {
	matched := 0
	unmatchedProducts := make(map[string]bool)
	for _, e := range enriched {
		if e.Matched() {
			matched++
		} else {
			unmatchedProducts[e.ProductID] = true
		}
	}

	successRate := 0.0
	if len(enriched) > 0 {
		successRate = float64(matched) / float64(len(enriched)) * 100
	}

	sb.WriteString("API ENRICHMENT SUMMARY\n")
	sb.WriteString(thin + "\n")
	sb.WriteString(fmt.Sprintf("Total Products Enriched: %d/%d\n", matched, len(enriched)))
	sb.WriteString(fmt.Sprintf("Success Rate: %.2f%%\n", successRate))

	if len(unmatchedProducts) > 0 {
		ids := make([]string, 0, len(unmatchedProducts))
		for id := range unmatchedProducts {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		sb.WriteString(fmt.Sprintf("Products Not Enriched: %s\n", strings.Join(ids, ", ")))
	} else {
		sb.WriteString("Products Not Enriched: None\n")
	}
	sb.WriteString("\n")
}

// formatAmount formats a currency value with two decimal places and
// thousands separators ("1234567.8" -> "1,234,567.80").
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	dot := strings.Index(s, ".")
	intPart, fracPart := s[:dot], s[dot:]

	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)

	return sign + strings.Join(groups, ",") + fracPart
}
