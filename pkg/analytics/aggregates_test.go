package analytics

import (
	"reflect"
	"testing"

	"github.com/somrent17-glitch/sales-analytics-system/pkg/sales"
)

// sampleTransactions returns a small validated set spanning three regions,
// four products and three days.
func sampleTransactions() []sales.Transaction {
	return []sales.Transaction{
		{TransactionID: "T001", Date: "2024-12-01", ProductID: "P101", ProductName: "Laptop", Quantity: 2, UnitPrice: 45000, CustomerID: "C001", Region: "North"},
		{TransactionID: "T002", Date: "2024-12-01", ProductID: "P102", ProductName: "Mouse", Quantity: 5, UnitPrice: 500, CustomerID: "C002", Region: "South"},
		{TransactionID: "T003", Date: "2024-12-02", ProductID: "P103", ProductName: "Keyboard", Quantity: 3, UnitPrice: 1500, CustomerID: "C001", Region: "North"},
		{TransactionID: "T004", Date: "2024-12-02", ProductID: "P102", ProductName: "Mouse", Quantity: 2, UnitPrice: 500, CustomerID: "C003", Region: "East"},
		{TransactionID: "T005", Date: "2024-12-03", ProductID: "P104", ProductName: "Monitor", Quantity: 1, UnitPrice: 12000, CustomerID: "C002", Region: "South"},
	}
}

func TestTotalRevenue(t *testing.T) {
	txns := []sales.Transaction{
		{Quantity: 2, UnitPrice: 45000},
		{Quantity: 5, UnitPrice: 500},
	}

	if got := TotalRevenue(txns); got != 92500 {
		t.Errorf("TotalRevenue() = %v, expected 92500", got)
	}

	if got := TotalRevenue(nil); got != 0 {
		t.Errorf("TotalRevenue(nil) = %v, expected 0", got)
	}
}

func TestRegionWiseSales(t *testing.T) {
	regions := RegionWiseSales(sampleTransactions())

	if len(regions) != 3 {
		t.Fatalf("RegionWiseSales() returned %d regions, expected 3", len(regions))
	}

	// North: 90000 + 4500 = 94500; South: 2500 + 12000 = 14500; East: 1000
	if regions[0].Region != "North" || regions[0].TotalSales != 94500 {
		t.Errorf("regions[0] = %+v, expected North with 94500", regions[0])
	}
	if regions[1].Region != "South" || regions[1].TotalSales != 14500 {
		t.Errorf("regions[1] = %+v, expected South with 14500", regions[1])
	}
	if regions[2].Region != "East" || regions[2].TotalSales != 1000 {
		t.Errorf("regions[2] = %+v, expected East with 1000", regions[2])
	}

	if regions[0].TransactionCount != 2 {
		t.Errorf("North count = %d, expected 2", regions[0].TransactionCount)
	}

	total := 94500.0 + 14500.0 + 1000.0
	wantPct := 94500.0 / total * 100
	if regions[0].Percentage != wantPct {
		t.Errorf("North percentage = %v, expected %v", regions[0].Percentage, wantPct)
	}
}

func TestRegionWiseSalesZeroRevenue(t *testing.T) {
	// Percentages must stay 0 instead of dividing by zero. Such records are
	// rejected by validation; the aggregates still have defined behavior.
	txns := []sales.Transaction{
		{Region: "North", Quantity: 0, UnitPrice: 0},
	}

	regions := RegionWiseSales(txns)
	if len(regions) != 1 {
		t.Fatalf("RegionWiseSales() returned %d regions, expected 1", len(regions))
	}
	if regions[0].Percentage != 0 {
		t.Errorf("Percentage = %v, expected 0", regions[0].Percentage)
	}
}

func TestRegionWiseSalesTieOrder(t *testing.T) {
	txns := []sales.Transaction{
		{Region: "West", Quantity: 1, UnitPrice: 100},
		{Region: "East", Quantity: 1, UnitPrice: 100},
	}

	regions := RegionWiseSales(txns)
	if regions[0].Region != "West" {
		t.Errorf("tie broken against input order: got %q first, expected West", regions[0].Region)
	}
}

func TestTopSellingProducts(t *testing.T) {
	txns := []sales.Transaction{
		{ProductName: "Laptop", Quantity: 2, UnitPrice: 45000},
		{ProductName: "Mouse", Quantity: 5, UnitPrice: 500},
	}

	products := TopSellingProducts(txns, 5)
	if len(products) != 2 {
		t.Fatalf("TopSellingProducts() returned %d products, expected 2", len(products))
	}
	if products[0].Name != "Mouse" || products[0].Quantity != 5 {
		t.Errorf("products[0] = %+v, expected Mouse with quantity 5", products[0])
	}
	if products[1].Name != "Laptop" || products[1].Quantity != 2 {
		t.Errorf("products[1] = %+v, expected Laptop with quantity 2", products[1])
	}
	if products[0].Revenue != 2500 {
		t.Errorf("Mouse revenue = %v, expected 2500", products[0].Revenue)
	}
}

func TestTopSellingProductsLimit(t *testing.T) {
	products := TopSellingProducts(sampleTransactions(), 2)
	if len(products) != 2 {
		t.Fatalf("TopSellingProducts(n=2) returned %d products, expected 2", len(products))
	}
	// Mouse 7, Keyboard 3
	if products[0].Name != "Mouse" || products[1].Name != "Keyboard" {
		t.Errorf("top 2 = %q, %q; expected Mouse, Keyboard", products[0].Name, products[1].Name)
	}

	// n <= 0 falls back to the default
	products = TopSellingProducts(sampleTransactions(), 0)
	if len(products) != 4 {
		t.Errorf("TopSellingProducts(n=0) returned %d products, expected all 4", len(products))
	}
}

func TestLowPerformingProducts(t *testing.T) {
	low := LowPerformingProducts(sampleTransactions(), 3)

	// Strictly below 3: Laptop (2), Monitor (1). Ascending by quantity.
	if len(low) != 2 {
		t.Fatalf("LowPerformingProducts() returned %d products, expected 2", len(low))
	}
	if low[0].Name != "Monitor" || low[1].Name != "Laptop" {
		t.Errorf("low = %q, %q; expected Monitor, Laptop", low[0].Name, low[1].Name)
	}
}

func TestLowPerformingProductsBoundary(t *testing.T) {
	txns := []sales.Transaction{
		{ProductName: "Exactly", Quantity: 10, UnitPrice: 1},
		{ProductName: "Below", Quantity: 9, UnitPrice: 1},
	}

	low := LowPerformingProducts(txns, 0) // default threshold 10
	if len(low) != 1 || low[0].Name != "Below" {
		t.Errorf("low = %v, expected only Below (threshold is exclusive)", low)
	}
}

func TestCustomerAnalysis(t *testing.T) {
	customers := CustomerAnalysis(sampleTransactions())

	if len(customers) != 3 {
		t.Fatalf("CustomerAnalysis() returned %d customers, expected 3", len(customers))
	}

	// C001: 90000 + 4500 = 94500 over 2 purchases
	top := customers[0]
	if top.CustomerID != "C001" {
		t.Fatalf("customers[0] = %q, expected C001", top.CustomerID)
	}
	if top.TotalSpent != 94500 {
		t.Errorf("TotalSpent = %v, expected 94500", top.TotalSpent)
	}
	if top.PurchaseCount != 2 {
		t.Errorf("PurchaseCount = %d, expected 2", top.PurchaseCount)
	}
	if top.AvgOrderValue != 47250 {
		t.Errorf("AvgOrderValue = %v, expected 47250", top.AvgOrderValue)
	}
	if !reflect.DeepEqual(top.Products, []string{"Keyboard", "Laptop"}) {
		t.Errorf("Products = %v, expected [Keyboard Laptop]", top.Products)
	}
}

func TestDailySalesTrend(t *testing.T) {
	// Input deliberately out of date order
	txns := []sales.Transaction{
		{Date: "2024-12-03", CustomerID: "C002", Quantity: 1, UnitPrice: 12000},
		{Date: "2024-12-01", CustomerID: "C001", Quantity: 2, UnitPrice: 45000},
		{Date: "2024-12-01", CustomerID: "C002", Quantity: 5, UnitPrice: 500},
		{Date: "2024-12-01", CustomerID: "C001", Quantity: 1, UnitPrice: 1000},
	}

	days := DailySalesTrend(txns)
	if len(days) != 2 {
		t.Fatalf("DailySalesTrend() returned %d days, expected 2", len(days))
	}

	first := days[0]
	if first.Date != "2024-12-01" {
		t.Errorf("days[0].Date = %q, expected 2024-12-01", first.Date)
	}
	if first.Revenue != 93500 {
		t.Errorf("days[0].Revenue = %v, expected 93500", first.Revenue)
	}
	if first.TransactionCount != 3 {
		t.Errorf("days[0].TransactionCount = %d, expected 3", first.TransactionCount)
	}
	if first.UniqueCustomers != 2 {
		t.Errorf("days[0].UniqueCustomers = %d, expected 2", first.UniqueCustomers)
	}
}

func TestPeakSalesDay(t *testing.T) {
	date, revenue, count := PeakSalesDay(sampleTransactions())

	if date != "2024-12-01" {
		t.Errorf("date = %q, expected 2024-12-01", date)
	}
	if revenue != 92500 {
		t.Errorf("revenue = %v, expected 92500", revenue)
	}
	if count != 2 {
		t.Errorf("count = %d, expected 2", count)
	}
}

func TestPeakSalesDayTie(t *testing.T) {
	txns := []sales.Transaction{
		{Date: "2024-12-05", CustomerID: "C001", Quantity: 1, UnitPrice: 100},
		{Date: "2024-12-01", CustomerID: "C001", Quantity: 1, UnitPrice: 100},
	}

	date, _, _ := PeakSalesDay(txns)
	if date != "2024-12-05" {
		t.Errorf("tie should keep the first date encountered: got %q, expected 2024-12-05", date)
	}
}

func TestPeakSalesDayEmpty(t *testing.T) {
	date, revenue, count := PeakSalesDay(nil)
	if date != "" || revenue != 0 || count != 0 {
		t.Errorf("PeakSalesDay(nil) = (%q, %v, %d), expected (\"\", 0, 0)", date, revenue, count)
	}
}
