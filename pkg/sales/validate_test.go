package sales

import (
	"reflect"
	"testing"
)

func validTxn() Transaction {
	return Transaction{
		TransactionID: "T001",
		Date:          "2024-12-01",
		ProductID:     "P101",
		ProductName:   "Laptop",
		Quantity:      2,
		UnitPrice:     45000.00,
		CustomerID:    "C001",
		Region:        "North",
	}
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Transaction)
		want   bool
	}{
		{"valid record", func(t *Transaction) {}, true},
		{"zero quantity", func(t *Transaction) { t.Quantity = 0 }, false},
		{"negative quantity", func(t *Transaction) { t.Quantity = -1 }, false},
		{"zero price", func(t *Transaction) { t.UnitPrice = 0 }, false},
		{"negative price", func(t *Transaction) { t.UnitPrice = -10 }, false},
		{"empty customer", func(t *Transaction) { t.CustomerID = "" }, false},
		{"empty region", func(t *Transaction) { t.Region = "" }, false},
		{"bad transaction prefix", func(t *Transaction) { t.TransactionID = "X001" }, false},
		{"bad product prefix", func(t *Transaction) { t.ProductID = "Q101" }, false},
		{"bad customer prefix", func(t *Transaction) { t.CustomerID = "D001" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := validTxn()
			tt.modify(&txn)
			if got := isValid(txn); got != tt.want {
				t.Errorf("isValid() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestValidateAndFilterNoFilters(t *testing.T) {
	txns := []Transaction{
		validTxn(),
		{TransactionID: "T002", ProductID: "P102", CustomerID: "C002", Region: "South", Quantity: 0, UnitPrice: 100},
		{TransactionID: "T003", ProductID: "P103", CustomerID: "C003", Region: "East", Quantity: 1, UnitPrice: 500},
	}

	final, invalid, summary := ValidateAndFilter(txns, FilterOptions{})

	if len(final) != 2 {
		t.Errorf("final count = %d, expected 2", len(final))
	}
	if invalid != 1 {
		t.Errorf("invalid = %d, expected 1", invalid)
	}

	want := FilterSummary{TotalInput: 3, Invalid: 1, Valid: 2, FinalCount: 2}
	if !reflect.DeepEqual(summary, want) {
		t.Errorf("summary = %+v, expected %+v", summary, want)
	}
}

func TestValidateAndFilterSequentialCounts(t *testing.T) {
	txns := []Transaction{
		// North, amount 90000
		{TransactionID: "T001", ProductID: "P101", CustomerID: "C001", Region: "North", Quantity: 2, UnitPrice: 45000},
		// North, amount 500
		{TransactionID: "T002", ProductID: "P102", CustomerID: "C002", Region: "North", Quantity: 1, UnitPrice: 500},
		// South, amount 2500 (removed by region before amount filter sees it)
		{TransactionID: "T003", ProductID: "P103", CustomerID: "C003", Region: "South", Quantity: 5, UnitPrice: 500},
	}

	minAmount := 1000.0
	final, invalid, summary := ValidateAndFilter(txns, FilterOptions{
		Region:    "North",
		MinAmount: &minAmount,
	})

	if invalid != 0 {
		t.Errorf("invalid = %d, expected 0", invalid)
	}
	if summary.FilteredByRegion != 1 {
		t.Errorf("FilteredByRegion = %d, expected 1", summary.FilteredByRegion)
	}
	if summary.FilteredByAmount != 1 {
		t.Errorf("FilteredByAmount = %d, expected 1", summary.FilteredByAmount)
	}
	if len(final) != 1 || final[0].TransactionID != "T001" {
		t.Errorf("final = %v, expected only T001", final)
	}
}

func TestValidateAndFilterAmountRange(t *testing.T) {
	txns := []Transaction{
		{TransactionID: "T001", ProductID: "P101", CustomerID: "C001", Region: "North", Quantity: 1, UnitPrice: 100},
		{TransactionID: "T002", ProductID: "P102", CustomerID: "C002", Region: "North", Quantity: 1, UnitPrice: 1000},
		{TransactionID: "T003", ProductID: "P103", CustomerID: "C003", Region: "North", Quantity: 1, UnitPrice: 10000},
	}

	minAmount := 500.0
	maxAmount := 5000.0
	final, _, summary := ValidateAndFilter(txns, FilterOptions{
		MinAmount: &minAmount,
		MaxAmount: &maxAmount,
	})

	if len(final) != 1 || final[0].TransactionID != "T002" {
		t.Errorf("final = %v, expected only T002", final)
	}
	if summary.FilteredByAmount != 2 {
		t.Errorf("FilteredByAmount = %d, expected 2", summary.FilteredByAmount)
	}
	// Bounds are inclusive
	exactMin := 100.0
	final, _, _ = ValidateAndFilter(txns[:1], FilterOptions{MinAmount: &exactMin, MaxAmount: &exactMin})
	if len(final) != 1 {
		t.Errorf("inclusive bounds: final count = %d, expected 1", len(final))
	}
}

func TestValidateAndFilterDoesNotMutateInput(t *testing.T) {
	txns := []Transaction{validTxn()}
	before := txns[0]

	minAmount := 1e12
	ValidateAndFilter(txns, FilterOptions{Region: "Nowhere", MinAmount: &minAmount})

	if !reflect.DeepEqual(txns[0], before) {
		t.Errorf("input mutated: %+v != %+v", txns[0], before)
	}
}

func TestRegions(t *testing.T) {
	txns := []Transaction{
		{Region: "South"},
		{Region: "North"},
		{Region: "South"},
		{Region: ""},
		{Region: "East"},
	}

	got := Regions(txns)
	want := []string{"East", "North", "South"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Regions() = %v, expected %v", got, want)
	}
}

func TestAmountRange(t *testing.T) {
	txns := []Transaction{
		{Quantity: 1, UnitPrice: 500},
		{Quantity: 2, UnitPrice: 45000},
		{Quantity: 3, UnitPrice: 100},
	}

	min, max := AmountRange(txns)
	if min != 300 {
		t.Errorf("min = %v, expected 300", min)
	}
	if max != 90000 {
		t.Errorf("max = %v, expected 90000", max)
	}

	min, max = AmountRange(nil)
	if min != 0 || max != 0 {
		t.Errorf("empty set range = (%v, %v), expected (0, 0)", min, max)
	}
}
