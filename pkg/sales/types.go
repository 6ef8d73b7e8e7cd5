// Package sales provides parsing, validation and filtering of raw sales
// transaction records.
package sales

// Transaction represents one sales transaction parsed from the input file.
type Transaction struct {
	TransactionID string // starts with "T"
	Date          string // YYYY-MM-DD
	ProductID     string // starts with "P", numeric suffix
	ProductName   string
	Quantity      int
	UnitPrice     float64
	CustomerID    string // starts with "C"
	Region        string
}

// Amount returns the line amount (quantity x unit price).
// It is recomputed on demand rather than stored on the record, so it can
// never go stale.
func (t Transaction) Amount() float64 {
	return float64(t.Quantity) * t.UnitPrice
}

// FilterOptions holds the optional narrowing criteria applied after
// validation. A zero Region means no region filter; a nil bound leaves that
// side of the amount range unconstrained.
type FilterOptions struct {
	Region    string
	MinAmount *float64
	MaxAmount *float64
}

// FilterSummary is the per-run breakdown produced by ValidateAndFilter.
// FilteredByRegion and FilteredByAmount are sequential deltas: each counts
// the records removed by that stage from the state just before it.
type FilterSummary struct {
	TotalInput       int
	Invalid          int
	Valid            int
	FilteredByRegion int
	FilteredByAmount int
	FinalCount       int
}
