package sales

import (
	"sort"
	"strings"
)

// Required identifier prefixes.
const (
	TransactionIDPrefix = "T"
	ProductIDPrefix     = "P"
	CustomerIDPrefix    = "C"
)

// isValid reports whether a transaction passes all business rules. A record
// reaching the aggregation engine is guaranteed to have passed this check;
// downstream code does not re-validate.
func isValid(t Transaction) bool {
	if t.Quantity <= 0 {
		return false
	}
	if t.UnitPrice <= 0 {
		return false
	}
	if t.CustomerID == "" || t.Region == "" {
		return false
	}
	if !strings.HasPrefix(t.TransactionID, TransactionIDPrefix) {
		return false
	}
	if !strings.HasPrefix(t.ProductID, ProductIDPrefix) {
		return false
	}
	if !strings.HasPrefix(t.CustomerID, CustomerIDPrefix) {
		return false
	}
	return true
}

// ValidateAndFilter partitions transactions into valid and invalid, then
// applies the optional region and amount-range filters to the valid set.
// It returns the final subset, the invalid count, and a summary breakdown.
//
// The input slice is never mutated; each stage builds a new slice. Failing
// records are only counted, not itemized per rule.
func ValidateAndFilter(transactions []Transaction, opts FilterOptions) ([]Transaction, int, FilterSummary) {
	valid := make([]Transaction, 0, len(transactions))
	invalid := 0

	for _, t := range transactions {
		if isValid(t) {
			valid = append(valid, t)
		} else {
			invalid++
		}
	}

	filtered := valid
	filteredByRegion := 0
	filteredByAmount := 0

	if opts.Region != "" {
		kept := make([]Transaction, 0, len(filtered))
		for _, t := range filtered {
			if t.Region == opts.Region {
				kept = append(kept, t)
			}
		}
		filteredByRegion = len(filtered) - len(kept)
		filtered = kept
	}

	if opts.MinAmount != nil || opts.MaxAmount != nil {
		kept := make([]Transaction, 0, len(filtered))
		for _, t := range filtered {
			amount := t.Amount()
			if opts.MinAmount != nil && amount < *opts.MinAmount {
				continue
			}
			if opts.MaxAmount != nil && amount > *opts.MaxAmount {
				continue
			}
			kept = append(kept, t)
		}
		filteredByAmount = len(filtered) - len(kept)
		filtered = kept
	}

	summary := FilterSummary{
		TotalInput:       len(transactions),
		Invalid:          invalid,
		Valid:            len(valid),
		FilteredByRegion: filteredByRegion,
		FilteredByAmount: filteredByAmount,
		FinalCount:       len(filtered),
	}

	return filtered, invalid, summary
}

// Regions returns the sorted distinct regions present in the transaction set.
func Regions(transactions []Transaction) []string {
	seen := make(map[string]bool)
	var regions []string
	for _, t := range transactions {
		if t.Region != "" && !seen[t.Region] {
			seen[t.Region] = true
			regions = append(regions, t.Region)
		}
	}
	sort.Strings(regions)
	return regions
}

// AmountRange returns the minimum and maximum line amount in the transaction
// set. Both are 0 for an empty set.
func AmountRange(transactions []Transaction) (min, max float64) {
	for i, t := range transactions {
		amount := t.Amount()
		if i == 0 || amount < min {
			min = amount
		}
		if amount > max {
			max = amount
		}
	}
	return min, max
}
