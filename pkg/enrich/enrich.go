// Package enrich augments validated transactions with product catalog
// metadata keyed by the numeric id embedded in the product identifier.
package enrich

import (
	"fmt"
	"strconv"

	"github.com/somrent17-glitch/sales-analytics-system/pkg/catalog"
	"github.com/somrent17-glitch/sales-analytics-system/pkg/sales"
)

// CatalogInfo carries the catalog metadata attached to a matched record.
type CatalogInfo struct {
	Category string
	Brand    string
	Rating   float64
}

// EnrichedTransaction is a transaction plus its catalog match. Catalog is
// nil exactly when the record is unmatched, so the match invariant is
// carried by the type rather than by parallel nullable fields.
type EnrichedTransaction struct {
	sales.Transaction
	Catalog *CatalogInfo
}

// Matched reports whether the record found a catalog entry.
func (e EnrichedTransaction) Matched() bool {
	return e.Catalog != nil
}

// MatchStats counts match outcomes for one enrichment pass.
type MatchStats struct {
	Matched   int
	Unmatched int
}

// ExtractCatalogID extracts the numeric catalog id from a product
// identifier by stripping the one-character prefix ("P101" -> 101).
func ExtractCatalogID(productID string) (int, error) {
	if len(productID) < 2 {
		return 0, fmt.Errorf("product id %q has no numeric suffix", productID)
	}

	id, err := strconv.Atoi(productID[1:])
	if err != nil {
		return 0, fmt.Errorf("product id %q has a non-numeric suffix: %w", productID, err)
	}

	return id, nil
}

// Enrich matches every transaction against the catalog snapshot and returns
// one enriched record per input record; no record is ever dropped. An
// unmatched record (unparseable suffix or id absent from the snapshot)
// carries a nil Catalog. The optional overrides mapper takes precedence
// over suffix extraction; a nil mapper is allowed.
//
// The input slice and the catalog snapshot are never mutated.
func Enrich(transactions []sales.Transaction, products map[int]catalog.Product, overrides *OverrideMapper) ([]EnrichedTransaction, MatchStats) {
	enriched := make([]EnrichedTransaction, 0, len(transactions))
	var stats MatchStats

	for _, t := range transactions {
		record := EnrichedTransaction{Transaction: t}

		catalogID, ok := overrides.CatalogID(t.ProductID)
		if !ok {
			var err error
			catalogID, err = ExtractCatalogID(t.ProductID)
			if err != nil {
				catalogID = 0
			}
		}

		if product, found := products[catalogID]; found {
			record.Catalog = &CatalogInfo{
				Category: product.Category,
				Brand:    product.Brand,
				Rating:   product.Rating,
			}
			stats.Matched++
		} else {
			stats.Unmatched++
		}

		enriched = append(enriched, record)
	}

	return enriched, stats
}
