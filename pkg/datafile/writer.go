package datafile

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/somrent17-glitch/sales-analytics-system/pkg/enrich"
)

// EnrichedHeader is the header row of the enriched output file.
const EnrichedHeader = "TransactionID|Date|ProductID|ProductName|Quantity|UnitPrice|CustomerID|Region|API_Category|API_Brand|API_Rating|API_Match"

// FormatEnrichedRow renders one enriched transaction as a pipe-delimited
// line. Enrichment fields of an unmatched record render as empty segments,
// never as a null marker.
func FormatEnrichedRow(e enrich.EnrichedTransaction) string {
	category := ""
	brand := ""
	rating := ""
	if e.Catalog != nil {
		category = e.Catalog.Category
		brand = e.Catalog.Brand
		rating = strconv.FormatFloat(e.Catalog.Rating, 'f', -1, 64)
	}

	fields := []string{
		e.TransactionID,
		e.Date,
		e.ProductID,
		e.ProductName,
		strconv.Itoa(e.Quantity),
		strconv.FormatFloat(e.UnitPrice, 'f', -1, 64),
		e.CustomerID,
		e.Region,
		category,
		brand,
		rating,
		strconv.FormatBool(e.Matched()),
	}

	return strings.Join(fields, "|")
}

// WriteEnrichedData writes the enriched transactions to a pipe-delimited
// file, header first. The file is overwritten wholesale; parent directories
// are created as needed.
func WriteEnrichedData(path string, rows []enrich.EnrichedTransaction) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(EnrichedHeader)
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString(FormatEnrichedRow(row))
		sb.WriteString("\n")
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("failed to write enriched data: %w", err)
	}

	return nil
}
