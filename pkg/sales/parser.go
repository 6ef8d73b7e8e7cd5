package sales

import (
	"fmt"
	"strconv"
	"strings"
)

// fieldCount is the number of pipe-delimited fields in a raw record line.
const fieldCount = 8

// ParseLine parses a single pipe-delimited line into a Transaction.
//
// The line must contain exactly eight fields. Fields are trimmed; commas in
// the product name (thousands-grouping artifacts from the upstream export)
// are replaced with spaces, and commas embedded in the numeric fields are
// stripped before conversion.
func ParseLine(line string) (Transaction, error) {
	fields := strings.Split(line, "|")
	if len(fields) != fieldCount {
		return Transaction{}, fmt.Errorf("expected %d fields, got %d", fieldCount, len(fields))
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	productName := strings.TrimSpace(strings.ReplaceAll(fields[3], ",", " "))

	quantityStr := strings.ReplaceAll(fields[4], ",", "")
	quantity, err := strconv.Atoi(quantityStr)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid quantity %q: %w", fields[4], err)
	}

	unitPriceStr := strings.ReplaceAll(fields[5], ",", "")
	unitPrice, err := strconv.ParseFloat(unitPriceStr, 64)
	if err != nil {
		return Transaction{}, fmt.Errorf("invalid unit price %q: %w", fields[5], err)
	}

	return Transaction{
		TransactionID: fields[0],
		Date:          fields[1],
		ProductID:     fields[2],
		ProductName:   productName,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		CustomerID:    fields[6],
		Region:        fields[7],
	}, nil
}

// ParseTransactions parses raw lines into transactions. Malformed lines are
// skipped, never fatal to the batch; the second return value is the number
// of skipped lines.
func ParseTransactions(lines []string) ([]Transaction, int) {
	transactions := make([]Transaction, 0, len(lines))
	skipped := 0

	for _, line := range lines {
		txn, err := ParseLine(line)
		if err != nil {
			skipped++
			continue
		}
		transactions = append(transactions, txn)
	}

	return transactions, skipped
}
