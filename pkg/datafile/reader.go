// Package datafile reads the raw sales data file and writes enriched
// output rows.
package datafile

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrSourceNotFound marks a missing input file. A missing source is fatal
// for a run, unlike an empty source, which is valid and yields empty
// results.
var ErrSourceNotFound = errors.New("sales data file not found")

// ReadSalesData reads the raw transaction lines from a pipe-delimited file.
// The header line and blank lines are dropped; remaining lines are trimmed.
func ReadSalesData(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to read sales data: %w", err)
	}

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	// First non-empty line is the header row.
	if len(lines) > 0 {
		lines = lines[1:]
	}

	return lines, nil
}
