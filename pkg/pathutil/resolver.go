// Package pathutil provides centralized path management for the sales data
// files, outputs and the run-history database.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// PathResolver manages paths for sales data, outputs and the database.
type PathResolver struct {
	dataRoot     string
	databasePath string
	outputDir    string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// DataRoot is the directory holding the raw and enriched data files
	// (e.g. ./data)
	DataRoot string
	// DatabasePath is the path to the SQLite run-history database file
	DatabasePath string
	// OutputDir is the directory for generated reports
	OutputDir string
}

// New creates a new PathResolver with the given configuration.
// If DatabasePath is empty, it defaults to {DataRoot}/.runs/history.db
// If OutputDir is empty, it defaults to ./output
func New(config Config) *PathResolver {
	dbPath := config.DatabasePath
	if dbPath == "" {
		dbPath = filepath.Join(config.DataRoot, ".runs", "history.db")
	}

	outputDir := config.OutputDir
	if outputDir == "" {
		outputDir = "output"
	}

	return &PathResolver{
		dataRoot:     config.DataRoot,
		databasePath: dbPath,
		outputDir:    outputDir,
	}
}

// GetDataRoot returns the data root directory.
func (p *PathResolver) GetDataRoot() string {
	return p.dataRoot
}

// GetDatabasePath returns the run-history database file path.
func (p *PathResolver) GetDatabasePath() string {
	return p.databasePath
}

// GetSalesDataPath returns the default raw sales data file path.
// Example: data/sales_data.txt
func (p *PathResolver) GetSalesDataPath() string {
	return filepath.Join(p.dataRoot, "sales_data.txt")
}

// GetEnrichedDataPath returns the enriched data output file path.
// Example: data/enriched_sales_data.txt
func (p *PathResolver) GetEnrichedDataPath() string {
	return filepath.Join(p.dataRoot, "enriched_sales_data.txt")
}

// GetReportPath returns the report output file path.
// Example: output/sales_report.txt
func (p *PathResolver) GetReportPath() string {
	return filepath.Join(p.outputDir, "sales_report.txt")
}

// EnsureDir creates a directory if it doesn't exist.
// It creates all parent directories as needed (like mkdir -p).
func (p *PathResolver) EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}
	return nil
}

// EnsureParentDir ensures the parent directory of a file exists.
func (p *PathResolver) EnsureParentDir(filePath string) error {
	dir := filepath.Dir(filePath)
	return p.EnsureDir(dir)
}

// FileExists checks if a file exists.
func (p *PathResolver) FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}
