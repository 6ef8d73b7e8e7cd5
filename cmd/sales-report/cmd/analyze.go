package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/somrent17-glitch/sales-analytics-system/pkg/analytics"
	"github.com/somrent17-glitch/sales-analytics-system/pkg/catalog"
	"github.com/somrent17-glitch/sales-analytics-system/pkg/config"
	"github.com/somrent17-glitch/sales-analytics-system/pkg/datafile"
	"github.com/somrent17-glitch/sales-analytics-system/pkg/db"
	"github.com/somrent17-glitch/sales-analytics-system/pkg/enrich"
	"github.com/somrent17-glitch/sales-analytics-system/pkg/pathutil"
	"github.com/somrent17-glitch/sales-analytics-system/pkg/report"
	"github.com/somrent17-glitch/sales-analytics-system/pkg/sales"
	"github.com/spf13/cobra"
)

var (
	inputFile     string
	filterRegion  string
	minAmount     float64
	maxAmount     float64
	topN          int
	lowThreshold  int
	overridesFile string
	dryRun        bool
)

// analyzeCmd represents the analyze command.
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full sales analysis pipeline",
	Long: `Analyze a pipe-delimited sales data file end to end.

This command:
1. Reads and parses the raw sales data file
2. Validates records and applies optional region/amount filters
3. Computes revenue, region, product, customer and daily aggregates
4. Fetches the product catalog and enriches matched records
5. Writes the enriched data file and the text report
6. Records the run in the SQLite run history

A catalog fetch failure is not fatal: the run continues with every
record unmatched. A missing input file is fatal.

Example:
  sales-report analyze
  sales-report analyze --region North --min-amount 1000 --max-amount 90000
  sales-report analyze --dry-run`,
	Run: runAnalyze,
}

func init() {
	// Flags
	analyzeCmd.Flags().StringVar(&inputFile, "input", "", "Input sales data file (default is {data root}/sales_data.txt)")
	analyzeCmd.Flags().StringVar(&filterRegion, "region", "", "Keep only transactions from this region (exact match)")
	analyzeCmd.Flags().Float64Var(&minAmount, "min-amount", 0, "Keep only transactions with line amount >= this value")
	analyzeCmd.Flags().Float64Var(&maxAmount, "max-amount", 0, "Keep only transactions with line amount <= this value")
	analyzeCmd.Flags().IntVar(&topN, "top", analytics.DefaultTopN, "Number of products/customers in the top tables")
	analyzeCmd.Flags().IntVar(&lowThreshold, "low-threshold", analytics.DefaultLowThreshold, "Low-performer quantity threshold")
	analyzeCmd.Flags().StringVar(&overridesFile, "overrides", "config/catalog-overrides.yaml", "Catalog override mapping file (optional)")
	analyzeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the report instead of writing output files")
}

func runAnalyze(cmd *cobra.Command, args []string) {
	slog.Info("Starting analysis", "dry_run", dryRun)

	// Load configuration
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	// Validate required fields
	if err := cfg.Validate(
		[]string{"catalog", "apiUrl"},
		[]string{"sales", "dataRoot"},
	); err != nil {
		exitOnError(err, "invalid configuration")
	}

	pathResolver := pathutil.New(pathutil.Config{
		DataRoot:     cfg.Sales.DataRoot,
		DatabasePath: cfg.Sales.DBPath,
		OutputDir:    cfg.Sales.OutputDir,
	})

	// Open run-history database
	dbPath := pathResolver.GetDatabasePath()
	slog.Debug("Opening database", "path", dbPath)
	conn, err := db.Open(dbPath)
	exitOnError(err, "failed to open database")
	defer conn.Close()

	runHistory := db.NewRunHistory(conn)

	// Read the raw lines. A missing source file is fatal; an empty one is
	// a valid run that yields empty results.
	input := inputFile
	if input == "" {
		input = pathResolver.GetSalesDataPath()
	}
	slog.Info("Reading sales data", "path", input)
	lines, err := datafile.ReadSalesData(input)
	exitOnError(err, "failed to read sales data")
	slog.Info("Read sales data", "lines", len(lines))

	// Parse and clean
	transactions, skipped := sales.ParseTransactions(lines)
	if skipped > 0 {
		slog.Warn("Skipped unparseable lines", "count", skipped)
	}
	slog.Info("Parsed transactions", "count", len(transactions))

	// Show available filter options
	regions := sales.Regions(transactions)
	minAvail, maxAvail := sales.AmountRange(transactions)
	fmt.Printf("Available regions: %s\n", strings.Join(regions, ", "))
	fmt.Printf("Transaction amount range: %.2f - %.2f\n", minAvail, maxAvail)

	// Validate and filter
	opts := sales.FilterOptions{Region: filterRegion}
	if cmd.Flags().Changed("min-amount") {
		v := minAmount
		opts.MinAmount = &v
	}
	if cmd.Flags().Changed("max-amount") {
		v := maxAmount
		opts.MaxAmount = &v
	}

	valid, invalidCount, summary := sales.ValidateAndFilter(transactions, opts)
	slog.Info("Validated transactions",
		"total_input", summary.TotalInput,
		"invalid", invalidCount,
		"valid", summary.Valid,
		"filtered_by_region", summary.FilteredByRegion,
		"filtered_by_amount", summary.FilteredByAmount,
		"final_count", summary.FinalCount,
	)

	totalRevenue := analytics.TotalRevenue(valid)
	slog.Info("Computed aggregates", "total_revenue", totalRevenue)

	// Fetch the product catalog. Failures degrade to an empty mapping so
	// the run always completes.
	catalogClient := catalog.NewClient(catalog.ClientConfig{
		APIURL:      cfg.Catalog.APIURL,
		AccessToken: cfg.Catalog.AccessToken,
		PageLimit:   cfg.Catalog.PageLimit,
		Timeout:     30 * time.Second,
	})

	slog.Info("Fetching product catalog", "url", cfg.Catalog.APIURL)
	products, err := catalogClient.FetchAllProducts()
	if err != nil {
		slog.Warn("Catalog fetch failed; continuing without enrichment", "error", err)
		products = nil
	} else {
		slog.Info("Fetched catalog products", "count", len(products))
	}
	mapping := catalog.BuildProductMap(products)

	// Load catalog overrides if the file exists
	var overrides *enrich.OverrideMapper
	if pathResolver.FileExists(overridesFile) {
		overrides, err = enrich.NewOverrideMapper(overridesFile)
		exitOnError(err, "failed to load catalog overrides")
		slog.Debug("Loaded catalog overrides", "count", overrides.Len())
	}

	// Enrich
	enriched, matchStats := enrich.Enrich(valid, mapping, overrides)
	slog.Info("Enriched transactions",
		"matched", matchStats.Matched,
		"unmatched", matchStats.Unmatched,
	)

	// Generate the report
	reportText := report.Generate(valid, enriched, report.Options{
		Currency:     cfg.Sales.Currency,
		TopN:         topN,
		LowThreshold: lowThreshold,
		Now:          time.Now(),
	})

	record := db.RunRecord{
		RunID:        uuid.NewString(),
		SourceFile:   input,
		TotalInput:   summary.TotalInput,
		Invalid:      summary.Invalid,
		FinalCount:   summary.FinalCount,
		TotalRevenue: totalRevenue,
		Matched:      matchStats.Matched,
		Unmatched:    matchStats.Unmatched,
	}

	if dryRun {
		fmt.Println("[DRY RUN] No files written")
		fmt.Println(reportText)
	} else {
		enrichedPath := pathResolver.GetEnrichedDataPath()
		if err := datafile.WriteEnrichedData(enrichedPath, enriched); err != nil {
			exitOnError(err, "failed to write enriched data")
		}
		slog.Info("Wrote enriched data", "path", enrichedPath, "rows", len(enriched))

		reportPath := pathResolver.GetReportPath()
		if err := pathResolver.EnsureParentDir(reportPath); err != nil {
			exitOnError(err, "failed to create output directory")
		}
		if err := os.WriteFile(reportPath, []byte(reportText), 0644); err != nil {
			exitOnError(err, "failed to write report")
		}
		slog.Info("Wrote report", "path", reportPath)

		record.ReportFile = reportPath
		record.EnrichedFile = enrichedPath
	}

	// Record run history
	if err := runHistory.RecordRun(record); err != nil {
		slog.Error("Failed to record run", "run_id", record.RunID, "error", err)
	}

	// Display final statistics
	stats, err := runHistory.GetStats()
	if err == nil {
		fmt.Println("\n=== Run Statistics ===")
		fmt.Printf("Total runs:          %d\n", stats.TotalRuns)
		fmt.Printf("Records processed:   %d\n", stats.RecordsProcessed)
		fmt.Printf("Records enriched:    %d\n", stats.TotalMatched)
		if stats.LastRun.Valid {
			fmt.Printf("Last run:            %s\n", stats.LastRun.String)
		}
		fmt.Println()
	}

	slog.Info("Analysis completed",
		"run_id", record.RunID,
		"final_count", summary.FinalCount,
		"total_revenue", totalRevenue,
	)
}
