package cmd

import (
	"fmt"
	"log/slog"

	"github.com/somrent17-glitch/sales-analytics-system/pkg/config"
	"github.com/somrent17-glitch/sales-analytics-system/pkg/db"
	"github.com/somrent17-glitch/sales-analytics-system/pkg/pathutil"
	"github.com/spf13/cobra"
)

var statsLimit int

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show run history statistics",
	Long: `Display statistics from the run-history database.

This shows totals across all recorded runs plus the most recent runs
with their record counts and revenue.

Example:
  sales-report stats
  sales-report stats --limit 20`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsLimit, "limit", 10, "Number of recent runs to display")
}

func runStats(cmd *cobra.Command, args []string) {
	// Load configuration
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	if err := cfg.Validate([]string{"sales", "dataRoot"}); err != nil {
		exitOnError(err, "invalid configuration")
	}

	pathResolver := pathutil.New(pathutil.Config{
		DataRoot:     cfg.Sales.DataRoot,
		DatabasePath: cfg.Sales.DBPath,
		OutputDir:    cfg.Sales.OutputDir,
	})

	dbPath := pathResolver.GetDatabasePath()
	slog.Debug("Opening database", "path", dbPath)
	conn, err := db.Open(dbPath)
	exitOnError(err, "failed to open database")
	defer conn.Close()

	runHistory := db.NewRunHistory(conn)

	stats, err := runHistory.GetStats()
	exitOnError(err, "failed to get run statistics")

	fmt.Println("=== Run Statistics ===")
	fmt.Printf("Database:            %s\n", dbPath)
	fmt.Printf("Total runs:          %d\n", stats.TotalRuns)
	fmt.Printf("Records processed:   %d\n", stats.RecordsProcessed)
	fmt.Printf("Records enriched:    %d\n", stats.TotalMatched)
	if stats.LastRun.Valid {
		fmt.Printf("Last run:            %s\n", stats.LastRun.String)
	} else {
		fmt.Printf("Last run:            (never)\n")
	}

	runs, err := runHistory.GetRuns(statsLimit)
	exitOnError(err, "failed to get run history")

	if len(runs) == 0 {
		return
	}

	fmt.Println("\n=== Recent Runs ===")
	for _, run := range runs {
		fmt.Printf("%s  %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"), run.RunID)
		fmt.Printf("    source=%s records=%d invalid=%d matched=%d revenue=%.2f\n",
			run.SourceFile, run.FinalCount, run.Invalid, run.Matched, run.TotalRevenue)
	}
}
