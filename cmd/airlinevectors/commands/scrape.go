package commands

import (
	"context"
	"log/slog"
	"os"

	"airlinevectors/lib/scrapers/airlinecodes"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Runs only the table aggregation phase and writes the dataset file.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		runScrape(cmd.Context(), cfg)
	},
}

func runScrape(ctx context.Context, cfg Config) airlinecodes.Stats {
	// the vector output directory is prepared before any network activity
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fatal("failed to create output directory", err)
	}

	client := airlinecodes.NewClient(cfg.WikiBaseUrl)
	dataset, stats := client.ScrapeAll(ctx, airlinecodes.PageSuffixes())

	if err := dataset.WriteFile(cfg.DatasetPath); err != nil {
		fatal("failed to write dataset", err)
	}
	slog.Info("dataset written",
		"path", cfg.DatasetPath, "rows", len(dataset.Rows))

	return stats
}
