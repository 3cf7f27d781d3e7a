package commands

import (
	"context"

	"airlinevectors/lib/vectors"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(fetchCmd)
}

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Runs only the asset download phase against an existing dataset file.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		runFetch(cmd.Context(), cfg)
	},
}

func runFetch(ctx context.Context, cfg Config) vectors.Stats {
	fetcher := vectors.NewFetcher(vectors.Config{
		AssetBaseURL:   cfg.AssetBaseUrl,
		PlaceholderURL: cfg.PlaceholderUrl,
		OutputDir:      cfg.OutputDir,
	})

	stats, err := fetcher.FetchAll(ctx, cfg.DatasetPath)
	if err != nil {
		fatal("failed to fetch assets", err)
	}
	return stats
}
