package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var verbose *bool

func init() {
	verbose = rootCmd.PersistentFlags().BoolP(
		"verbose", "v", false, "Enable debug logging.",
	)
}

var rootCmd = &cobra.Command{
	Use:   "airlinevectors",
	Short: "airlinevectors aggregates the airline code tables into a csv and downloads one vector logo per code.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initSlog(*verbose)
	},
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()

		scrapeStats := runScrape(cmd.Context(), cfg)
		fetchStats := runFetch(cmd.Context(), cfg)

		printSummary(scrapeStats, fetchStats)
	},
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initSlog(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
}

func fatal(message string, err error) {
	slog.Error(message, "err", err.Error())
	os.Exit(1)
}
