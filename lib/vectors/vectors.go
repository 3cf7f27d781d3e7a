package vectors

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"airlinevectors/lib/textutil"

	"github.com/go-resty/resty/v2"
)

const userAgent = "Mozilla/5.0 (compatible; airlinevectors/1.0)"

// CodeColumn is the header field whose values name the assets to fetch.
// Matched against the dataset header trimmed and case-insensitively.
const CodeColumn = "IATA"

type Config struct {
	// asset url is `<AssetBaseURL><CODE>_sq.svg`
	AssetBaseURL string
	// fetched instead whenever the primary asset is missing
	PlaceholderURL string
	OutputDir      string
}

type Stats struct {
	Written     int
	Substituted int
	Skipped     int
	Failed      int
}

type Fetcher struct {
	cfg  Config
	http *resty.Client
}

// NewFetcher returns a fetcher with one reusable HTTP client, shared by
// every download of the phase.
func NewFetcher(cfg Config) *Fetcher {
	client := resty.New()
	client.SetHeader("user-agent", userAgent)
	client.SetTimeout(time.Second * 30)

	return &Fetcher{
		cfg:  cfg,
		http: client,
	}
}

// FetchAll downloads one vector image per data row of the dataset at path,
// one row at a time. The two phase-fatal conditions (no data rows, missing
// code column) log and return early; every other failure degrades to
// skip-and-continue. The returned error only reports problems with the
// dataset file or the output directory themselves.
func (f *Fetcher) FetchAll(ctx context.Context, datasetPath string) (Stats, error) {
	var stats Stats

	raw, err := os.ReadFile(datasetPath)
	if err != nil {
		return stats, fmt.Errorf("failed to read dataset: %w", err)
	}

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if len(lines) <= 1 {
		slog.Info("dataset has no data rows, nothing to fetch", "path", datasetPath)
		return stats, nil
	}

	colIdx := -1
	for i, name := range textutil.SplitFields(lines[0]) {
		if strings.EqualFold(strings.TrimSpace(name), CodeColumn) {
			colIdx = i
			break
		}
	}
	if colIdx < 0 {
		slog.Error(
			"code column not found in dataset header, skipping downloads",
			"column", CodeColumn, "path", datasetPath,
		)
		return stats, nil
	}

	if err := os.MkdirAll(f.cfg.OutputDir, 0755); err != nil {
		return stats, fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, line := range lines[1:] {
		fields := textutil.SplitFields(line)
		if colIdx >= len(fields) {
			slog.Debug("skipping short row", "fields", len(fields))
			stats.Skipped++
			continue
		}
		code := strings.TrimSpace(fields[colIdx])
		if code == "" {
			slog.Debug("skipping row with empty code")
			stats.Skipped++
			continue
		}

		f.fetchOne(ctx, code, &stats)
	}

	return stats, nil
}

// fetchOne fully resolves a single code before returning: primary asset
// saved, placeholder substituted, or nothing written with the failure
// logged.
func (f *Fetcher) fetchOne(ctx context.Context, code string, stats *Stats) {
	dst := filepath.Join(f.cfg.OutputDir, code+".svg")

	res, err := f.http.R().
		SetContext(ctx).
		Get(f.cfg.AssetBaseURL + code + "_sq.svg")
	if err != nil {
		slog.Warn("asset fetch failed", "code", code, "err", err)
		stats.Failed++
		return
	}
	if res.IsSuccess() {
		if err := os.WriteFile(dst, res.Body(), 0644); err != nil {
			slog.Error("failed to write asset", "code", code, "err", err)
			stats.Failed++
			return
		}
		slog.Info("saved asset", "code", code, "path", dst)
		stats.Written++
		return
	}

	// hold on to the status that triggered the substitution, the
	// placeholder response reuses res below
	primaryStatus := res.StatusCode()
	slog.Warn("primary asset missing, trying placeholder",
		"code", code, "status", primaryStatus)

	res, err = f.http.R().
		SetContext(ctx).
		Get(f.cfg.PlaceholderURL)
	if err != nil {
		slog.Warn("placeholder fetch failed", "code", code, "err", err)
		stats.Failed++
		return
	}
	if !res.IsSuccess() {
		slog.Warn("placeholder fetch failed",
			"code", code, "status", res.StatusCode())
		stats.Failed++
		return
	}
	if err := os.WriteFile(dst, res.Body(), 0644); err != nil {
		slog.Error("failed to write asset", "code", code, "err", err)
		stats.Failed++
		return
	}

	slog.Info("substituted placeholder",
		"code", code, "primary_status", primaryStatus, "path", dst)
	stats.Substituted++
}
