package airlinecodes

import (
	"context"
	"log/slog"
)

type Stats struct {
	PagesScraped int
	PagesSkipped int
}

// ScrapeAll walks the suffixes in order and aggregates every page's table
// into one dataset. The header comes from the first page that yields a
// non-empty table; the first row of every later page is never re-emitted,
// even when it looks like a header. A failing page is logged and skipped, it
// never stops the pages after it.
func (c *Client) ScrapeAll(ctx context.Context, suffixes []string) (*Dataset, Stats) {
	dataset := &Dataset{}
	var stats Stats

	for _, suffix := range suffixes {
		url := c.pageURL(suffix)
		slog.Info("fetching page", "url", url)

		table, err := c.FetchCodeTable(ctx, suffix)
		if err != nil {
			slog.Warn("skipping page", "url", url, "err", err)
			stats.PagesSkipped++
			continue
		}

		if dataset.Header == nil {
			dataset.Header = table.FirstRow
		}
		dataset.Rows = append(dataset.Rows, table.DataRows...)
		stats.PagesScraped++

		slog.Debug("page scraped", "url", url, "rows", len(table.DataRows))
	}

	if dataset.Header == nil {
		slog.Warn("no page yielded a code table")
	}
	return dataset, stats
}
