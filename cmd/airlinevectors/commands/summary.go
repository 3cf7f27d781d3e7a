package commands

import (
	"os"

	"airlinevectors/lib/scrapers/airlinecodes"
	"airlinevectors/lib/vectors"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

func printSummary(scrape airlinecodes.Stats, fetch vectors.Stats) {
	t := newTable()
	t.AppendHeader(table.Row{"Phase", "Outcome", "Count"})
	t.AppendRows([]table.Row{
		{"scrape", "pages scraped", scrape.PagesScraped},
		{"scrape", "pages skipped", scrape.PagesSkipped},
		{"fetch", "assets saved", fetch.Written},
		{"fetch", "placeholders substituted", fetch.Substituted},
		{"fetch", "rows skipped", fetch.Skipped},
		{"fetch", "failures", fetch.Failed},
	})
	t.Render()
}
