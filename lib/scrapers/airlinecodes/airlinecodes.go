package airlinecodes

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"airlinevectors/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
)

const userAgent = "Mozilla/5.0 (compatible; airlinevectors/1.0)"

var (
	ErrNoTable    = fmt.Errorf("no wikitable on page")
	ErrEmptyTable = fmt.Errorf("wikitable has no rows")
)

// PageSuffixes returns the page partitions in iteration order: the encoded
// "0–9" token, then the letters A through Z.
func PageSuffixes() []string {
	suffixes := []string{"0%E2%80%939"}
	for c := 'A'; c <= 'Z'; c++ {
		suffixes = append(suffixes, string(c))
	}
	return suffixes
}

type Client struct {
	baseURL string
	http    *resty.Client
}

// NewClient returns a client for the reference pages under baseURL. The page
// for a suffix lives at `<baseURL>(<suffix>)`.
func NewClient(baseURL string) *Client {
	client := resty.New()
	client.SetHeader("user-agent", userAgent)
	client.SetTimeout(time.Second * 30)

	return &Client{
		baseURL: baseURL,
		http:    client,
	}
}

func (c *Client) pageURL(suffix string) string {
	return fmt.Sprintf("%s(%s)", c.baseURL, suffix)
}

// Table is the raw contents of one page's code table: the first row's cells
// (the header candidate, th or td) and the td-only cells of every row after
// it. Rows without any td cell are dropped.
type Table struct {
	FirstRow []string
	DataRows [][]string
}

// FetchCodeTable downloads one page and extracts its first wikitable.
// Returns ErrNoTable / ErrEmptyTable when the page has nothing usable.
func (c *Client) FetchCodeTable(ctx context.Context, suffix string) (Table, error) {
	url := c.pageURL(suffix)

	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return Table{}, err
	}
	if !res.IsSuccess() {
		return Table{}, fmt.Errorf("GET %s: status code %d", url, res.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		return Table{}, fmt.Errorf("failed to parse html: %w", err)
	}

	table := doc.Find("table.wikitable").First()
	if table.Length() == 0 {
		return Table{}, ErrNoTable
	}
	rows := table.Find("tr")
	if rows.Length() == 0 {
		return Table{}, ErrEmptyTable
	}

	var out Table
	rows.Each(func(i int, row *goquery.Selection) {
		if i == 0 {
			row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
				out.FirstRow = append(out.FirstRow, htmlutil.CellText(cell))
			})
			return
		}

		var cells []string
		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, htmlutil.CellText(cell))
		})
		if len(cells) > 0 {
			out.DataRows = append(out.DataRows, cells)
		}
	})

	return out, nil
}
