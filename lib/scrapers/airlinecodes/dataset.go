package airlinecodes

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"airlinevectors/lib/textutil"
)

// Dataset is the aggregated code table: one header row followed by every
// data row from every page, in page order. Rows are expected to line up with
// the header's column order but this is not enforced.
type Dataset struct {
	Header []string
	Rows   [][]string
}

// Encode renders the dataset with every field quoted, comma-joined, one
// newline-terminated line per row.
func (d *Dataset) Encode() []byte {
	var buf bytes.Buffer
	if len(d.Header) > 0 {
		buf.WriteString(encodeLine(d.Header))
	}
	for _, row := range d.Rows {
		buf.WriteString(encodeLine(row))
	}
	return buf.Bytes()
}

func encodeLine(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = textutil.QuoteField(strings.TrimSpace(f))
	}
	return strings.Join(quoted, ",") + "\n"
}

// WriteFile replaces the file at path with the encoded dataset.
func (d *Dataset) WriteFile(path string) error {
	if err := os.WriteFile(path, d.Encode(), 0644); err != nil {
		return fmt.Errorf("failed to write dataset %s: %w", path, err)
	}
	return nil
}
