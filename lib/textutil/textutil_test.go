package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuoteField(t *testing.T) {
	require.Equal(t, `"AA"`, QuoteField("AA"))
	require.Equal(t, `""`, QuoteField(""))
	require.Equal(t, `"He said ""hi"", ok"`, QuoteField(`He said "hi", ok`))
}

func TestSplitFields(t *testing.T) {
	require.Equal(t,
		[]string{"IATA", "Airline", "ICAO"},
		SplitFields(`"IATA","Airline","ICAO"`),
	)
	require.Equal(t,
		[]string{"AA", "American Airlines", "AAL"},
		SplitFields(`"AA","American Airlines","AAL"`),
	)
	require.Equal(t,
		[]string{"a,b", `say "what"`, ""},
		SplitFields(`"a,b","say ""what""",""`),
	)
	require.Equal(t, []string{""}, SplitFields(""))
}

func TestQuoteSplitRoundTrip(t *testing.T) {
	values := []string{
		"AA",
		"",
		"  ",
		`He said "hi", ok`,
		"commas, everywhere, here",
		`""`,
		`trailing quote"`,
	}

	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = QuoteField(v)
	}
	line := strings.Join(quoted, ",")

	require.Equal(t, values, SplitFields(line))
}

func TestNormalizeSpace(t *testing.T) {
	require.Equal(t, "Aegean Airlines", NormalizeSpace("  Aegean\n  Airlines\t"))
	require.Equal(t, "0 9", NormalizeSpace("0\u00a09"))
	require.Equal(t, "", NormalizeSpace(" \n\t "))
}
