package catalog

import (
	"strings"

	"github.com/ricardobolanios964-sudo/inventario3.0/internal/csvio"
)

// ParseCSV parses the published catalog CSV. Headers are uppercased and
// trimmed so the keyword scan works across sheet variants.
func ParseCSV(text string) ([]Record, Mapping) {
	headers, recs := csvio.Parse(text, strings.ToUpper)
	return filterRecords(headers, recs)
}

// FromRows builds the catalog from an imported spreadsheet snapshot,
// sharing the mapping and filter rules with the CSV path.
func FromRows(rows [][]string) ([]Record, Mapping) {
	headers, recs := csvio.FromRows(rows, strings.ToUpper)
	return filterRecords(headers, recs)
}

// filterRecords drops rows with neither a code nor a name in the resolved
// columns; the sheet pads itself with empty rows.
func filterRecords(headers []string, recs []csvio.Record) ([]Record, Mapping) {
	m := DetectMapping(headers)
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		hasCode := m.CodeCol != "" && r[m.CodeCol] != ""
		hasName := m.NameCol != "" && r[m.NameCol] != ""
		if hasCode || hasName {
			out = append(out, r)
		}
	}
	return out, m
}
