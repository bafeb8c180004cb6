// Package csvio parses the published spreadsheet feeds. Google publishes
// them as loose CSV (quotes only around fields that need them, sometimes
// unterminated), so the field grammar here is deliberately tolerant instead
// of strict RFC 4180.
package csvio

import "strings"

// Record is one spreadsheet row keyed by header name. Schema is open: any
// column present in the source survives verbatim.
type Record map[string]string

// SplitLine splits one line on commas, honoring double quotes. A quote
// toggles quoted mode and is never emitted; a comma splits only outside
// quotes. An unterminated quote simply never closes.
func SplitLine(line string) []string {
	out := make([]string, 0, 8)
	var cur strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			out = append(out, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	out = append(out, cur.String())
	return out
}

// Rows splits a CSV blob into trimmed cells, one slice per line.
func Rows(text string) [][]string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		cells := SplitLine(line)
		for i := range cells {
			cells[i] = strings.TrimSpace(cells[i])
		}
		rows = append(rows, cells)
	}
	return rows
}

// Parse splits csvText into a header row and records. headerFn transforms
// each header token (catalog uppercases for keyword matching, orders keep
// the original case); nil keeps headers as-is.
func Parse(csvText string, headerFn func(string) string) ([]string, []Record) {
	return FromRows(Rows(csvText), headerFn)
}

// FromRows zips the first row as headers over the remaining rows. Missing
// trailing cells become empty strings. No row is an error: a malformed blob
// just yields few or zero records.
func FromRows(rows [][]string, headerFn func(string) string) ([]string, []Record) {
	if len(rows) == 0 {
		return nil, nil
	}
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		h = strings.TrimSpace(h)
		if headerFn != nil {
			h = headerFn(h)
		}
		headers[i] = h
	}
	recs := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(headers))
		for i, h := range headers {
			v := ""
			if i < len(row) {
				v = strings.TrimSpace(row[i])
			}
			rec[h] = v
		}
		recs = append(recs, rec)
	}
	return headers, recs
}
