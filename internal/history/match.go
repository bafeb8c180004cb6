package history

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var timeRe = regexp.MustCompile(`(\d{1,2}):(\d{2})`)

// Find filters orders by exact code equality (trim + lowercase, no fuzzy
// matching here) and sorts them most recent first: parsed date descending,
// then start time descending. Rows with unparsable dates sink to the old
// end keeping their relative order.
func Find(code string, recs []Record) []Record {
	want := strings.ToLower(strings.TrimSpace(code))

	out := make([]Record, 0, 8)
	for _, r := range recs {
		if strings.ToLower(strings.TrimSpace(Code(r))) == want {
			out = append(out, r)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		di, dj := dateKey(Date(out[i])), dateKey(Date(out[j]))
		if di != dj {
			return di > dj
		}
		return timeKey(startToken(out[i])) > timeKey(startToken(out[j]))
	})
	return out
}

// startToken prefers the dedicated start-time column and falls back to the
// combined date-time column.
func startToken(r Record) string {
	if v := Start(r); v != "-" {
		return v
	}
	return DateTime(r)
}

// dateKey turns a DD/MM/YYYY or DD-MM-YY token into a sortable YYYYMMDD
// integer. Two-digit years mean 2000+. Anything unparsable keys as 0, the
// oldest possible value.
func dateKey(s string) int {
	if s == "" || s == "-" {
		return 0
	}
	parts := strings.Split(strings.ReplaceAll(s, "-", "/"), "/")
	if len(parts) != 3 {
		return 0
	}
	day := pad2(parts[0])
	month := pad2(parts[1])
	year := parts[2]
	if len(year) == 2 {
		year = "20" + year
	}
	n, err := strconv.Atoi(year + month + day)
	if err != nil {
		return 0
	}
	return n
}

// timeKey extracts the first HH:MM token as minutes since midnight; 0 when
// absent or unparsable.
func timeKey(s string) int {
	if s == "" || s == "-" {
		return 0
	}
	m := timeRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	h, _ := strconv.Atoi(m[1])
	min, _ := strconv.Atoi(m[2])
	return h*60 + min
}

func pad2(s string) string {
	for len(s) < 2 {
		s = "0" + s
	}
	return s
}
