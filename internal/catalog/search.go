package catalog

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/ricardobolanios964-sudo/inventario3.0/internal/norm"
)

// Match tiers, best first. First tier that hits wins; tiers never
// accumulate. The 100-point gaps dominate the length bonus, so the bonus
// reorders within a tier but never across tiers.
//
//	1000 exact code    900 exact name
//	 800 prefix code   700 prefix name
//	 600 substr code   500 substr name
//	 400 fuzzy code    300 fuzzy name
//
// Exact and prefix tiers compare both the plain lowercase and the folded
// form; substring and fuzzy compare folded only.

type scored struct {
	rec   Record
	score float64
}

// Search ranks catalog records against query, best match first. An empty
// (or all-space) query returns nil without scoring anything.
func Search(query string, recs []Record, m Mapping) []Record {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}
	qLower := strings.ToLower(query)
	qFold := norm.Fold(query)

	matches := make([]scored, 0, 16)
	for _, rec := range recs {
		code := m.Code(rec)
		name := m.Name(rec)
		codeLower := strings.ToLower(code)
		nameLower := strings.ToLower(name)
		codeFold := norm.Fold(code)
		nameFold := norm.Fold(name)

		var score float64
		switch {
		case codeLower == qLower || codeFold == qFold:
			score = 1000
		case nameLower == qLower || nameFold == qFold:
			score = 900
		case strings.HasPrefix(codeLower, qLower) || strings.HasPrefix(codeFold, qFold):
			score = 800
		case strings.HasPrefix(nameLower, qLower) || strings.HasPrefix(nameFold, qFold):
			score = 700
		case strings.Contains(codeFold, qFold):
			score = 600
		case strings.Contains(nameFold, qFold):
			score = 500
		case subsequence(qFold, codeFold):
			score = 400
		case subsequence(qFold, nameFold):
			score = 300
		default:
			continue
		}

		// shorter records win ties within a tier; rune length, not UTF-16 units
		score += 100 / float64(utf8.RuneCountInString(code)+utf8.RuneCountInString(name))
		matches = append(matches, scored{rec: rec, score: score})
	}

	// stable: equal scores keep catalog order
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })

	out := make([]Record, len(matches))
	for i, s := range matches {
		out[i] = s.rec
	}
	return out
}

// subsequence reports whether every byte of q appears in t in order, not
// necessarily contiguously. Both arguments are folded, hence pure ASCII.
func subsequence(q, t string) bool {
	qi := 0
	for i := 0; i < len(t) && qi < len(q); i++ {
		if t[i] == q[qi] {
			qi++
		}
	}
	return qi == len(q)
}
