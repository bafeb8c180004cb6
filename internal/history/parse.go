package history

import (
	"strings"

	"github.com/ricardobolanios964-sudo/inventario3.0/internal/csvio"
)

// ParseCSV parses the published orders CSV. Headers keep their original
// case (only trimmed); a row survives only with a non-empty code.
func ParseCSV(text string) []Record {
	_, recs := csvio.Parse(text, nil)
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		if strings.TrimSpace(probe(r, codeCols, "")) != "" {
			out = append(out, r)
		}
	}
	return out
}
