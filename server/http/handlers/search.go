package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ricardobolanios964-sudo/inventario3.0/internal/catalog"
	"github.com/ricardobolanios964-sudo/inventario3.0/internal/metrics"
)

type searchItem struct {
	Code   string         `json:"codigo"`
	Name   string         `json:"nombre"`
	Fields catalog.Record `json:"fields"`
}

// Search serves GET /api/search?q=. An empty query is a valid empty
// result, not an error; an unloaded catalog is 503.
func Search(st *catalog.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log := reqLogger(logger, r)

		if !st.Loaded() {
			writeError(w, http.StatusServiceUnavailable, "catálogo aún no cargado")
			return
		}

		q := strings.TrimSpace(r.URL.Query().Get("q"))
		results := catalog.Search(q, st.Records(), st.Mapping())
		metrics.Searches.Inc()

		m := st.Mapping()
		items := make([]searchItem, len(results))
		for i, rec := range results {
			items[i] = searchItem{Code: m.Code(rec), Name: m.Name(rec), Fields: rec}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"query":   q,
			"count":   len(items),
			"results": items,
		})

		log.Debug().Str("q", q).Int("results", len(items)).Dur("elapsed", time.Since(start)).Msg("search")
	}
}
