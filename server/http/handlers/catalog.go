package handlers

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/ricardobolanios964-sudo/inventario3.0/internal/catalog"
	"github.com/ricardobolanios964-sudo/inventario3.0/internal/csvio"
)

// CatalogReloader refreshes or replaces the catalog record set.
type CatalogReloader interface {
	Reload(ctx context.Context)
	ImportRows(ctx context.Context, rows [][]string) int
}

// ReloadCatalog serves POST /api/catalog/reload: bypass the freshness
// check and fetch the published sheet now.
func ReloadCatalog(ld CatalogReloader, st *catalog.Store, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ld.Reload(r.Context())
		writeJSON(w, http.StatusOK, map[string]any{"products": st.Len()})
	}
}

// ImportCatalog serves POST /api/catalog/import: replace the catalog from
// an uploaded spreadsheet snapshot (.csv, .xls or .xlsx).
func ImportCatalog(ld CatalogReloader, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := reqLogger(logger, r)

		if err := r.ParseMultipartForm(32 << 20); err != nil {
			writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
			return
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "missing file: "+err.Error())
			return
		}
		defer f.Close()

		rows, err := csvio.ReadSheet(f, hdr.Filename)
		if err != nil {
			log.Warn().Err(err).Str("file", hdr.Filename).Msg("snapshot import rejected")
			writeError(w, http.StatusBadRequest, "failed to read snapshot: "+err.Error())
			return
		}

		n := ld.ImportRows(r.Context(), rows)
		writeJSON(w, http.StatusOK, map[string]any{"products": n, "file": hdr.Filename})
	}
}
