package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ricardobolanios964-sudo/inventario3.0/internal/catalog"
	"github.com/ricardobolanios964-sudo/inventario3.0/internal/history"
	"github.com/ricardobolanios964-sudo/inventario3.0/internal/metrics"
)

// OrderRefresher triggers an order-feed refresh; concurrent calls no-op.
type OrderRefresher interface {
	Load(ctx context.Context)
}

type historyItem struct {
	Codigo      string `json:"codigo"`
	Producto    string `json:"producto"`
	FechaHora   string `json:"fecha_hora"`
	Fecha       string `json:"fecha"`
	Inicio      string `json:"inicio"`
	Fin         string `json:"fin"`
	Cantidad    string `json:"cantidad"`
	Despacho    string `json:"despacho"`
	Sucursal    string `json:"sucursal"`
	Laboratorio string `json:"laboratorio"`
	Solicitud   string `json:"solicitud"`
	Correo      string `json:"correo"`
	Picker      string `json:"picker"`
	Contado     string `json:"contado"`
	Revisado    string `json:"revisado"`
}

// History serves GET /api/products/{code}/history. The order feed's TTL is
// near zero, so the refresh call effectively refetches per view.
func History(st *history.Store, refresher OrderRefresher, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := reqLogger(logger, r)

		code := strings.TrimSpace(chi.URLParam(r, "code"))
		if code == "" || code == catalog.NoCode {
			writeError(w, http.StatusBadRequest, "código de producto no válido")
			return
		}

		refresher.Load(r.Context())
		recs := history.Find(code, st.Records())
		metrics.HistoryLookups.Inc()

		items := make([]historyItem, len(recs))
		for i, rec := range recs {
			items[i] = historyItem{
				Codigo:      history.Code(rec),
				Producto:    history.Product(rec),
				FechaHora:   history.DateTime(rec),
				Fecha:       history.Date(rec),
				Inicio:      history.Start(rec),
				Fin:         history.End(rec),
				Cantidad:    history.Quantity(rec),
				Despacho:    history.Dispatch(rec),
				Sucursal:    history.Branch(rec),
				Laboratorio: history.Lab(rec),
				Solicitud:   history.Request(rec),
				Correo:      history.Email(rec),
				Picker:      history.Picker(rec),
				Contado:     history.Counted(rec),
				Revisado:    history.Reviewed(rec),
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"codigo":  code,
			"count":   len(items),
			"history": items,
		})

		log.Debug().Str("codigo", code).Int("records", len(items)).Msg("history lookup")
	}
}
