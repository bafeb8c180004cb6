package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ricardobolanios964-sudo/inventario3.0/internal/count"
	"github.com/ricardobolanios964-sudo/inventario3.0/internal/metrics"
)

// CountSubmitter forwards a finished entry to the ingestion endpoint.
type CountSubmitter interface {
	Submit(ctx context.Context, e count.Entry) error
}

type countRequest struct {
	RegistryID    string `json:"id_registro"`
	Code          string `json:"codigo"`
	Name          string `json:"nombre"`
	PhysicalCount string `json:"cantidad_fisica"`
	Observations  string `json:"observaciones"`
	StartTime     string `json:"hora_inicio"`
}

// SubmitCount serves POST /api/counts. The registry id and start time are
// generated server-side when the client did not carry them through a
// counting session.
func SubmitCount(sub CountSubmitter, logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := reqLogger(logger, r)

		var req countRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "cuerpo JSON no válido")
			return
		}

		code := strings.TrimSpace(req.Code)
		if code == "" {
			writeError(w, http.StatusBadRequest, "falta el código del producto")
			return
		}
		qty := strings.TrimSpace(req.PhysicalCount)
		if _, ok := count.ParseQuantity(qty); !ok {
			writeError(w, http.StatusBadRequest, "cantidad física no válida")
			return
		}

		now := time.Now()
		id := strings.TrimSpace(req.RegistryID)
		if id == "" {
			id = count.GenerateID(now)
		}
		start := strings.TrimSpace(req.StartTime)
		if start == "" {
			start = count.FormatTime(now)
		}

		entry := count.Entry{
			RegistryID:    id,
			Date:          count.FormatDate(now),
			StartTime:     start,
			EndTime:       count.FormatTime(now),
			Code:          code,
			Name:          strings.TrimSpace(req.Name),
			PhysicalCount: qty,
			Observations:  strings.TrimSpace(req.Observations),
			Status:        count.StatusRegistered,
		}

		if err := sub.Submit(r.Context(), entry); err != nil {
			metrics.Submissions.WithLabelValues("error").Inc()
			log.Error().Err(err).Str("id", id).Msg("count submission failed")
			writeError(w, http.StatusBadGateway, "no se pudo enviar el conteo, verifica tu conexión e intenta nuevamente")
			return
		}
		metrics.Submissions.WithLabelValues("ok").Inc()

		writeJSON(w, http.StatusOK, map[string]string{
			"id_registro": id,
			"estatus":     count.StatusRegistered,
		})
	}
}
