package count

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/rs/zerolog"
)

// Submitter posts count entries to the Apps Script ingestion endpoint.
type Submitter struct {
	httpc *http.Client
	url   string
	log   zerolog.Logger
}

func NewSubmitter(httpc *http.Client, url string, log zerolog.Logger) *Submitter {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Submitter{httpc: httpc, url: url, log: log}
}

// Submit is fire-and-forget: the endpoint's response is opaque (the
// original client posted no-cors), so only transport-level failures are
// reported. Status codes and bodies are drained and ignored.
func (s *Submitter) Submit(ctx context.Context, e Entry) error {
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpc.Do(req)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	s.log.Info().Str("id", e.RegistryID).Str("codigo", e.Code).Msg("count submitted")
	return nil
}
