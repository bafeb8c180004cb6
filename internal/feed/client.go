// Package feed fetches the published spreadsheet CSVs.
package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ricardobolanios964-sudo/inventario3.0/internal/csvio"
)

// Client pulls the catalog and orders feeds. The endpoints are fixed per
// deployment and unauthenticated (published Google Sheets CSV links).
type Client struct {
	httpc      *http.Client
	catalogURL string
	ordersURL  string
	now        func() time.Time
}

func NewClient(httpc *http.Client, catalogURL, ordersURL string) *Client {
	if httpc == nil {
		httpc = http.DefaultClient
	}
	return &Client{httpc: httpc, catalogURL: catalogURL, ordersURL: ordersURL, now: time.Now}
}

func (c *Client) FetchCatalog(ctx context.Context) (string, error) {
	return c.get(ctx, c.catalogURL)
}

// FetchOrders appends a timestamp query parameter so no intermediary cache
// ever serves a stale orders snapshot.
func (c *Client) FetchOrders(ctx context.Context) (string, error) {
	sep := "?"
	if strings.Contains(c.ordersURL, "?") {
		sep = "&"
	}
	return c.get(ctx, fmt.Sprintf("%s%s_t=%d", c.ordersURL, sep, c.now().UnixMilli()))
}

func (c *Client) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("feed: unexpected status %s", resp.Status)
	}
	b, err := io.ReadAll(csvio.DecodeUTF8(resp.Body))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
