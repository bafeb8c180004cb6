package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestFetchCatalog(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("_t") != "" {
			t.Error("catalog fetch must not carry a cache-buster")
		}
		w.Write([]byte("CODIGO,NOMBRE\n1,Gasas\n"))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, srv.URL)
	text, err := c.FetchCatalog(context.Background())
	if err != nil {
		t.Fatalf("FetchCatalog: %v", err)
	}
	if text != "CODIGO,NOMBRE\n1,Gasas\n" {
		t.Errorf("text = %q", text)
	}
}

func TestFetchOrdersCacheBuster(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query().Get("_t")
		w.Write([]byte("CODIGO\n1\n"))
	}))
	defer srv.Close()

	now := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	c := NewClient(srv.Client(), srv.URL, srv.URL+"?gid=42")
	c.now = func() time.Time { return now }

	if _, err := c.FetchOrders(context.Background()); err != nil {
		t.Fatalf("FetchOrders: %v", err)
	}
	if got != "1788170400000" {
		t.Errorf("_t = %q, want unix millis of fake clock", got)
	}
}

func TestFetchNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, srv.URL)
	if _, err := c.FetchCatalog(context.Background()); err == nil {
		t.Error("non-200 status must surface as an error")
	}
}
