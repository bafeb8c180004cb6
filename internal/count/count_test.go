package count

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestGenerateIDFormat(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
	re := regexp.MustCompile(`^FARM-260831-1430-\d{3}$`)
	for i := 0; i < 10; i++ {
		if id := GenerateID(now); !re.MatchString(id) {
			t.Fatalf("GenerateID = %q, want match %s", id, re)
		}
	}
}

func TestFormats(t *testing.T) {
	ts := time.Date(2026, 1, 5, 9, 7, 0, 0, time.UTC)
	if got := FormatDate(ts); got != "05/01/2026" {
		t.Errorf("FormatDate = %q", got)
	}
	if got := FormatTime(ts); got != "09:07" {
		t.Errorf("FormatTime = %q", got)
	}
}

func TestEntryFieldNames(t *testing.T) {
	b, err := json.Marshal(Entry{RegistryID: "x", Status: StatusRegistered})
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatal(err)
	}
	// the sheet's column names, misspelling included
	for _, k := range []string{"ID_REGISTRO", "FECHA", "HORA INCIO", "HORA FIN",
		"CODIGO", "NOMBRE", "CANTIDAD_FISICA", "OBSERVACIONES", "ESTATUS"} {
		if _, ok := m[k]; !ok {
			t.Errorf("payload missing field %q: %s", k, b)
		}
	}
}

func TestParseQuantity(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"12", 12, true},
		{"1 234,50", 1234.50, true},
		{"0,5", 0.5, true},
		{"1 234", 1234, true},
		{"", 0, false},
		{"-", 0, false},
		{"abc", 0, false},
		{"-3", -3, true},
	}
	for _, c := range cases {
		got, ok := ParseQuantity(c.in)
		if got != c.want || ok != c.ok {
			t.Errorf("ParseQuantity(%q) = %v,%v want %v,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestSubmitPostsJSON(t *testing.T) {
	var got Entry
	var contentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&got)
		// response body is ignored by the submitter
		w.WriteHeader(http.StatusFound)
	}))
	defer srv.Close()

	s := NewSubmitter(srv.Client(), srv.URL, zerolog.Nop())
	e := Entry{RegistryID: "FARM-1", Code: "100", Status: StatusRegistered}
	if err := s.Submit(context.Background(), e); err != nil {
		t.Fatalf("Submit: %v (non-2xx status must not be an error)", err)
	}
	if contentType != "application/json" {
		t.Errorf("Content-Type = %q", contentType)
	}
	if got.RegistryID != "FARM-1" || got.Code != "100" {
		t.Errorf("posted entry = %+v", got)
	}
}

func TestSubmitTransportError(t *testing.T) {
	s := NewSubmitter(&http.Client{Timeout: 50 * time.Millisecond}, "http://127.0.0.1:1", zerolog.Nop())
	if err := s.Submit(context.Background(), Entry{}); err == nil {
		t.Error("unreachable endpoint must surface a transport error")
	}
}
