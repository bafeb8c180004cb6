// Package cache is the persistence boundary for fetched feed snapshots:
// whole payloads keyed by dataset, stamped with their fetch time.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// Payload is one cached dataset. Timestamp is unix milliseconds of the
// fetch that produced it. Payloads are replaced wholesale, never patched.
type Payload struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

// Fresh reports whether the payload is younger than ttl.
func (p Payload) Fresh(ttl time.Duration, now time.Time) bool {
	return FreshAt(p.Timestamp, ttl, now)
}

// FreshAt reports whether a fetch at unix-milli ts is younger than ttl.
func FreshAt(ts int64, ttl time.Duration, now time.Time) bool {
	return now.UnixMilli()-ts < ttl.Milliseconds()
}

// Store is a key-value payload store. Read returns false for both missing
// and unreadable entries: corruption is a cache miss, never an error.
type Store interface {
	Read(ctx context.Context, key string) (Payload, bool)
	Write(ctx context.Context, key string, p Payload) error
}

// Get reads and decodes a cached record slice. Any decode failure counts
// as a miss.
func Get[T any](ctx context.Context, s Store, key string) (data []T, ts int64, ok bool) {
	p, ok := s.Read(ctx, key)
	if !ok {
		return nil, 0, false
	}
	var out []T
	if err := json.Unmarshal(p.Data, &out); err != nil {
		return nil, 0, false
	}
	return out, p.Timestamp, true
}

// Put replaces the payload under key with data stamped at now.
func Put[T any](ctx context.Context, s Store, key string, data []T, now time.Time) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return s.Write(ctx, key, Payload{Data: raw, Timestamp: now.UnixMilli()})
}
