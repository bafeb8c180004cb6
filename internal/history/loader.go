package history

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/ricardobolanios964-sudo/inventario3.0/internal/cache"
	"github.com/ricardobolanios964-sudo/inventario3.0/internal/metrics"
)

// CacheKey is the persisted-snapshot key for the orders dataset.
const CacheKey = "farmacia_bolanos_pedidos_cache"

// Fetcher retrieves the published orders CSV, cache-busted per request.
type Fetcher interface {
	FetchOrders(ctx context.Context) (string, error)
}

// Loader refreshes the order Store. The TTL is deliberately near zero so
// almost every history view hits the network, but a single-slot in-flight
// guard keeps concurrent views from stacking duplicate fetches.
type Loader struct {
	store    *Store
	cache    cache.Store
	feed     Fetcher
	log      zerolog.Logger
	ttl      time.Duration
	now      func() time.Time
	inFlight atomic.Bool
}

func NewLoader(store *Store, cs cache.Store, feed Fetcher, log zerolog.Logger, ttl time.Duration) *Loader {
	return &Loader{store: store, cache: cs, feed: feed, log: log, ttl: ttl, now: time.Now}
}

// Load refreshes the order set from cache or the feed. A load already in
// flight makes this call a no-op. Fetch failures are logged and swallowed;
// unlike the catalog, a failed order load does not mark the store loaded.
func (l *Loader) Load(ctx context.Context) {
	if !l.inFlight.CompareAndSwap(false, true) {
		return
	}
	defer l.inFlight.Store(false)

	if data, ts, ok := cache.Get[Record](ctx, l.cache, CacheKey); ok && cache.FreshAt(ts, l.ttl, l.now()) {
		l.store.Replace(data)
		metrics.OrderLoads.WithLabelValues("cache").Inc()
		return
	}

	text, err := l.feed.FetchOrders(ctx)
	if err != nil {
		metrics.OrderLoads.WithLabelValues("error").Inc()
		l.log.Error().Err(err).Msg("orders fetch failed")
		return
	}
	recs := ParseCSV(text)
	l.store.Replace(recs)

	if err := cache.Put(ctx, l.cache, CacheKey, recs, l.now()); err != nil {
		l.log.Warn().Err(err).Msg("orders cache write failed")
	}
	metrics.OrderLoads.WithLabelValues("fetch").Inc()
	l.log.Info().Int("orders", len(recs)).Msg("orders loaded")
}
