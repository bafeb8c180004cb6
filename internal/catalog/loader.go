package catalog

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ricardobolanios964-sudo/inventario3.0/internal/cache"
	"github.com/ricardobolanios964-sudo/inventario3.0/internal/metrics"
)

// CacheKey is the persisted-snapshot key for the catalog dataset.
const CacheKey = "farmacia_bolanos_inventory_cache_v2"

// Fetcher retrieves the published catalog CSV.
type Fetcher interface {
	FetchCatalog(ctx context.Context) (string, error)
}

// Loader populates the catalog Store, preferring a fresh cached snapshot
// over a network fetch. Concurrent Load calls are tolerated but may
// duplicate the fetch; the last wholesale Replace wins (the orders loader
// carries an in-flight guard, this one intentionally does not).
type Loader struct {
	store *Store
	cache cache.Store
	feed  Fetcher
	log   zerolog.Logger
	ttl   time.Duration
	now   func() time.Time
}

func NewLoader(store *Store, cs cache.Store, feed Fetcher, log zerolog.Logger, ttl time.Duration) *Loader {
	return &Loader{store: store, cache: cs, feed: feed, log: log, ttl: ttl, now: time.Now}
}

// Load fills the store from cache or the remote feed. Failures are logged
// and swallowed: the store is marked loaded either way so dependents are
// never blocked, just possibly empty.
func (l *Loader) Load(ctx context.Context) {
	l.load(ctx, false)
}

// Reload bypasses the freshness check and always fetches.
func (l *Loader) Reload(ctx context.Context) {
	l.load(ctx, true)
}

func (l *Loader) load(ctx context.Context, force bool) {
	if !force {
		if data, ts, ok := cache.Get[Record](ctx, l.cache, CacheKey); ok && cache.FreshAt(ts, l.ttl, l.now()) {
			// cached records carry no column mapping; accessors fall back
			// to the probe lists per record
			l.store.Replace(data, Mapping{})
			metrics.CatalogLoads.WithLabelValues("cache").Inc()
			l.log.Info().Int("products", len(data)).Msg("catalog loaded from cache")
			return
		}
	}

	text, err := l.feed.FetchCatalog(ctx)
	if err != nil {
		metrics.CatalogLoads.WithLabelValues("error").Inc()
		l.log.Error().Err(err).Msg("catalog fetch failed")
		l.store.MarkLoaded()
		return
	}
	recs, m := ParseCSV(text)
	l.store.Replace(recs, m)

	if err := cache.Put(ctx, l.cache, CacheKey, recs, l.now()); err != nil {
		l.log.Warn().Err(err).Msg("catalog cache write failed")
	}
	metrics.CatalogLoads.WithLabelValues("fetch").Inc()
	l.log.Info().Int("products", len(recs)).Str("code_col", m.CodeCol).Str("name_col", m.NameCol).Msg("catalog loaded")
}

// ImportRows replaces the catalog from an uploaded spreadsheet snapshot,
// writing through to the cache exactly like a network load.
func (l *Loader) ImportRows(ctx context.Context, rows [][]string) int {
	recs, m := FromRows(rows)
	l.store.Replace(recs, m)
	if err := cache.Put(ctx, l.cache, CacheKey, recs, l.now()); err != nil {
		l.log.Warn().Err(err).Msg("catalog cache write failed")
	}
	l.log.Info().Int("products", len(recs)).Msg("catalog imported from snapshot")
	return len(recs)
}
