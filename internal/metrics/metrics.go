// Package metrics exposes the service's Prometheus counters.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CatalogLoads counts catalog load attempts by outcome: cache, fetch, error.
	CatalogLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventario_catalog_loads_total",
		Help: "Catalog load attempts by outcome.",
	}, []string{"outcome"})

	// OrderLoads counts order-history load attempts by outcome: cache, fetch, error.
	OrderLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventario_order_loads_total",
		Help: "Order history load attempts by outcome.",
	}, []string{"outcome"})

	Searches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventario_searches_total",
		Help: "Catalog search requests served.",
	})

	HistoryLookups = promauto.NewCounter(prometheus.CounterOpts{
		Name: "inventario_history_lookups_total",
		Help: "Product history lookups served.",
	})

	// Submissions counts count submissions by outcome: ok, error.
	Submissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inventario_count_submissions_total",
		Help: "Physical count submissions by outcome.",
	}, []string{"outcome"})
)

// Handler serves the default registry.
func Handler() http.Handler { return promhttp.Handler() }
