package serverhttp

import (
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ricardobolanios964-sudo/inventario3.0/internal/catalog"
	"github.com/ricardobolanios964-sudo/inventario3.0/internal/config"
	"github.com/ricardobolanios964-sudo/inventario3.0/internal/count"
	"github.com/ricardobolanios964-sudo/inventario3.0/internal/history"
	"github.com/ricardobolanios964-sudo/inventario3.0/internal/metrics"
	"github.com/ricardobolanios964-sudo/inventario3.0/internal/middleware"
	"github.com/ricardobolanios964-sudo/inventario3.0/server/http/handlers"
)

// Deps carries the wired application state into the router.
type Deps struct {
	Catalog       *catalog.Store
	CatalogLoader *catalog.Loader
	Orders        *history.Store
	OrdersLoader  *history.Loader
	Submitter     *count.Submitter
}

func NewRouter(cfg config.Config, logger zerolog.Logger, d Deps) *chi.Mux {
	r := chi.NewRouter()

	// order matters: recover -> requestID -> logging -> cors -> limit
	r.Use(middleware.Recover(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS(cfg.AllowOrigins))
	r.Use(middleware.LimitBytes(int64(cfg.MaxUploadMB) * 1024 * 1024))

	r.Get("/health", handlers.Health)
	r.Method("GET", "/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/search", handlers.Search(d.Catalog, logger))
		r.Get("/products/{code}/history", handlers.History(d.Orders, d.OrdersLoader, logger))
		r.Post("/counts", handlers.SubmitCount(d.Submitter, logger))
		r.Post("/catalog/reload", handlers.ReloadCatalog(d.CatalogLoader, d.Catalog, logger))
		r.Post("/catalog/import", handlers.ImportCatalog(d.CatalogLoader, logger))
	})

	return r
}
