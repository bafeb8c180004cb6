package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	"github.com/ricardobolanios964-sudo/inventario3.0/internal/cache"
	"github.com/ricardobolanios964-sudo/inventario3.0/internal/catalog"
	"github.com/ricardobolanios964-sudo/inventario3.0/internal/config"
	"github.com/ricardobolanios964-sudo/inventario3.0/internal/count"
	"github.com/ricardobolanios964-sudo/inventario3.0/internal/feed"
	"github.com/ricardobolanios964-sudo/inventario3.0/internal/history"
	serverhttp "github.com/ricardobolanios964-sudo/inventario3.0/server/http"
)

func main() {
	if runtime.GOMAXPROCS(0) < runtime.NumCPU() {
		runtime.GOMAXPROCS(runtime.NumCPU())
	}

	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	if err := os.MkdirAll(filepath.Dir(cfg.CachePath), 0o755); err != nil {
		logger.Fatal().Err(err).Str("path", cfg.CachePath).Msg("cache dir")
	}
	store, err := cache.OpenSQLite(cfg.CachePath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.CachePath).Msg("open cache")
	}
	defer store.Close()

	client := feed.NewClient(nil, cfg.CatalogURL, cfg.OrdersURL)

	catStore := catalog.NewStore()
	catLoader := catalog.NewLoader(catStore, store, client, logger, cfg.CatalogTTL)

	ordStore := history.NewStore()
	ordLoader := history.NewLoader(ordStore, store, client, logger, cfg.OrdersTTL)

	submitter := count.NewSubmitter(nil, cfg.SubmitURL, logger)

	// warm the catalog without blocking startup
	go catLoader.Load(context.Background())

	r := serverhttp.NewRouter(cfg, logger, serverhttp.Deps{
		Catalog:       catStore,
		CatalogLoader: catLoader,
		Orders:        ordStore,
		OrdersLoader:  ordLoader,
		Submitter:     submitter,
	})

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
