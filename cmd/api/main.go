// ABOUTME: Main entry point for the feed reader API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"feedreader-api/api"
	"feedreader-api/api/handlers"
	"feedreader-api/core/aggregate"
	"feedreader-api/core/discover"
	"feedreader-api/core/fetch"
	"feedreader-api/core/interfaces"
	"feedreader-api/core/registry"
	"feedreader-api/core/search"
	"feedreader-api/infrastructure/cache/memory"
	"feedreader-api/infrastructure/cache/redis"
	"feedreader-api/infrastructure/cache/sqlite"
	stdhttp "feedreader-api/infrastructure/http/standard"
	logruslogger "feedreader-api/infrastructure/logger/logrus"
	"feedreader-api/pkg/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(cfg.Log.Level, cfg.Log.JSON)
	logger.Info("Starting feed reader API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"store_type": cfg.Store.Type,
	})

	store := newStore(cfg, logger)
	httpClient := stdhttp.NewStandardHTTPClient(30 * time.Second)

	deps := interfaces.Dependencies{
		Cache:      store,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	fetchService := fetch.NewService(deps, fetch.Config{
		ConversionEndpoint: cfg.Fetch.ConversionEndpoint,
		ProxyEndpoint:      cfg.Fetch.ProxyEndpoint,
		DirectTimeout:      cfg.Fetch.DirectTimeout,
	})
	searchResolver := search.NewResolver(deps, fetchService)
	aggregator := aggregate.NewService(deps, fetchService)
	registryService := registry.NewService(deps, fetchService)
	discoverService := discover.NewService(deps)

	router := api.NewRouter(api.Config{
		Logger:    logger,
		RateLimit: cfg.Server.RateLimit,
		RateBurst: cfg.Server.RateBurst,
		Feeds:     handlers.NewFeedHandler(fetchService, searchResolver, aggregator, registryService),
		Registry:  handlers.NewRegistryHandler(registryService),
		Discover:  handlers.NewDiscoverHandler(discoverService),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// newStore selects the store backend from config. Redis and SQLite failures
// fall back to memory so the server still comes up.
func newStore(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Store.Type {
	case "redis":
		store, err := redis.NewRedisCache(cfg.Store.Redis)
		if err == nil {
			logger.Info("Using Redis store", map[string]interface{}{
				"address": cfg.Store.Redis.Address,
			})
			return store
		}
		logger.Error("Redis store unavailable, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	case "sqlite":
		store, err := sqlite.NewSQLiteCache(cfg.Store.SQLite.Path)
		if err == nil {
			logger.Info("Using SQLite store", map[string]interface{}{
				"path": cfg.Store.SQLite.Path,
			})
			return store
		}
		logger.Error("SQLite store unavailable, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Using memory store", nil)
	return memory.NewMemoryCache()
}
