// ABOUTME: HTTP router assembly: CORS, request ids, logging, rate limiting, routes

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"feedreader-api/api/handlers"
	"feedreader-api/api/middleware"
	"feedreader-api/core/interfaces"
)

// Config holds router-level settings and the handlers to mount.
type Config struct {
	Logger    interfaces.Logger
	RateLimit float64
	RateBurst int

	Feeds    *handlers.FeedHandler
	Registry *handlers.RegistryHandler
	Discover *handlers.DiscoverHandler
}

// NewRouter assembles the full middleware chain and route table.
func NewRouter(cfg Config) chi.Router {
	router := chi.NewRouter()

	// CORS runs first so even rejected requests carry the headers.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.Recoverer)
	if cfg.Logger != nil {
		router.Use(middleware.RequestLogging(cfg.Logger))
	}
	if cfg.RateLimit > 0 && cfg.RateBurst > 0 {
		router.Use(middleware.RateLimit(middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)))
	}

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	router.Route("/api", func(r chi.Router) {
		r.Post("/feeds/fetch", cfg.Feeds.FetchFeeds)
		r.Get("/feeds/suggested", cfg.Registry.SuggestedFeeds)
		r.Get("/articles", cfg.Feeds.AllArticles)

		r.Get("/subscriptions", cfg.Registry.ListSubscriptions)
		r.Post("/subscriptions", cfg.Registry.AddSubscription)
		r.Delete("/subscriptions/{id}", cfg.Registry.RemoveSubscription)

		r.Get("/bookmarks", cfg.Registry.ListBookmarks)
		r.Post("/bookmarks", cfg.Registry.AddBookmark)
		r.Delete("/bookmarks", cfg.Registry.RemoveBookmark)

		r.Get("/categories", cfg.Registry.ListCategories)
		r.Post("/categories", cfg.Registry.AddCategory)
		r.Delete("/categories/{id}", cfg.Registry.RemoveCategory)

		r.Get("/settings", cfg.Registry.GetSettings)
		r.Put("/settings", cfg.Registry.SaveSettings)

		r.Post("/discover", cfg.Discover.Discover)
	})

	return router
}
