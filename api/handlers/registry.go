// ABOUTME: Endpoints for the user's persisted records
// ABOUTME: Subscriptions, bookmarks, categories, settings, and the curated list

package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
	"feedreader-api/core/registry"
)

// RegistryHandler serves record CRUD endpoints.
type RegistryHandler struct {
	registry *registry.Service
}

// NewRegistryHandler creates a new registry handler.
func NewRegistryHandler(svc *registry.Service) *RegistryHandler {
	return &RegistryHandler{registry: svc}
}

// ListSubscriptions handles GET /api/subscriptions.
func (h *RegistryHandler) ListSubscriptions(w http.ResponseWriter, r *http.Request) {
	feeds, err := h.registry.ListFeeds(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.Subscription{"subscriptions": feeds})
}

type addSubscriptionRequest struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Category string `json:"category"`
	Language string `json:"language"`
}

// AddSubscription handles POST /api/subscriptions.
func (h *RegistryHandler) AddSubscription(w http.ResponseWriter, r *http.Request) {
	var req addSubscriptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &errors.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}

	sub, err := h.registry.AddFeed(r.Context(), req.Name, req.URL, req.Category, req.Language)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sub)
}

// RemoveSubscription handles DELETE /api/subscriptions/{id}.
func (h *RegistryHandler) RemoveSubscription(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.RemoveFeed(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListBookmarks handles GET /api/bookmarks.
func (h *RegistryHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	bookmarks, err := h.registry.ListBookmarks(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.Bookmark{"bookmarks": bookmarks})
}

type addBookmarkRequest struct {
	Article  domain.Article `json:"article"`
	FeedName string         `json:"feedName"`
}

// AddBookmark handles POST /api/bookmarks.
func (h *RegistryHandler) AddBookmark(w http.ResponseWriter, r *http.Request) {
	var req addBookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &errors.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}
	if req.Article.Link == "" {
		writeError(w, &errors.ValidationError{Field: "article.link", Message: "cannot be empty"})
		return
	}

	if err := h.registry.AddBookmark(r.Context(), req.Article, req.FeedName); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveBookmark handles DELETE /api/bookmarks?link=...
func (h *RegistryHandler) RemoveBookmark(w http.ResponseWriter, r *http.Request) {
	link := r.URL.Query().Get("link")
	if link == "" {
		writeError(w, &errors.ValidationError{Field: "link", Message: "cannot be empty"})
		return
	}

	if err := h.registry.RemoveBookmark(r.Context(), link); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListCategories handles GET /api/categories.
func (h *RegistryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.registry.ListCategories(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]domain.Category{"categories": categories})
}

type addCategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// AddCategory handles POST /api/categories.
func (h *RegistryHandler) AddCategory(w http.ResponseWriter, r *http.Request) {
	var req addCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &errors.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}

	category, err := h.registry.AddCategory(r.Context(), req.Name, req.Color)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, category)
}

// RemoveCategory handles DELETE /api/categories/{id}.
func (h *RegistryHandler) RemoveCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.RemoveCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetSettings handles GET /api/settings.
func (h *RegistryHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	blob, err := h.registry.Settings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if blob == nil {
		blob = []byte("{}")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(blob)
}

// SaveSettings handles PUT /api/settings. The body is stored as-is once it
// proves to be valid JSON.
func (h *RegistryHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, &errors.ValidationError{Field: "body", Message: "unreadable"})
		return
	}
	if !json.Valid(raw) {
		writeError(w, &errors.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}

	if err := h.registry.SaveSettings(r.Context(), raw); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SuggestedFeeds handles GET /api/feeds/suggested?category=...
func (h *RegistryHandler) SuggestedFeeds(w http.ResponseWriter, r *http.Request) {
	feeds := registry.Suggested(r.URL.Query().Get("category"))
	writeJSON(w, http.StatusOK, map[string][]registry.SuggestedFeed{"feeds": feeds})
}
