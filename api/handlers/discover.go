// ABOUTME: Feed discovery endpoint resolving page URLs to their advertised feeds

package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"feedreader-api/core/discover"
	"feedreader-api/core/errors"
)

// Discoverer scans pages for advertised feeds.
type Discoverer interface {
	Discover(ctx context.Context, pageURLs []string) []discover.Result
}

// DiscoverHandler serves feed discovery.
type DiscoverHandler struct {
	discoverer Discoverer
}

// NewDiscoverHandler creates a new discovery handler.
func NewDiscoverHandler(discoverer Discoverer) *DiscoverHandler {
	return &DiscoverHandler{discoverer: discoverer}
}

type discoverRequest struct {
	URLs []string `json:"urls"`
}

// Discover handles POST /api/discover.
func (h *DiscoverHandler) Discover(w http.ResponseWriter, r *http.Request) {
	var req discoverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, &errors.ValidationError{Field: "body", Message: "invalid JSON"})
		return
	}
	if len(req.URLs) == 0 {
		writeError(w, &errors.ValidationError{Field: "urls", Message: "cannot be empty"})
		return
	}

	results := h.discoverer.Discover(r.Context(), req.URLs)
	writeJSON(w, http.StatusOK, map[string][]discover.Result{"feeds": results})
}
