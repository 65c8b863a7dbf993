package interfaces

import (
	"context"
	"io"
)

// HTTPClient abstracts the outbound transport used by the fetch strategies.
// The pipeline only ever issues GETs; the abstraction exists so tests can
// script upstream behavior without a network.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	Get(ctx context.Context, url string) (Response, error)
}

// Response is the transport-agnostic view of an HTTP response.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body. The caller must close it.
	Body() io.ReadCloser

	// Header returns the value of the named header, or "" if absent.
	Header(key string) string
}
