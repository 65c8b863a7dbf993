package interfaces

// Dependencies holds all external dependencies required by the core services.
type Dependencies struct {
	// Cache is the key-value store for records and cached search results
	Cache Cache

	// HTTPClient provides outbound HTTP requests
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
