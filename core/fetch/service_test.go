package fetch

import (
	"context"
	"strings"
	"testing"
	"time"

	"feedreader-api/core/errors"
	"feedreader-api/core/interfaces"
)

const feedURL = "https://example.com/feed.xml"

func testConfig() Config {
	return Config{
		ConversionEndpoint: "https://conv.test/api",
		ProxyEndpoint:      "https://proxy.test/get",
		DirectTimeout:      10 * time.Second,
	}
}

func newService(client *mockHTTPClient) (*Service, *mockLogger) {
	logger := &mockLogger{}
	deps := interfaces.Dependencies{
		Cache:      &mockCache{},
		HTTPClient: client,
		Logger:     logger,
	}
	return NewService(deps, testConfig()), logger
}

func conversionOK() string {
	return `{
		"status": "ok",
		"feed": {"title": "Example", "link": "https://example.com", "description": "d"},
		"items": [
			{"title": "A", "link": "https://example.com/a", "description": "da", "pubDate": "2024-03-01T10:00:00Z", "guid": "a"},
			{"title": "B", "link": "https://example.com/b", "description": "db", "pubDate": "2024-03-01T09:00:00Z", "guid": ""}
		]
	}`
}

func TestFetch_ConversionAPISuccess(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if !strings.HasPrefix(url, "https://conv.test/api?rss_url=") {
				t.Errorf("unexpected request URL %q", url)
			}
			if !strings.Contains(url, "count=20") {
				t.Errorf("conversion request should cap at 20 items: %q", url)
			}
			return &mockResponse{statusCode: 200, body: conversionOK()}, nil
		},
	}
	svc, _ := newService(client)

	data, err := svc.Fetch(context.Background(), feedURL)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if data.Status != "ok" || len(data.Items) != 2 {
		t.Fatalf("unexpected result: %+v", data)
	}
	if data.Items[1].GUID != "https://example.com/b" {
		t.Errorf("empty guid should default to link, got %q", data.Items[1].GUID)
	}
	if len(client.calls) != 1 {
		t.Errorf("expected 1 HTTP call, got %d", len(client.calls))
	}
}

func TestFetch_FallsBackToProxy(t *testing.T) {
	feedXML := `<rss><channel><title>P</title>
<item><title>X</title><link>https://example.com/x</link></item>
</channel></rss>`

	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if strings.HasPrefix(url, "https://conv.test/") {
				return &mockResponse{statusCode: 500, body: "boom"}, nil
			}
			return &mockResponse{statusCode: 200, body: `{"contents": "` + strings.ReplaceAll(feedXML, "\n", " ") + `"}`}, nil
		},
	}
	svc, _ := newService(client)

	data, err := svc.Fetch(context.Background(), feedURL)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if data.Feed.Title != "P" {
		t.Errorf("Feed.Title = %q, want parsed proxy content", data.Feed.Title)
	}
	if len(client.calls) != 2 {
		t.Errorf("expected 2 HTTP calls, got %d", len(client.calls))
	}
}

func TestFetch_AllStrategiesFail_JoinsReasons(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if strings.HasPrefix(url, "https://conv.test/") {
				// Well-formed response with zero items.
				return &mockResponse{statusCode: 200, body: `{"status": "ok", "items": []}`}, nil
			}
			return &mockResponse{statusCode: 502, body: "bad gateway"}, nil
		},
	}
	svc, logger := newService(client)

	_, err := svc.Fetch(context.Background(), feedURL)
	if !errors.IsFetch(err) {
		t.Fatalf("Fetch returned %v, want FetchError", err)
	}

	fetchErr := err.(*errors.FetchError)
	if len(fetchErr.Reasons) != 2 {
		t.Fatalf("Reasons = %v, want one per strategy", fetchErr.Reasons)
	}

	msg := err.Error()
	if !strings.Contains(msg, "no items found in feed") {
		t.Errorf("message %q should record the empty-item failure", msg)
	}
	if !strings.Contains(msg, "content proxy error: 502") {
		t.Errorf("message %q should record the proxy failure", msg)
	}
	if !strings.Contains(msg, "no items found in feed, content proxy error: 502") {
		t.Errorf("message %q should join reasons with a comma", msg)
	}
	if len(logger.warnings) != 2 {
		t.Errorf("expected each strategy failure logged, got %d", len(logger.warnings))
	}
}

func TestFetch_ProxyWithoutContents(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if strings.HasPrefix(url, "https://conv.test/") {
				return &mockResponse{statusCode: 404, body: ""}, nil
			}
			return &mockResponse{statusCode: 200, body: `{}`}, nil
		},
	}
	svc, _ := newService(client)

	_, err := svc.Fetch(context.Background(), feedURL)
	if !errors.IsFetch(err) {
		t.Fatalf("Fetch returned %v, want FetchError", err)
	}
	if !strings.Contains(err.Error(), "no content received from content proxy") {
		t.Errorf("message %q should name the missing contents field", err.Error())
	}
}

func TestFetch_ConversionMessagePreferred(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			if strings.HasPrefix(url, "https://conv.test/") {
				return &mockResponse{statusCode: 200, body: `{"status": "error", "message": "feed not supported"}`}, nil
			}
			return &mockResponse{statusCode: 502, body: ""}, nil
		},
	}
	svc, _ := newService(client)

	_, err := svc.Fetch(context.Background(), feedURL)
	if err == nil || !strings.Contains(err.Error(), "feed not supported") {
		t.Errorf("upstream message should be preserved, got %v", err)
	}
}

func TestFetch_NoHTTPClient(t *testing.T) {
	svc := NewService(interfaces.Dependencies{}, testConfig())

	_, err := svc.Fetch(context.Background(), feedURL)
	if !errors.IsFetch(err) {
		t.Fatalf("Fetch returned %v, want FetchError", err)
	}
}
