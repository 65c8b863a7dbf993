// ABOUTME: Direct-mode fetch variant used by the search resolver
// ABOUTME: Recursion-safe, deny-lists known-bad URLs, bounds the proxy call with a timeout

package fetch

import (
	"context"
	"strings"

	"feedreader-api/core/domain"
	"feedreader-api/core/errors"
)

// denyList holds URL substrings that reliably fail through both strategies.
// Rejecting them up front saves two wasted round-trips per candidate.
var denyList = []string{
	"news.google.com/rss/search",
	"allorigins.win",
	"cors-anywhere",
}

// FetchDirect resolves a real feed URL for the search resolver. It differs
// from Fetch in three ways: it can never re-enter the virtual-search branch
// (it only accepts plain URLs), it fails fast on deny-listed URLs, and its
// proxy fallback is bounded by the configured timeout with a distinct
// "timeout" reason.
func (s *Service) FetchDirect(ctx context.Context, feedURL string) (*domain.FeedData, error) {
	for _, fragment := range denyList {
		if strings.Contains(feedURL, fragment) {
			return nil, &errors.FetchError{
				URL:     feedURL,
				Reasons: []string{"skipping known-unfetchable feed URL"},
			}
		}
	}

	return s.run(ctx, feedURL, []strategyFn{
		s.fromConversionAPIDirect,
		s.fromContentProxyWithTimeout,
	})
}

// fromConversionAPIDirect is the conversion strategy with the 422 responses
// the endpoint uses for rate limiting reported as such instead of as a
// generic upstream error.
func (s *Service) fromConversionAPIDirect(ctx context.Context, feedURL string) (*domain.FeedData, string) {
	data, reason := s.fromConversionAPI(ctx, feedURL)
	if data != nil {
		return data, ""
	}
	if strings.HasSuffix(reason, "422") {
		return nil, "conversion API rate limited or rejected URL"
	}
	return nil, reason
}

// fromContentProxyWithTimeout bounds the proxy strategy so one slow candidate
// cannot stall the whole search resolution.
func (s *Service) fromContentProxyWithTimeout(ctx context.Context, feedURL string) (*domain.FeedData, string) {
	tctx, cancel := context.WithTimeout(ctx, s.cfg.DirectTimeout)
	defer cancel()

	data, reason := s.fromContentProxy(tctx, feedURL)
	if data != nil {
		return data, ""
	}
	if tctx.Err() == context.DeadlineExceeded {
		return nil, "content proxy timeout"
	}
	return nil, reason
}
