// ABOUTME: FeedLocator tagged union distinguishing real feed URLs from virtual search locators
// ABOUTME: Parsed once at the API boundary so the pipeline never branches on raw strings

package domain

import (
	"net/url"
	"strings"
)

// SearchPrefix is the reserved scheme prefix of a virtual search locator.
// The full wire format is search://query/<urlencoded query>?lang=..&category=..&country=..
const SearchPrefix = "search://query/"

// LocatorKind discriminates the two locator variants.
type LocatorKind int

const (
	// LocatorURL is a plain fetchable HTTP(S) feed URL
	LocatorURL LocatorKind = iota

	// LocatorSearch is a virtual search locator, never sent over the wire
	LocatorSearch
)

// SearchQuery holds the four parameters encoded in a virtual search locator.
type SearchQuery struct {
	Query    string `json:"query"`
	Language string `json:"language"`
	Category string `json:"category"`
	Country  string `json:"country"`
}

// FeedLocator is either a real feed URL or a decoded search query.
type FeedLocator struct {
	Kind   LocatorKind
	URL    string
	Search SearchQuery
}

// ParseLocator decides which variant a raw locator string is. Real URLs pass
// through untouched; search locators are decoded with defaults en/general/us.
func ParseLocator(raw string) FeedLocator {
	if !strings.HasPrefix(raw, SearchPrefix) {
		return FeedLocator{Kind: LocatorURL, URL: raw}
	}

	rest := strings.TrimPrefix(raw, SearchPrefix)
	encoded := rest
	params := url.Values{}
	if i := strings.Index(rest, "?"); i >= 0 {
		encoded = rest[:i]
		if v, err := url.ParseQuery(rest[i+1:]); err == nil {
			params = v
		}
	}

	query, err := url.PathUnescape(encoded)
	if err != nil {
		query = encoded
	}

	return FeedLocator{
		Kind: LocatorSearch,
		Search: SearchQuery{
			Query:    query,
			Language: paramOrDefault(params, "lang", "en"),
			Category: paramOrDefault(params, "category", "general"),
			Country:  paramOrDefault(params, "country", "us"),
		},
	}
}

// SearchLocator encodes a query back into its wire form.
func SearchLocator(q SearchQuery) string {
	v := url.Values{}
	v.Set("lang", q.Language)
	v.Set("category", q.Category)
	v.Set("country", q.Country)
	return SearchPrefix + url.PathEscape(q.Query) + "?" + v.Encode()
}

func paramOrDefault(params url.Values, key, def string) string {
	if v := params.Get(key); v != "" {
		return v
	}
	return def
}
