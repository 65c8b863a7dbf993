// ABOUTME: Syntactic URL validation for feed registration
// ABOUTME: Malformed input is a false result, never an error

package urlutil

import "net/url"

// IsFeedURL reports whether s is a syntactically well-formed URL with an
// http or https scheme. Many feeds carry no hint in the path, so nothing
// beyond scheme and host is checked.
func IsFeedURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
