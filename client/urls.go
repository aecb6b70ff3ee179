package client

import (
	"net/url"
	"strings"
)

const (
	// IndexPath is where a catalog host serves its package index.
	IndexPath = "/v1/packages"

	// IndexQuery asks the host to include descriptive fields.
	IndexQuery = "info=1"
)

// IndexURL returns the package index URL for base. A base that is only a
// host (no path, or "/") gets IndexPath and IndexQuery appended; anything
// else is returned unchanged.
func IndexURL(base string) string {
	u, err := url.Parse(base)
	if err != nil || u.Host == "" {
		return base
	}
	if strings.Trim(u.Path, "/") != "" {
		return base
	}
	u.Path = IndexPath
	if u.RawQuery == "" {
		u.RawQuery = IndexQuery
	}
	return u.String()
}

// Host returns the host part of rawURL, used to group endpoints. Unparseable
// input is returned truncated to 50 bytes.
func Host(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		if len(rawURL) > 50 {
			return rawURL[:50]
		}
		return rawURL
	}
	return parsed.Host
}
