package core

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
)

// Loader reads a package index once and returns its normalized records.
type Loader interface {
	// Endpoint returns the location the loader reads from.
	Endpoint() string

	// Load performs exactly one read of the index. Failures are *LoadError.
	Load(ctx context.Context) ([]Record, error)
}

// Factory creates a loader for an endpoint.
type Factory func(endpoint string, client *Client) Loader

var (
	factories = make(map[string]Factory)
	defaults  = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a loader factory for a URL scheme ("https", "http", "file").
// defaultEndpoint is used when New is called with an empty endpoint.
func Register(scheme string, defaultEndpoint string, factory Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[scheme] = factory
	defaults[scheme] = defaultEndpoint
}

// New creates a loader for endpoint, choosing the factory by URL scheme.
// An endpoint without a scheme is treated as a file path. If endpoint is
// empty, the default https endpoint is used. If client is nil,
// DefaultClient() is used.
func New(endpoint string, client *Client) (Loader, error) {
	if endpoint == "" {
		endpoint = DefaultEndpoint("https")
	}

	scheme := schemeOf(endpoint)

	mu.RLock()
	factory, ok := factories[scheme]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScheme, scheme)
	}

	if client == nil {
		client = DefaultClient()
	}

	return factory(endpoint, client), nil
}

func schemeOf(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// No scheme, or a Windows drive letter.
		return "file"
	}
	return strings.ToLower(u.Scheme)
}

// SupportedSchemes returns all registered endpoint schemes, sorted.
func SupportedSchemes() []string {
	mu.RLock()
	defer mu.RUnlock()

	schemes := make([]string, 0, len(factories))
	for s := range factories {
		schemes = append(schemes, s)
	}
	sort.Strings(schemes)
	return schemes
}

// DefaultEndpoint returns the default endpoint registered for a scheme.
func DefaultEndpoint(scheme string) string {
	mu.RLock()
	defer mu.RUnlock()
	return defaults[scheme]
}
