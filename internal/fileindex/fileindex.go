// Package fileindex provides a loader for package index documents on disk.
package fileindex

import (
	"context"
	"net/url"
	"os"
	"strings"

	"github.com/git-pkgs/catalog/internal/core"
)

func init() {
	core.Register("file", "", func(endpoint string, _ *core.Client) core.Loader {
		return New(endpoint)
	})
}

type Loader struct {
	path string
}

// New creates a loader for a file:// URL or a plain path.
func New(endpoint string) *Loader {
	return &Loader{path: pathOf(endpoint)}
}

func pathOf(endpoint string) string {
	if !strings.HasPrefix(endpoint, "file:") {
		return endpoint
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return strings.TrimPrefix(endpoint, "file://")
	}
	if u.Opaque != "" {
		return u.Opaque
	}
	return u.Path
}

func (l *Loader) Endpoint() string {
	return "file://" + l.path
}

// Load reads and decodes the index document once.
func (l *Loader) Load(ctx context.Context) ([]core.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, &core.LoadError{Endpoint: l.Endpoint(), Err: err}
	}
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, &core.LoadError{Endpoint: l.Endpoint(), Err: err}
	}
	records, err := core.DecodeIndex(data)
	if err != nil {
		return nil, &core.LoadError{Endpoint: l.Endpoint(), Err: err}
	}
	return records, nil
}
