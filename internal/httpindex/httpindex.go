// Package httpindex provides a loader for package indexes served over HTTP.
package httpindex

import (
	"context"
	"strings"

	"github.com/git-pkgs/catalog/internal/core"
)

const DefaultURL = "https://pkgs.example.org/v1/packages?info=1"

func init() {
	factory := func(endpoint string, client *core.Client) core.Loader {
		return New(endpoint, client)
	}
	core.Register("https", DefaultURL, factory)
	core.Register("http", DefaultURL, factory)
}

type Loader struct {
	endpoint string
	client   *core.Client
}

// New creates a loader for endpoint. A bare host gets the index path appended.
func New(endpoint string, client *core.Client) *Loader {
	if endpoint == "" {
		endpoint = DefaultURL
	}
	if client == nil {
		client = core.DefaultClient()
	}
	return &Loader{
		endpoint: core.IndexURL(strings.TrimSpace(endpoint)),
		client:   client,
	}
}

func (l *Loader) Endpoint() string {
	return l.endpoint
}

// Load issues a single GET for the index. Transport errors, non-success
// statuses and malformed bodies all come back as *core.LoadError.
func (l *Loader) Load(ctx context.Context) ([]core.Record, error) {
	var raw []core.WireRecord
	if err := l.client.GetJSON(ctx, l.endpoint, &raw); err != nil {
		return nil, &core.LoadError{Endpoint: l.endpoint, Err: err}
	}
	return core.Normalize(raw), nil
}
