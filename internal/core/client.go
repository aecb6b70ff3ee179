package core

import (
	"github.com/git-pkgs/catalog/client"
)

// Type aliases so loader implementations only depend on core.
type (
	RateLimiter = client.RateLimiter
	Client      = client.Client
	Option      = client.Option
)

// Function aliases for loader implementations.
var (
	DefaultClient  = client.DefaultClient
	NewClient      = client.NewClient
	WithTimeout    = client.WithTimeout
	WithMaxRetries = client.WithMaxRetries
	IndexURL       = client.IndexURL
)
