package core

import (
	"errors"
	"fmt"

	"github.com/git-pkgs/catalog/client"
)

var (
	// ErrNotFound is returned when a package is not in the catalog or the
	// endpoint answers 404.
	ErrNotFound = client.ErrNotFound

	// ErrUnsupportedScheme is returned for endpoints no loader is registered for.
	ErrUnsupportedScheme = errors.New("unsupported endpoint scheme")
)

// Type aliases so loaders only need to import core.
type (
	HTTPError      = client.HTTPError
	RateLimitError = client.RateLimitError
)

// LoadError reports a failed catalog load: transport failure, non-success
// status or a malformed body. It is reported once and never retried here.
type LoadError struct {
	Endpoint string
	Err      error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading catalog from %s: %v", e.Endpoint, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NotFoundError wraps ErrNotFound with the package that was looked up.
type NotFoundError struct {
	Group string
	Name  string
}

func (e *NotFoundError) Error() string {
	if e.Group != "" {
		return fmt.Sprintf("package %s/%s not found", e.Group, e.Name)
	}
	return fmt.Sprintf("package %s not found", e.Name)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
