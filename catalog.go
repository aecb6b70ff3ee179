// Package catalog loads a package index once and lets callers search,
// filter, sort and page through it locally.
//
// The index is a JSON array of package records read from a single
// endpoint. After the load no further requests are made: every filter,
// sort and page change works on the records already in memory.
//
// Basic usage:
//
//	import (
//		"context"
//		"github.com/git-pkgs/catalog"
//		_ "github.com/git-pkgs/catalog/all"
//	)
//
//	loader, err := catalog.New("https://pkgs.example.org", nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	session, err := catalog.LoadSession(context.Background(), loader)
//	if err != nil {
//		log.Fatal(err)
//	}
//	session.Apply(catalog.Criteria{Query: "jwt", Sort: "date"})
//	for _, pkg := range session.Page().Items {
//		fmt.Println(pkg.Group, pkg.Name)
//	}
//
// Filter state round-trips through a URL query string, so a view can be
// shared as a link:
//
//	link := session.Criteria().ShareURL("https://pkgs.example.org/packages")
package catalog

import (
	"context"
	"net/url"
	"time"

	"github.com/git-pkgs/catalog/client"
	"github.com/git-pkgs/catalog/internal/core"
	"github.com/git-pkgs/purl"
)

// Re-export types from internal/core
type (
	// Record is a single package from the index.
	Record = core.Record

	// Criteria selects and orders records.
	Criteria = core.Criteria

	// Loader reads a package index.
	Loader = core.Loader

	// Session owns a loaded catalog, its working set and current page.
	Session = core.Session

	// SessionOption configures a Session.
	SessionOption = core.SessionOption

	// PageView is one page of a working set with its pagination controls.
	PageView = core.PageView

	// Control describes one pagination button.
	Control = core.Control

	// ControlKind identifies a pagination control.
	ControlKind = core.ControlKind

	// TagInfo is the display metadata for a known tag.
	TagInfo = core.TagInfo
)

// Re-export types from client
type (
	// Client is the HTTP client used to read package indexes.
	Client = client.Client

	// RateLimiter controls request pacing.
	RateLimiter = client.RateLimiter
)

// Re-export constants
const (
	DefaultPageSize = core.DefaultPageSize
	MaxVisiblePages = core.MaxVisiblePages
	SortDate        = core.SortDate

	ControlPrevious = core.ControlPrevious
	ControlPage     = core.ControlPage
	ControlNext     = core.ControlNext
)

// Re-export errors
var (
	ErrNotFound          = core.ErrNotFound
	ErrUnsupportedScheme = core.ErrUnsupportedScheme
)

// Error types
type (
	LoadError      = core.LoadError
	NotFoundError  = core.NotFoundError
	HTTPError      = client.HTTPError
	RateLimitError = client.RateLimitError
)

// New creates a loader for endpoint. The URL scheme picks the loader
// ("https", "http", "file"); a plain path is read from disk. If endpoint is
// empty the default index is used. If c is nil, DefaultClient() is used.
//
// Loaders must be imported to be registered, usually through the all package.
func New(endpoint string, c *Client) (Loader, error) {
	return core.New(endpoint, c)
}

// Load reads the catalog at endpoint once.
func Load(ctx context.Context, endpoint string, c *Client) ([]Record, error) {
	loader, err := core.New(endpoint, c)
	if err != nil {
		return nil, err
	}
	return loader.Load(ctx)
}

// DefaultClient returns a client with sensible defaults:
// - 30s timeout
// - no retries
// - cached DNS lookups
func DefaultClient() *Client {
	return client.DefaultClient()
}

// NewClient creates a new client with the given options.
func NewClient(opts ...Option) *Client {
	return client.NewClient(opts...)
}

// Option configures a Client.
type Option = client.Option

// WithTimeout sets the HTTP client timeout.
var WithTimeout = client.WithTimeout

// WithMaxRetries enables retries of rate limited and 5xx responses.
var WithMaxRetries = client.WithMaxRetries

// SupportedSchemes returns all registered endpoint schemes.
// Note: loaders must be imported to be registered.
func SupportedSchemes() []string {
	return core.SupportedSchemes()
}

// DefaultEndpoint returns the default endpoint for a scheme.
func DefaultEndpoint(scheme string) string {
	return core.DefaultEndpoint(scheme)
}

// NewSession creates a session over already loaded records.
func NewSession(records []Record, opts ...SessionOption) *Session {
	return core.NewSession(records, opts...)
}

// LoadSession loads the catalog through loader and returns a session over it.
func LoadSession(ctx context.Context, loader Loader, opts ...SessionOption) (*Session, error) {
	return core.LoadSession(ctx, loader, opts...)
}

// WithPageSize sets the number of records per page.
var WithPageSize = core.WithPageSize

// WithLogger sets the session logger.
var WithLogger = core.WithLogger

// ApplyFilters returns the records of catalog matching c, sorted by c.Sort.
func ApplyFilters(records []Record, c Criteria) []Record {
	return core.ApplyFilters(records, c)
}

// Paginate returns page (1-based) of ws with its pagination controls.
func Paginate(ws []Record, page, pageSize int) PageView {
	return core.Paginate(ws, page, pageSize)
}

// DecodeDate converts a packed YYYYMMDD.hhmmss number into a local time.
func DecodeDate(v float64) time.Time {
	return core.DecodeDate(v)
}

// ParseQuery reads criteria from a query string or URL.
func ParseQuery(raw string) (Criteria, url.Values, error) {
	return core.ParseQuery(raw)
}

// CriteriaFromValues reads criteria from URL query values.
func CriteriaFromValues(v url.Values) Criteria {
	return core.CriteriaFromValues(v)
}

// LookupTag returns display metadata for a tag.
func LookupTag(tag string) TagInfo {
	return core.LookupTag(tag)
}

// SortKeys returns the recognized sort keys.
func SortKeys() []string {
	return core.SortKeys()
}

// PURL represents a parsed Package URL.
type PURL = purl.PURL

// ParsePURL parses a Package URL string into its components.
// Supports both package PURLs (pkg:generic/acme/jwt-tools) and version PURLs
// (pkg:generic/acme/jwt-tools@1.2.0).
func ParsePURL(purlStr string) (*PURL, error) {
	return purl.Parse(purlStr)
}

// RecordPURL returns the package URL of a record.
func RecordPURL(r Record) string {
	return core.RecordPURL(r)
}

// FindByPURL returns the record a package URL refers to.
func FindByPURL(records []Record, purlStr string) (Record, error) {
	return core.FindByPURL(records, purlStr)
}
