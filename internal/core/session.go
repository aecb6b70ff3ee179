package core

import (
	"context"
	"net/url"
	"slices"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Session owns one loaded catalog and the view over it: the working set
// produced by the last Apply, the criteria that produced it and the current
// page. A Session is not safe for concurrent use.
type Session struct {
	id       string
	catalog  []Record
	working  []Record
	criteria Criteria
	page     int
	pageSize int
	logger   zerolog.Logger
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithPageSize sets the number of records per page.
func WithPageSize(n int) SessionOption {
	return func(s *Session) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// WithLogger sets the logger used for filter and paging events.
func WithLogger(l zerolog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession creates a session over records. The working set starts as the
// full catalog on page 1.
func NewSession(records []Record, opts ...SessionOption) *Session {
	s := &Session{
		id:       ulid.Make().String(),
		pageSize: DefaultPageSize,
		page:     1,
		logger:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With().Str("session", s.id).Logger()
	s.Replace(records)
	return s
}

// LoadSession reads the catalog once through loader and returns a session
// over it. A load failure is returned as is and not retried.
func LoadSession(ctx context.Context, loader Loader, opts ...SessionOption) (*Session, error) {
	s := NewSession(nil, opts...)
	if err := s.Reload(ctx, loader); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload replaces the catalog with a fresh read from loader and re-applies
// the current criteria. On failure the session is left unchanged.
func (s *Session) Reload(ctx context.Context, loader Loader) error {
	records, err := loader.Load(ctx)
	if err != nil {
		s.logger.Error().Err(err).Str("endpoint", loader.Endpoint()).Msg("catalog load failed")
		return err
	}
	s.logger.Info().Str("endpoint", loader.Endpoint()).Int("packages", len(records)).Msg("catalog loaded")
	s.Replace(records)
	return nil
}

// Replace swaps in a new catalog, re-applies the current criteria and
// returns to page 1.
func (s *Session) Replace(records []Record) {
	s.catalog = slices.Clone(records)
	s.working = ApplyFilters(s.catalog, s.criteria)
	s.page = 1
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Start applies criteria read from URL query values. When no parameter is
// present at all the full catalog is shown.
func (s *Session) Start(values url.Values) {
	if len(values) == 0 {
		s.page = 1
		return
	}
	s.Apply(CriteriaFromValues(values))
}

// Apply filters and sorts the catalog by c, replacing the working set and
// returning to page 1.
func (s *Session) Apply(c Criteria) {
	s.criteria = c.Normalize()
	s.working = ApplyFilters(s.catalog, s.criteria)
	s.page = 1

	ev := s.logger.Debug()
	if len(s.working) == 0 && len(s.catalog) > 0 {
		ev = s.logger.Warn()
	}
	ev.Str("query", s.criteria.Encode()).
		Int("catalog", len(s.catalog)).
		Int("matches", len(s.working)).
		Msg("filters applied")
}

// Reset clears all criteria and shows the full catalog from page 1.
func (s *Session) Reset() {
	s.Apply(Criteria{})
}

// GoTo selects page n of the current working set without re-filtering.
// Values below 1 select page 1.
func (s *Session) GoTo(n int) {
	if n < 1 {
		n = 1
	}
	s.page = n
	s.logger.Debug().Int("page", n).Msg("page selected")
}

// Next moves to the following page if there is one.
func (s *Session) Next() {
	if s.page < TotalPages(len(s.working), s.pageSize) {
		s.GoTo(s.page + 1)
	}
}

// Previous moves to the preceding page if there is one.
func (s *Session) Previous() {
	if s.page > 1 {
		s.GoTo(s.page - 1)
	}
}

// Page returns the current page of the working set.
func (s *Session) Page() PageView {
	return Paginate(s.working, s.page, s.pageSize)
}

// PageNumber returns the current page number.
func (s *Session) PageNumber() int {
	return s.page
}

// Criteria returns the criteria of the last Apply.
func (s *Session) Criteria() Criteria {
	return s.criteria
}

// Query returns the query string mirroring the current criteria.
func (s *Session) Query() string {
	return s.criteria.Encode()
}

// Catalog returns a copy of the full catalog.
func (s *Session) Catalog() []Record {
	return slices.Clone(s.catalog)
}

// WorkingSet returns a copy of the current working set.
func (s *Session) WorkingSet() []Record {
	return slices.Clone(s.working)
}
