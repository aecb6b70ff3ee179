package core

import (
	"net/url"
	"strings"
)

// Query parameter names mirrored into a view link.
const (
	ParamQuery    = "query"
	ParamAuthor   = "author"
	ParamGroup    = "group"
	ParamKeywords = "keywords"
	ParamLicense  = "license"
	ParamOS       = "os"
	ParamSort     = "sort"
)

// fields returns the criteria as (param, value) pairs in link order.
func (c Criteria) fields() [][2]string {
	return [][2]string{
		{ParamQuery, c.Query},
		{ParamAuthor, c.Author},
		{ParamGroup, c.Group},
		{ParamKeywords, c.Keywords},
		{ParamLicense, c.License},
		{ParamOS, c.OS},
		{ParamSort, c.Sort},
	}
}

// Values returns the non-empty normalized criteria as url.Values.
func (c Criteria) Values() url.Values {
	v := url.Values{}
	for _, f := range c.Normalize().fields() {
		if f[1] != "" {
			v.Set(f[0], f[1])
		}
	}
	return v
}

// Encode returns the query string for c. Parameters keep a fixed order
// (query, author, group, keywords, license, os, sort) rather than the
// alphabetical order of url.Values.Encode, and empty fields are omitted.
func (c Criteria) Encode() string {
	var b strings.Builder
	for _, f := range c.Normalize().fields() {
		if f[1] == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(f[0]))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(f[1]))
	}
	return b.String()
}

// ShareURL returns base with the encoded criteria as its query. Any query
// already on base is replaced; empty criteria yield base without a query.
func (c Criteria) ShareURL(base string) string {
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		base = base[:i]
	}
	q := c.Encode()
	if q == "" {
		return base
	}
	return base + "?" + q
}

// CriteriaFromValues reads criteria from query parameters. Absent
// parameters leave the field empty.
func CriteriaFromValues(v url.Values) Criteria {
	return Criteria{
		Query:    v.Get(ParamQuery),
		Author:   v.Get(ParamAuthor),
		Group:    v.Get(ParamGroup),
		Keywords: v.Get(ParamKeywords),
		License:  v.Get(ParamLicense),
		OS:       v.Get(ParamOS),
		Sort:     v.Get(ParamSort),
	}.Normalize()
}

// ParseQuery reads criteria from a raw query string, a full URL, a path
// starting with "/", or a string starting with "?". It also returns the
// parsed values so callers can tell whether any parameter was present.
//
// A bare query string is taken as is, so an unescaped "?" inside a value
// is kept.
func ParseQuery(raw string) (Criteria, url.Values, error) {
	raw = strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(raw, "?"):
		raw = raw[1:]
	case strings.HasPrefix(raw, "/") || hasScheme(raw):
		u, err := url.Parse(raw)
		if err != nil {
			return Criteria{}, nil, err
		}
		raw = u.RawQuery
	}
	if i := strings.IndexByte(raw, '#'); i >= 0 {
		raw = raw[:i]
	}
	v, err := url.ParseQuery(raw)
	if err != nil {
		return Criteria{}, nil, err
	}
	return CriteriaFromValues(v), v, nil
}

// hasScheme reports whether s starts with a URL scheme followed by "://".
func hasScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && (c >= '0' && c <= '9' || c == '+' || c == '-' || c == '.'):
		case i > 0 && c == ':':
			return strings.HasPrefix(s[i:], "://")
		default:
			return false
		}
	}
	return false
}
