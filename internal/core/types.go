// Package core provides shared types, the loader registry and the
// filter/sort/paginate engine for the package catalog.
package core

import (
	"strings"
	"time"
)

// Record is a single package from the index. Records are immutable once
// loaded; the engine only ever reorders or drops them.
type Record struct {
	Name        string
	Group       string
	Description string
	Versions    string // raw version token, not parsed
	Date        time.Time
	License     string
	Tags        []string
	OS          []string // trimmed and lowercased
	ProjectURL  string
}

// Author returns the package author. The index has no author field, so the
// group doubles as the author.
func (r Record) Author() string {
	return r.Group
}

// HasDate reports whether the packed date decoded to a usable calendar value.
// The zero time marks an undecodable date. DecodeDate never returns it for
// readable input: packed dates lose leading zeros, so the earliest readable
// year is 1000. A Record built by hand with the instant 0001-01-01 UTC
// counts as undated.
func (r Record) HasDate() bool {
	return !r.Date.IsZero()
}

// Criteria selects and orders records. Empty fields are ignored.
type Criteria struct {
	Query    string // name or description
	Author   string // alias for Group
	Group    string
	Keywords string // any tag
	License  string // exact
	OS       string // any supported OS token
	Sort     string // name, group, author, date, ...
}

// Normalize trims and lowercases every field.
func (c Criteria) Normalize() Criteria {
	return Criteria{
		Query:    fold(c.Query),
		Author:   fold(c.Author),
		Group:    fold(c.Group),
		Keywords: fold(c.Keywords),
		License:  fold(c.License),
		OS:       fold(c.OS),
		Sort:     fold(c.Sort),
	}
}

// HasFilters reports whether any predicate field is set. Sort is not a predicate.
func (c Criteria) HasFilters() bool {
	return strings.TrimSpace(c.Query) != "" ||
		strings.TrimSpace(c.Author) != "" ||
		strings.TrimSpace(c.Group) != "" ||
		strings.TrimSpace(c.Keywords) != "" ||
		strings.TrimSpace(c.License) != "" ||
		strings.TrimSpace(c.OS) != ""
}

// IsEmpty reports whether no predicate and no sort key is set.
func (c Criteria) IsEmpty() bool {
	return !c.HasFilters() && strings.TrimSpace(c.Sort) == ""
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
