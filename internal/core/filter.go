package core

import (
	"slices"
	"strings"
)

// ApplyFilters returns the records of catalog matching every non-empty field
// of c, sorted by c.Sort when one is given.
//
// The result is always a new slice. With no criteria at all it is a copy of
// catalog in its original order.
func ApplyFilters(catalog []Record, c Criteria) []Record {
	c = c.Normalize()

	if c.IsEmpty() {
		return slices.Clone(catalog)
	}

	result := make([]Record, 0, len(catalog))
	if !c.HasFilters() {
		result = append(result, catalog...)
	} else {
		for _, r := range catalog {
			if c.Match(r) {
				result = append(result, r)
			}
		}
	}

	if c.Sort != "" {
		SortRecords(result, c.Sort)
	}

	return result
}

// Match reports whether r satisfies all predicates of c. c must already be
// normalized. Missing record fields never match a non-empty criterion.
func (c Criteria) Match(r Record) bool {
	if c.Query != "" && !containsFold(r.Name, c.Query) && !containsFold(r.Description, c.Query) {
		return false
	}
	if c.Author != "" && !containsFold(r.Author(), c.Author) {
		return false
	}
	if c.Group != "" && !containsFold(r.Group, c.Group) {
		return false
	}
	if c.Keywords != "" && !slices.ContainsFunc(r.Tags, func(tag string) bool {
		return containsFold(tag, c.Keywords)
	}) {
		return false
	}
	if c.License != "" && (r.License == "" || strings.ToLower(r.License) != c.License) {
		return false
	}
	if c.OS != "" && !slices.ContainsFunc(r.OS, func(os string) bool {
		return strings.Contains(os, c.OS)
	}) {
		return false
	}
	return true
}

// containsFold reports whether lowered needle occurs in s, ignoring case.
func containsFold(s, needle string) bool {
	if s == "" {
		return false
	}
	return strings.Contains(strings.ToLower(s), needle)
}
