// Package render turns catalog pages into display models and terminal text.
package render

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/git-pkgs/catalog/internal/core"
)

// DateLayout formats package dates.
const DateLayout = "2006-01-02"

// strict strips all markup from descriptions supplied by the index.
var strict = bluemonday.StrictPolicy()

// TagBadge is one tag as displayed, with metadata from the tag table.
type TagBadge struct {
	Label   string `json:"label"             yaml:"label"`
	Class   string `json:"class"             yaml:"class"`
	Icon    string `json:"icon,omitempty"    yaml:"icon,omitempty"`
	Tooltip string `json:"tooltip,omitempty" yaml:"tooltip,omitempty"`
}

// Card is the display model of a single package.
type Card struct {
	Title       string     `json:"title"                 yaml:"title"`
	Name        string     `json:"name"                  yaml:"name"`
	Group       string     `json:"group"                 yaml:"group"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []TagBadge `json:"tags"                  yaml:"tags"`
	Versions    string     `json:"versions,omitempty"    yaml:"versions,omitempty"`
	Author      string     `json:"author,omitempty"      yaml:"author,omitempty"`
	Date        string     `json:"date,omitempty"        yaml:"date,omitempty"`
	License     string     `json:"license,omitempty"     yaml:"license,omitempty"`
	OS          []string   `json:"os"                    yaml:"os"`
	ProjectURL  string     `json:"project_url,omitempty" yaml:"project_url,omitempty"`
	PURL        string     `json:"purl,omitempty"        yaml:"purl,omitempty"`
}

// NewCard builds the display model for r.
func NewCard(r core.Record) Card {
	tags := make([]TagBadge, 0, len(r.Tags))
	for _, t := range r.Tags {
		info := core.LookupTag(t)
		tags = append(tags, TagBadge{
			Label:   t,
			Class:   info.Class,
			Icon:    info.Icon,
			Tooltip: info.Description,
		})
	}

	var date string
	if r.HasDate() {
		date = r.Date.Format(DateLayout)
	}

	return Card{
		Title:       Title(r),
		Name:        r.Name,
		Group:       r.Group,
		Description: SanitizeText(r.Description),
		Tags:        tags,
		Versions:    r.Versions,
		Author:      r.Author(),
		Date:        date,
		License:     r.License,
		OS:          append([]string{}, r.OS...),
		ProjectURL:  r.ProjectURL,
		PURL:        core.RecordPURL(r),
	}
}

// Cards builds display models for records in order.
func Cards(records []core.Record) []Card {
	cards := make([]Card, 0, len(records))
	for _, r := range records {
		cards = append(cards, NewCard(r))
	}
	return cards
}

// Title is the display title of a package, group-name.
func Title(r core.Record) string {
	if r.Group == "" {
		return r.Name
	}
	return r.Group + "-" + r.Name
}

// SanitizeText removes markup and collapses whitespace.
func SanitizeText(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Fields(html.UnescapeString(strict.Sanitize(s))), " ")
}
