package core

import "sort"

// DefaultTagClass styles tags missing from the table.
const DefaultTagClass = "tag-default"

// TagInfo is the display metadata for a known tag.
type TagInfo struct {
	Class       string
	Icon        string
	Description string
}

var tagTable = map[string]TagInfo{
	"documentation": {Class: "tag-info", Icon: "fas fa-book", Description: "Related to documentation generation and management."},
	"security":      {Class: "tag-danger", Icon: "fas fa-shield-alt", Description: "Security-related tools and utilities."},
	"utilities":     {Class: "tag-success", Icon: "fas fa-toolbox", Description: "Utilities and helper tools."},
	"git":           {Class: "tag-dark", Icon: "fab fa-git-alt", Description: "Git integration and tools."},
	"ai":            {Class: "tag-warning", Icon: "fas fa-robot", Description: "Artificial Intelligence related packages."},
	"api":           {Class: "tag-primary", Icon: "fas fa-code", Description: "APIs and integrations."},
	"jwt":           {Class: "tag-gradient", Icon: "fas fa-key", Description: "JSON Web Token utilities."},
	"openai":        {Class: "tag-primary", Icon: "fas fa-brain", Description: "Packages related to OpenAI integration."},
}

// LookupTag returns the metadata for tag, case-insensitively. Unknown tags get
// DefaultTagClass and no icon or description.
func LookupTag(tag string) TagInfo {
	if info, ok := tagTable[fold(tag)]; ok {
		return info
	}
	return TagInfo{Class: DefaultTagClass}
}

// KnownTags returns the tags present in the table.
func KnownTags() []string {
	tags := make([]string, 0, len(tagTable))
	for t := range tagTable {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
