package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/git-pkgs/catalog/internal/core"
)

// NoResults is shown instead of cards when a page is empty.
const NoResults = "No packages found."

// Styles holds the lipgloss styles used by WriteText.
type Styles struct {
	Title  lipgloss.Style
	Body   lipgloss.Style
	Meta   lipgloss.Style
	Link   lipgloss.Style
	Active lipgloss.Style
	Tags   map[string]lipgloss.Style // keyed by tag class
}

// tagColors maps tag classes to ANSI colors.
var tagColors = map[string]string{
	"tag-info":     "6",
	"tag-danger":   "1",
	"tag-success":  "2",
	"tag-dark":     "8",
	"tag-warning":  "3",
	"tag-primary":  "4",
	"tag-gradient": "5",
	"tag-default":  "7",
}

// DefaultStyles returns colored styles for terminals.
func DefaultStyles() Styles {
	tags := make(map[string]lipgloss.Style, len(tagColors))
	for class, color := range tagColors {
		tags[class] = lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	}
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true),
		Body:   lipgloss.NewStyle(),
		Meta:   lipgloss.NewStyle().Faint(true),
		Link:   lipgloss.NewStyle().Underline(true),
		Active: lipgloss.NewStyle().Bold(true).Reverse(true),
		Tags:   tags,
	}
}

// PlainStyles returns styles that add no escape sequences.
func PlainStyles() Styles {
	return Styles{
		Title:  lipgloss.NewStyle(),
		Body:   lipgloss.NewStyle(),
		Meta:   lipgloss.NewStyle(),
		Link:   lipgloss.NewStyle(),
		Active: lipgloss.NewStyle(),
		Tags:   map[string]lipgloss.Style{},
	}
}

func (s Styles) tag(class string) lipgloss.Style {
	if st, ok := s.Tags[class]; ok {
		return st
	}
	if st, ok := s.Tags[core.DefaultTagClass]; ok {
		return st
	}
	return lipgloss.NewStyle()
}

// WriteText writes a page as text: one block per card, then the pager
// line. An empty page writes NoResults.
func WriteText(w io.Writer, v core.PageView, st Styles) error {
	if v.IsEmpty() {
		_, err := fmt.Fprintln(w, NoResults)
		return err
	}

	for i, c := range Cards(v.Items) {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, CardText(c, st)); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\n%s  (page %d of %d, %d packages)\n",
		StyledPager(Pager(v), st), v.Page, v.TotalPages, v.TotalItems)
	return err
}

// CardText renders a single card.
func CardText(c Card, st Styles) string {
	var b strings.Builder

	b.WriteString(st.Title.Render(c.Title))
	b.WriteByte('\n')
	if c.Description != "" {
		b.WriteString(st.Body.Render(c.Description))
		b.WriteByte('\n')
	}
	if len(c.Tags) > 0 {
		badges := make([]string, 0, len(c.Tags))
		for _, t := range c.Tags {
			badges = append(badges, st.tag(t.Class).Render("#"+t.Label))
		}
		b.WriteString(strings.Join(badges, " "))
		b.WriteByte('\n')
	}

	meta := fmt.Sprintf("Versions: %s | Author: %s | Date: %s", c.Versions, c.Author, c.Date)
	if c.License != "" {
		meta += " | License: " + c.License
	}
	b.WriteString(st.Meta.Render(meta))
	b.WriteByte('\n')

	if c.ProjectURL != "" {
		b.WriteString(st.Link.Render(c.ProjectURL))
		b.WriteByte('\n')
	}
	return b.String()
}

// StyledPager renders the pager line with the active page highlighted.
func StyledPager(items []PagerItem, st Styles) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		if it.Active {
			parts = append(parts, st.Active.Render("["+it.Label+"]"))
			continue
		}
		parts = append(parts, it.Label)
	}
	return strings.Join(parts, " ")
}
