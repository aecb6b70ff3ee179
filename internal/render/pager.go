package render

import "github.com/git-pkgs/catalog/internal/core"

// PagerItem is the display model of one pagination control.
type PagerItem struct {
	Label    string `json:"label"              yaml:"label"`
	Target   int    `json:"target"             yaml:"target"`
	Active   bool   `json:"active,omitempty"   yaml:"active,omitempty"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty"`
}

// Pager lists the controls for a page.
func Pager(v core.PageView) []PagerItem {
	items := make([]PagerItem, 0, len(v.Controls))
	for _, c := range v.Controls {
		items = append(items, PagerItem{
			Label:    c.Label,
			Target:   c.Target,
			Active:   c.Active,
			Disabled: c.Disabled,
		})
	}
	return items
}

// PagerLine renders controls on one line, the active page in brackets:
// "Previous 1 [2] 3 Next".
func PagerLine(items []PagerItem) string {
	return StyledPager(items, PlainStyles())
}

// Document is the serializable form of a page for json and yaml output.
type Document struct {
	Page       int         `json:"page"            yaml:"page"`
	PageSize   int         `json:"page_size"       yaml:"page_size"`
	TotalPages int         `json:"total_pages"     yaml:"total_pages"`
	TotalItems int         `json:"total_items"     yaml:"total_items"`
	Query      string      `json:"query,omitempty" yaml:"query,omitempty"`
	Share      string      `json:"share,omitempty" yaml:"share,omitempty"`
	Packages   []Card      `json:"packages"        yaml:"packages"`
	Pager      []PagerItem `json:"pager"           yaml:"pager"`
}

// NewDocument builds the serializable form of v.
func NewDocument(v core.PageView, query, share string) Document {
	return Document{
		Page:       v.Page,
		PageSize:   v.PageSize,
		TotalPages: v.TotalPages,
		TotalItems: v.TotalItems,
		Query:      query,
		Share:      share,
		Packages:   Cards(v.Items),
		Pager:      Pager(v),
	}
}
