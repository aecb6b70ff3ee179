package core

import "strconv"

const (
	// DefaultPageSize is the number of records shown per page.
	DefaultPageSize = 10

	// MaxVisiblePages is the widest run of numbered page controls.
	MaxVisiblePages = 5
)

// ControlKind identifies a pagination control.
type ControlKind string

const (
	ControlPrevious ControlKind = "previous"
	ControlPage     ControlKind = "page"
	ControlNext     ControlKind = "next"
)

// Control describes one pagination button.
type Control struct {
	Kind     ControlKind
	Label    string
	Target   int // page selected by this control
	Active   bool
	Disabled bool // selecting it would not change the page
}

// PageView is one rendered page of a working set.
type PageView struct {
	Page       int
	PageSize   int
	TotalPages int
	TotalItems int
	Items      []Record
	Controls   []Control
}

// IsEmpty reports whether the page has nothing to show.
func (v PageView) IsEmpty() bool {
	return len(v.Items) == 0
}

// HasPrevious reports whether a previous page exists.
func (v PageView) HasPrevious() bool {
	return v.Page > 1
}

// HasNext reports whether a next page exists.
func (v PageView) HasNext() bool {
	return v.Page < v.TotalPages
}

// TotalPages returns ceil(n/size), 0 for an empty set.
func TotalPages(n, size int) int {
	if size <= 0 {
		size = DefaultPageSize
	}
	if n <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Paginate slices page (1-based) out of ws. Pages outside the working set
// yield no items; Paginate never fails. A non-positive size falls back to
// DefaultPageSize.
func Paginate(ws []Record, page, size int) PageView {
	if size <= 0 {
		size = DefaultPageSize
	}

	total := TotalPages(len(ws), size)
	view := PageView{
		Page:       page,
		PageSize:   size,
		TotalPages: total,
		TotalItems: len(ws),
		Controls:   PageControls(page, total),
	}

	if page < 1 || page > total {
		return view
	}

	start := (page - 1) * size
	end := start + size
	if end > len(ws) {
		end = len(ws)
	}
	view.Items = ws[start:end:end]

	return view
}

// PageControls returns Previous, up to MaxVisiblePages numbered controls
// centered on page, and Next. The numbered window is clamped to
// [1, total] and shifted back when it would run past the last page.
func PageControls(page, total int) []Control {
	var controls []Control

	if page > 1 {
		controls = append(controls, Control{Kind: ControlPrevious, Label: "Previous", Target: page - 1})
	}

	start := max(1, page-MaxVisiblePages/2)
	end := min(total, start+MaxVisiblePages-1)
	if end-start < MaxVisiblePages-1 {
		start = max(1, end-MaxVisiblePages+1)
	}
	for i := start; i <= end; i++ {
		controls = append(controls, Control{
			Kind:     ControlPage,
			Label:    strconv.Itoa(i),
			Target:   i,
			Active:   i == page,
			Disabled: i == page,
		})
	}

	if page < total {
		controls = append(controls, Control{Kind: ControlNext, Label: "Next", Target: page + 1})
	}

	return controls
}
