// Package tui is the interactive terminal browser for a catalog session.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/git-pkgs/catalog/internal/core"
	"github.com/git-pkgs/catalog/internal/render"
)

// sortCycle is the order the sort key advances through.
var sortCycle = []string{"", "name", "date", "group", "license"}

// loadedMsg carries the result of a reload.
type loadedMsg struct {
	records []core.Record
	err     error
}

// Model browses a session page by page. All session changes happen in
// Update; reloads fetch in a command and hand the records back as a message.
type Model struct {
	ctx       context.Context
	session   *core.Session
	loader    core.Loader
	shareBase string

	input     textinput.Model
	searching bool
	loading   bool

	keys      keyMap
	help      help.Model
	styles    render.Styles
	clipboard func(string) error

	status string
	err    error
	width  int
}

// New creates a browser over session. loader is used for reloads and may
// be nil, which disables them.
func New(ctx context.Context, session *core.Session, loader core.Loader, shareBase string) Model {
	ti := textinput.New()
	ti.Prompt = "search: "
	ti.Placeholder = "name or description"
	ti.SetValue(session.Criteria().Query)

	return Model{
		ctx:       ctx,
		session:   session,
		loader:    loader,
		shareBase: shareBase,
		input:     ti,
		keys:      defaultKeyMap(),
		help:      help.New(),
		styles:    render.DefaultStyles(),
		clipboard: writeClipboard,
	}
}

// WithStyles returns a copy of m rendering with st.
func (m Model) WithStyles(st render.Styles) Model {
	m.styles = st
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case loadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			m.status = "reload failed"
			return m, nil
		}
		m.err = nil
		m.session.Replace(msg.records)
		m.status = fmt.Sprintf("reloaded %d packages", len(msg.records))
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
			return m, nil
		}
		m.status = "copied " + msg.link
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateBrowse(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		c := m.session.Criteria()
		c.Query = m.input.Value()
		m.session.Apply(c)
		m.searching = false
		m.input.Blur()
		m.status = ""
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.input.Blur()
		m.input.SetValue(m.session.Criteria().Query)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Next):
		m.session.Next()

	case key.Matches(msg, m.keys.Prev):
		m.session.Previous()

	case key.Matches(msg, m.keys.Jump):
		m.session.GoTo(int(msg.Runes[0] - '0'))

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		cmd := m.input.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Sort):
		c := m.session.Criteria()
		c.Sort = nextSort(c.Sort)
		m.session.Apply(c)
		m.status = "sort: " + sortLabel(c.Sort)

	case key.Matches(msg, m.keys.Reset):
		m.session.Reset()
		m.input.SetValue("")
		m.status = "filters cleared"

	case key.Matches(msg, m.keys.Copy):
		return m, copyLink(m.clipboard, m.shareLink())

	case key.Matches(msg, m.keys.Reload):
		if m.loader == nil || m.loading {
			return m, nil
		}
		m.loading = true
		m.status = "reloading..."
		return m, m.reload()
	}

	return m, nil
}

func (m Model) reload() tea.Cmd {
	ctx, loader := m.ctx, m.loader
	return func() tea.Msg {
		records, err := loader.Load(ctx)
		return loadedMsg{records: records, err: err}
	}
}

// shareLink is the link reopening the current view.
func (m Model) shareLink() string {
	return m.session.Criteria().ShareURL(m.shareBase)
}

func nextSort(current string) string {
	for i, k := range sortCycle {
		if k == current {
			return sortCycle[(i+1)%len(sortCycle)]
		}
	}
	return sortCycle[0]
}

func sortLabel(k string) string {
	if k == "" {
		return "none"
	}
	return k
}

func (m Model) View() string {
	var b strings.Builder

	view := m.session.Page()
	header := fmt.Sprintf("%d packages", view.TotalItems)
	if q := m.session.Query(); q != "" {
		header += "  ?" + q
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(header))
	b.WriteString("\n\n")

	if m.searching {
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	_ = render.WriteText(&b, view, m.styles)

	if m.shareBase != "" && m.session.Query() != "" {
		b.WriteString("\nshare: ")
		b.WriteString(m.shareLink())
		b.WriteByte('\n')
	}
	if m.err != nil {
		b.WriteString("\nerror: ")
		b.WriteString(m.err.Error())
		b.WriteByte('\n')
	} else if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteByte('\n')
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Run starts the browser and blocks until the user quits.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
