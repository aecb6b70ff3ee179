package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/git-pkgs/catalog/internal/core"
	"github.com/git-pkgs/catalog/internal/render"
)

type fakeLoader struct {
	records []core.Record
	err     error
}

func (l *fakeLoader) Endpoint() string { return "stub://tui" }

func (l *fakeLoader) Load(context.Context) ([]core.Record, error) {
	return l.records, l.err
}

func records(n int) []core.Record {
	out := make([]core.Record, n)
	for i := range out {
		out[i] = core.Record{Name: fmt.Sprintf("pkg-%02d", i+1), Group: "acme"}
	}
	return out
}

func newModel(n int, loader core.Loader) Model {
	s := core.NewSession(records(n))
	return New(context.Background(), s, loader, "https://pkgs.example.org/packages").WithStyles(render.PlainStyles())
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return mm, cmd
}

func TestModel_Paging(t *testing.T) {
	m := newModel(23, nil)

	m, _ = update(t, m, keyRunes("n"))
	assert.Equal(t, 2, m.session.PageNumber())

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 3, m.session.PageNumber())

	m, _ = update(t, m, keyRunes("n"))
	assert.Equal(t, 3, m.session.PageNumber(), "next on the last page stays put")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 2, m.session.PageNumber())

	m, _ = update(t, m, keyRunes("1"))
	assert.Equal(t, 1, m.session.PageNumber())
}

func TestModel_Search(t *testing.T) {
	m := newModel(23, nil)

	m, cmd := update(t, m, keyRunes("/"))
	assert.True(t, m.searching)
	assert.NotNil(t, cmd)

	for _, r := range "pkg-2" {
		m, _ = update(t, m, keyRunes(string(r)))
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, m.searching)
	assert.Equal(t, "pkg-2", m.session.Criteria().Query)
	assert.Len(t, m.session.WorkingSet(), 4) // pkg-20 .. pkg-23
	assert.Contains(t, m.View(), "share: https://pkgs.example.org/packages?query=pkg-2")
}

func TestModel_SearchCancel(t *testing.T) {
	m := newModel(5, nil)

	m, _ = update(t, m, keyRunes("/"))
	m, _ = update(t, m, keyRunes("x"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.searching)
	assert.Empty(t, m.session.Criteria().Query)
	assert.Len(t, m.session.WorkingSet(), 5)
}

func TestModel_SortAndReset(t *testing.T) {
	m := newModel(5, nil)

	m, _ = update(t, m, keyRunes("s"))
	assert.Equal(t, "name", m.session.Criteria().Sort)
	m, _ = update(t, m, keyRunes("s"))
	assert.Equal(t, "date", m.session.Criteria().Sort)

	m, _ = update(t, m, keyRunes("x"))
	assert.True(t, m.session.Criteria().IsEmpty())
	assert.Equal(t, "filters cleared", m.status)
}

func TestModel_Reload(t *testing.T) {
	loader := &fakeLoader{records: records(3)}
	m := newModel(23, loader)
	m.session.Apply(core.Criteria{Group: "acme"})

	m, cmd := update(t, m, keyRunes("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.loading)

	msg := cmd()
	m, _ = update(t, m, msg)

	assert.False(t, m.loading)
	assert.Len(t, m.session.Catalog(), 3)
	assert.Equal(t, "acme", m.session.Criteria().Group, "reload keeps criteria")
	assert.Contains(t, m.status, "reloaded 3 packages")
}

func TestModel_ReloadFailure(t *testing.T) {
	loader := &fakeLoader{err: &core.LoadError{Endpoint: "stub://tui", Err: errors.New("down")}}
	m := newModel(4, loader)

	_, cmd := update(t, m, keyRunes("r"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	require.Error(t, m.err)
	assert.Len(t, m.session.Catalog(), 4, "failed reload keeps the old catalog")
	assert.Contains(t, m.View(), "error: loading catalog from stub://tui")
}

func TestModel_ReloadWithoutLoader(t *testing.T) {
	m := newModel(4, nil)
	_, cmd := update(t, m, keyRunes("r"))
	assert.Nil(t, cmd)
}

func TestModel_Quit(t *testing.T) {
	m := newModel(1, nil)
	_, cmd := update(t, m, keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ViewEmpty(t *testing.T) {
	m := newModel(0, nil)
	assert.Contains(t, m.View(), render.NoResults)
}

func TestModel_CopyLink(t *testing.T) {
	var copied string
	m := newModel(3, nil)
	m.clipboard = func(s string) error {
		copied = s
		return nil
	}
	m.session.Apply(core.Criteria{Group: "acme"})

	_, cmd := update(t, m, keyRunes("c"))
	require.NotNil(t, cmd)
	m, _ = update(t, m, cmd())

	assert.Equal(t, "https://pkgs.example.org/packages?group=acme", copied)
	assert.Equal(t, "copied "+copied, m.status)

	m.clipboard = func(string) error { return errors.New("no clipboard") }
	_, cmd = update(t, m, keyRunes("c"))
	m, _ = update(t, m, cmd())
	assert.Equal(t, "copy failed: no clipboard", m.status)
}

func TestNextSort(t *testing.T) {
	assert.Equal(t, "name", nextSort(""))
	assert.Equal(t, "", nextSort("license"))
	assert.Equal(t, "", nextSort("bogus"))
}
