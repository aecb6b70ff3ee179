package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// copiedMsg reports the outcome of copying the share link.
type copiedMsg struct {
	link string
	err  error
}

// copyLink writes link to the system clipboard through write.
func copyLink(write func(string) error, link string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{link: link, err: write(link)}
	}
}

var writeClipboard = clipboard.WriteAll
