package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootPageModel is the landing page a successful confirmation redirects to.
type RootPageModel struct{}

func NewRootPageModel() *RootPageModel {
	return &RootPageModel{}
}

func (m *RootPageModel) Init() tea.Cmd {
	return nil
}

func (m *RootPageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.quit, keys.enter) {
		return m, tea.Quit
	}
	return m, nil
}

func (m *RootPageModel) View() string {
	return renderPage("Welcome", "Your account is ready.", "enter / q: quit │ v: version")
}
