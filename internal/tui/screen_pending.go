package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// PendingModel renders a waiting indicator while authentication or
// permission loading is in flight. It never renders route content.
type PendingModel struct {
	spinner spinner.Model
}

func NewPendingModel() *PendingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot

	return &PendingModel{spinner: s}
}

func (m *PendingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *PendingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

func (m *PendingModel) View() string {
	return renderPage("PORTERO", m.spinner.View()+" Cargando permisos...", "")
}
