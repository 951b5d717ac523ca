package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmvaldez/portero/models"
)

// ContentModel is the placeholder body for an authorized route. The
// actual business screens (forms, reports, imports) live outside this
// layer and plug in where this model renders.
type ContentModel struct {
	vista models.Vista
}

func NewContentModel(vista models.Vista) *ContentModel {
	return &ContentModel{vista: vista}
}

func (m *ContentModel) Init() tea.Cmd {
	return nil
}

func (m *ContentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if keyMsg.String() == "esc" {
		return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
	}

	return m, nil
}

func (m *ContentModel) View() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Ruta      │ %s\n", m.vista.Ruta))
	if m.vista.Categoria != "" {
		b.WriteString(fmt.Sprintf("Categoría │ %s\n", m.vista.Categoria))
	}

	title := strings.ToUpper(m.vista.Nombre)
	if title == "" {
		title = m.vista.Ruta
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: menú")
}
