// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joaquin Valdez

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmvaldez/portero/models"
)

// menuRow is one selectable line of the rendered menu: either a
// top-level node or a child of an expanded synthesized parent.
type menuRow struct {
	node   models.MenuNode
	parent string
	child  bool
}

// MenuModel renders the navigation tree derived from the granted
// views. Synthesized parents expand and collapse in place; choosing a
// leaf emits a NavigateTo for its route.
type MenuModel struct {
	user     models.Usuario
	menu     []models.MenuNode
	expanded map[string]bool
	idx      int
}

func NewMenuModel(user models.Usuario, menu []models.MenuNode) *MenuModel {
	return &MenuModel{user: user, menu: menu, expanded: make(map[string]bool)}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) rows() []menuRow {
	var rows []menuRow
	for _, node := range m.menu {
		rows = append(rows, menuRow{node: node})
		if len(node.Submenu) > 0 && m.expanded[node.Path] {
			for _, child := range node.Submenu {
				rows = append(rows, menuRow{node: child, parent: node.Path, child: true})
			}
		}
	}
	return rows
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	rows := m.rows()
	if len(rows) == 0 {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(rows)-1 {
			m.idx++
		}
	case "enter", "right", "l":
		row := rows[m.idx]
		if len(row.node.Submenu) > 0 {
			m.expanded[row.node.Path] = !m.expanded[row.node.Path]
			return m, nil
		}
		path := row.node.Path
		return m, func() tea.Msg { return NavigateTo{Path: path} }
	case "left", "h":
		row := rows[m.idx]
		if row.child {
			m.expanded[row.parent] = false
			m.idx = m.indexOf(row.parent)
		} else if len(row.node.Submenu) > 0 {
			m.expanded[row.node.Path] = false
		}
	}

	return m, nil
}

func (m *MenuModel) indexOf(path string) int {
	for i, row := range m.rows() {
		if row.node.Path == path && !row.child {
			return i
		}
	}
	return 0
}

func (m *MenuModel) View() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (%s)\n\n", m.user.Nombre, m.user.TipoUsuario))

	rows := m.rows()
	if len(rows) == 0 {
		b.WriteString("No hay vistas asignadas a este usuario.\n")
	}

	for i, row := range rows {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}

		indent := ""
		if row.child {
			indent = "    "
		}

		marker := ""
		if len(row.node.Submenu) > 0 {
			if m.expanded[row.node.Path] {
				marker = " ▾"
			} else {
				marker = " ▸"
			}
		}

		b.WriteString(fmt.Sprintf("%s %s%s%s\n", cursor, indent, fitText(row.node.Name, 40), marker))
	}

	return renderPage("MENÚ", strings.TrimRight(b.String(), "\n"),
		"enter: abrir │ ↑/↓: navegación │ ctrl+l: cerrar sesión")
}
