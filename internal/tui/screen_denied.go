// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joaquin Valdez

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// DeniedModel is the access-denied screen. It always offers a way out
// to an allowed route, so a denied navigation is never a dead end.
type DeniedModel struct {
	path   string
	escape string
}

// NewDeniedModel shows path as denied; escape is the allowed route
// offered as the way out.
func NewDeniedModel(path, escape string) *DeniedModel {
	return &DeniedModel{path: path, escape: escape}
}

func (m *DeniedModel) Init() tea.Cmd {
	return nil
}

func (m *DeniedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "enter", "esc":
		escape := m.escape
		return m, func() tea.Msg { return NavigateTo{Path: escape} }
	}

	return m, nil
}

func (m *DeniedModel) View() string {
	var b strings.Builder
	b.WriteString(deniedStyle.Render("No tiene permisos para acceder a esta vista."))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Ruta solicitada │ %s\n", m.path))

	return renderPage("ACCESO DENEGADO", strings.TrimRight(b.String(), "\n"),
		"enter: volver a una vista permitida")
}
