// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joaquin Valdez

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmvaldez/portero/internal/service"
	"github.com/jmvaldez/portero/internal/validators"
	"github.com/jmvaldez/portero/models"
)

// DocumentModel is the first login step: the user types a DNI or RUC,
// picks the account role, and the flow looks the account up and
// requests a verification code. The document is classified locally on
// every keystroke so the validity hint updates as the user types.
type DocumentModel struct {
	ctx  context.Context
	flow *service.LoginFlow

	input      textinput.Model
	roles      []string
	roleIdx    int
	hint       string
	errMsg     string
	submitting bool
}

func NewDocumentModel(ctx context.Context, flow *service.LoginFlow) *DocumentModel {
	input := textinput.New()
	input.Placeholder = "DNI (8 dígitos) o RUC (11 dígitos)"
	input.CharLimit = 15
	input.Width = 40
	input.Focus()

	return &DocumentModel{
		ctx:   ctx,
		flow:  flow,
		input: input,
		roles: []string{models.TipoTrabajador, models.TipoAdmin},
	}
}

func (m *DocumentModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *DocumentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sent, ok := msg.(challengeSentMsg); ok {
		m.submitting = false
		if sent.err != nil {
			m.errMsg = humanizeLoginError(sent.err)
			return m, nil
		}
		m.errMsg = ""
		return m, func() tea.Msg { return NavigateTo{Page: "codigo"} }
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "left", "right", "tab":
			m.roleIdx = (m.roleIdx + 1) % len(m.roles)
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			class, hint := validators.ClassifyDocument(m.input.Value())
			if !class.EsValido() {
				m.errMsg = hint
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSubmitDocument(m.input.Value(), m.roles[m.roleIdx])
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if _, isKey := msg.(tea.KeyMsg); isKey {
		_, m.hint = validators.ClassifyDocument(m.input.Value())
	}

	return m, cmd
}

func (m *DocumentModel) View() string {
	var b strings.Builder
	b.WriteString("Documento │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")
	b.WriteString("Rol       │ ")
	for i, role := range m.roles {
		if i == m.roleIdx {
			b.WriteString("(•) ")
		} else {
			b.WriteString("( ) ")
		}
		b.WriteString(role)
		b.WriteString("  ")
	}
	b.WriteString("\n")

	if m.hint != "" && m.input.Value() != "" {
		b.WriteString("\n")
		b.WriteString(m.hint)
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n[Enviando código...]\n")
	} else {
		b.WriteString("\n[Enviar código]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("INICIO DE SESIÓN", strings.TrimRight(b.String(), "\n"),
		"enter: continuar │ tab: cambiar rol")
}

func (m *DocumentModel) cmdSubmitDocument(documento, rol string) tea.Cmd {
	ctx := m.ctx
	flow := m.flow

	return func() tea.Msg {
		return challengeSentMsg{err: flow.SubmitDocument(ctx, documento, rol)}
	}
}
