// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joaquin Valdez

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmvaldez/portero/internal/service"
)

// CodeModel is the second login step: a six-digit code arrives through
// the out-of-band channel and is typed here. The resend key stays
// blocked while the cooldown counter is positive; the counter ticks
// down once per second without blocking input.
type CodeModel struct {
	ctx  context.Context
	flow *service.LoginFlow

	input      textinput.Model
	recordar   bool
	errMsg     string
	notice     string
	submitting bool
}

func NewCodeModel(ctx context.Context, flow *service.LoginFlow) *CodeModel {
	input := textinput.New()
	input.Placeholder = "000000"
	input.CharLimit = 6
	input.Width = 10
	input.Focus()

	return &CodeModel{ctx: ctx, flow: flow, input: input}
}

func (m *CodeModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCooldown())
}

func tickCooldown() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return cooldownTickMsg{}
	})
}

func (m *CodeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cooldownTickMsg:
		m.flow.Tick()
		if m.flow.Cooldown() > 0 {
			return m, tickCooldown()
		}
		return m, nil

	case challengeResentMsg:
		if msg.err != nil {
			m.errMsg = humanizeLoginError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.notice = "Código reenviado"
		return m, tickCooldown()

	case codeVerifiedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeLoginError(msg.err)
			return m, nil
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			// cambiar de documento: vuelve al paso 1
			m.flow.Reset()
			m.errMsg = ""
			m.notice = ""
			m.input.SetValue("")
			return m, func() tea.Msg { return NavigateTo{Page: "documento"} }
		case "tab":
			m.recordar = !m.recordar
			return m, nil
		case "r":
			if m.flow.Cooldown() > 0 {
				return m, nil
			}
			m.notice = ""
			return m, m.cmdResend()
		case "enter":
			if m.submitting {
				return m, nil
			}
			m.errMsg = ""
			m.notice = ""
			m.submitting = true
			return m, m.cmdSubmitCode(m.input.Value(), m.recordar)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *CodeModel) View() string {
	user := m.flow.PendingUser()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Código enviado al celular registrado de %s\n\n", user.Nombre))
	b.WriteString("Código    │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	check := " "
	if m.recordar {
		check = "x"
	}
	b.WriteString(fmt.Sprintf("Recordar  │ [%s]\n", check))

	if cooldown := m.flow.Cooldown(); cooldown > 0 {
		b.WriteString(fmt.Sprintf("\nReenviar disponible en %ds\n", cooldown))
	} else {
		b.WriteString("\nr: reenviar código\n")
	}

	if m.submitting {
		b.WriteString("\n[Verificando...]\n")
	}
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(okStyle.Render(m.notice))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("CÓDIGO DE VERIFICACIÓN", strings.TrimRight(b.String(), "\n"),
		"enter: verificar │ tab: recordar │ esc: cambiar documento")
}

func (m *CodeModel) cmdResend() tea.Cmd {
	ctx := m.ctx
	flow := m.flow

	return func() tea.Msg {
		return challengeResentMsg{err: flow.Resend(ctx)}
	}
}

func (m *CodeModel) cmdSubmitCode(code string, recordar bool) tea.Cmd {
	ctx := m.ctx
	flow := m.flow

	return func() tea.Msg {
		return codeVerifiedMsg{err: flow.SubmitCode(ctx, code, recordar)}
	}
}
