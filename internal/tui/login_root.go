package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmvaldez/portero/internal/service"
)

// loginRootModel routes between the two login steps:
// 1) keeps the active page
// 2) handles the global ctrl+c quit
// 3) handles NavigateTo messages
// 4) finishes the program once the flow reaches Verified
type loginRootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
}

func newLoginRootModel(ctx context.Context, flow *service.LoginFlow) *loginRootModel {
	pages := map[string]tea.Model{
		"documento": NewDocumentModel(ctx, flow),
		"codigo":    NewCodeModel(ctx, flow),
	}

	return &loginRootModel{pages: pages, current: pages["documento"]}
}

func (r *loginRootModel) Init() tea.Cmd {
	return r.current.Init()
}

func (r *loginRootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		r.quitByUser = true
		return r, tea.Quit
	}

	if nav, ok := msg.(NavigateTo); ok {
		next, exists := r.pages[nav.Page]
		if !exists {
			return r, nil
		}
		r.current = next
		return r, r.current.Init()
	}

	if verified, ok := msg.(codeVerifiedMsg); ok && verified.err == nil {
		return r, tea.Quit
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r *loginRootModel) View() string {
	if r.current == nil {
		return renderPage("PORTERO", "", "")
	}
	return r.current.View()
}
