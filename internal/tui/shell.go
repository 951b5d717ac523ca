// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joaquin Valdez

package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/internal/service"
	"github.com/jmvaldez/portero/models"
)

// shellModel is the authenticated navigation router. Every NavigateTo
// passes through the route authorizer: Pending renders the waiting
// screen, Deny the access-denied screen, Allow the target view. An
// additional admin gate keeps non-administrators out of the admin
// sections by redirecting instead of rendering.
type shellModel struct {
	ctx      context.Context
	services *service.ClientServices
	logger   *logger.Logger
	expired  <-chan struct{}

	path      string
	requested string
	current   tea.Model
	pending   *PendingModel
	outcome   ShellOutcome
}

func newShellModel(ctx context.Context, services *service.ClientServices, startPath string, expired <-chan struct{}, log *logger.Logger) *shellModel {
	if startPath == "" {
		startPath = service.DefaultRoute
	}

	return &shellModel{
		ctx:       ctx,
		services:  services,
		logger:    log,
		expired:   expired,
		requested: startPath,
		pending:   NewPendingModel(),
	}
}

func (s *shellModel) Init() tea.Cmd {
	return tea.Batch(s.cmdLoadPermissions(), s.cmdWaitExpiry(), s.navigate(s.requested))
}

func (s *shellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			s.outcome = OutcomeQuit
			return s, tea.Quit
		case "ctrl+l":
			return s, s.cmdLogout()
		}

	case NavigateTo:
		if msg.Page == "menu" {
			return s, s.navigate(service.DefaultRoute)
		}
		if msg.Path != "" {
			return s, s.navigate(msg.Path)
		}
		return s, nil

	case permissionsLoadedMsg:
		if msg.err != nil {
			s.logger.Warn().Err(msg.err).Msg("carga de permisos falló")
		}
		// con los permisos resueltos, honrar la ruta solicitada
		return s, s.navigate(s.requested)

	case logoutDoneMsg:
		s.outcome = OutcomeLogout
		return s, tea.Quit

	case sessionExpiredMsg:
		s.services.PermissionService.Reset()
		s.outcome = OutcomeExpired
		return s, tea.Quit
	}

	if s.current == nil {
		return s, nil
	}

	updated, cmd := s.current.Update(msg)
	s.current = updated
	return s, cmd
}

func (s *shellModel) View() string {
	if s.current == nil {
		return s.pending.View()
	}
	return s.current.View()
}

// navigate runs the guard for path and swaps in the screen the
// decision calls for.
func (s *shellModel) navigate(path string) tea.Cmd {
	auth := s.services.AuthService
	perms := s.services.PermissionService

	// re-chequeo de expiración en cada navegación
	if !auth.Revalidate(s.ctx) {
		perms.Reset()
		s.outcome = OutcomeExpired
		return tea.Quit
	}

	s.path = path

	decision := service.Authorize(path, auth.Status(), perms.Status(), perms.CanAccessRoute(path))
	switch decision {
	case service.DecisionPending:
		s.current = s.pending
		return s.current.Init()

	case service.DecisionDeny:
		s.current = NewDeniedModel(path, s.firstAllowedRoute())
		return s.current.Init()
	}

	user, _, _ := auth.Current()
	if isAdminSection(path) && !user.EsAdmin() {
		redirect := s.firstAllowedRoute()
		s.logger.Warn().Str("path", path).Str("redirect", redirect).Msg("sección de administración bloqueada")
		if redirect == path {
			redirect = service.DefaultRoute
		}
		return s.navigate(redirect)
	}

	if path == service.DefaultRoute {
		s.current = NewMenuModel(user, perms.Menu())
		return s.current.Init()
	}

	s.current = NewContentModel(s.vistaFor(path))
	return s.current.Init()
}

// firstAllowedRoute picks the escape target offered by the denied
// screen and the admin gate: the first leaf of the resolved menu, or
// the landing route when the menu is empty. The shell only runs with
// a valid session, so bouncing an empty-menu user to the login screen
// would immediately bounce back; the landing route is the safe
// equivalent here (an empty grant set still admits it).
func (s *shellModel) firstAllowedRoute() string {
	menu := s.services.PermissionService.Menu()
	if len(menu) == 0 {
		return service.DefaultRoute
	}

	first := menu[0]
	if len(first.Submenu) > 0 {
		return first.Submenu[0].Path
	}
	return first.Path
}

func (s *shellModel) vistaFor(path string) models.Vista {
	for _, v := range s.services.PermissionService.Views() {
		if v.Ruta == path {
			return v
		}
	}

	// ruta permitida sin registro de vista: se muestra la ruta misma
	return models.Vista{Ruta: path, Nombre: path}
}

func isAdminSection(path string) bool {
	return path == "/admin" || strings.HasPrefix(path, "/admin/")
}

func (s *shellModel) cmdLoadPermissions() tea.Cmd {
	ctx := s.ctx
	perms := s.services.PermissionService

	return func() tea.Msg {
		return permissionsLoadedMsg{err: perms.Load(ctx)}
	}
}

func (s *shellModel) cmdLogout() tea.Cmd {
	ctx := s.ctx
	auth := s.services.AuthService
	perms := s.services.PermissionService
	log := s.logger

	return func() tea.Msg {
		if err := auth.Logout(ctx); err != nil {
			// el cierre local ya ocurrió; solo queda registrarlo
			log.Warn().Err(err).Msg("error al cerrar sesión")
		}
		perms.Reset()
		return logoutDoneMsg{}
	}
}

func (s *shellModel) cmdWaitExpiry() tea.Cmd {
	ctx := s.ctx
	expired := s.expired

	return func() tea.Msg {
		if expired == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		case <-expired:
			return sessionExpiredMsg{}
		}
	}
}
