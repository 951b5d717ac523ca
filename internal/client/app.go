package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmvaldez/portero/internal/adapter"
	"github.com/jmvaldez/portero/internal/config"
	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/internal/service"
	"github.com/jmvaldez/portero/internal/store"
	"github.com/jmvaldez/portero/internal/tui"
	"github.com/jmvaldez/portero/internal/workers"
)

type App struct {
	cfg      *config.ClientConfig
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	portalAdapter, err := adapter.NewHTTPPortalAdapter(cfg.Adapter, log)
	if err != nil {
		return nil, fmt.Errorf("create portal adapter: %w", err)
	}

	svcs := service.NewClientServices(storages, portalAdapter, log)

	return &App{
		cfg:      cfg,
		services: svcs,
		tui:      tui.New(svcs, log),
		logger:   log,
	}, nil
}

// Run drives the session lifecycle: restore the persisted session or
// run the login flow, then hand over to the navigation shell. Logout
// and in-shell expiry loop back to the login flow; an expired session
// returns to the route the user was on once re-authenticated.
func (a *App) Run() error {
	ctx := context.Background()
	requested := service.DefaultRoute

	for {
		if _, err := a.services.AuthService.Restore(ctx); err != nil {
			if !errors.Is(err, service.ErrNoActiveSession) && !errors.Is(err, service.ErrSessionExpired) {
				return fmt.Errorf("restore session: %w", err)
			}

			if err = a.tui.Login(ctx); err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return err
			}
		}

		result, err := a.runShell(ctx, requested)
		if err != nil {
			return err
		}

		switch result.Outcome {
		case tui.OutcomeQuit:
			return nil
		case tui.OutcomeLogout:
			requested = service.DefaultRoute
		case tui.OutcomeExpired:
			// al reautenticarse, volver a la ruta donde estaba
			requested = result.LastPath
		}
	}
}

func (a *App) runShell(ctx context.Context, requested string) (tui.ShellResult, error) {
	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	expired := make(chan struct{}, 1)
	watcher := workers.NewSessionWatcher(watchCtx, a.services.AuthService, a.cfg.Workers.SessionCheckInterval,
		func() {
			select {
			case expired <- struct{}{}:
			default:
			}
		}, a.logger)
	workers.NewWorkers(watcher).Run()

	return a.tui.Shell(ctx, requested, expired)
}
