package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/internal/service"
)

var ErrUserQuit = errors.New("salió del programa")

// ShellOutcome says why the shell program ended.
type ShellOutcome int

const (
	// OutcomeQuit means the user closed the application.
	OutcomeQuit ShellOutcome = iota

	// OutcomeLogout means the user logged out; the caller loops back
	// to the login flow.
	OutcomeLogout

	// OutcomeExpired means the session crossed one of its expiry
	// clocks while the shell was open; the caller loops back to the
	// login flow.
	OutcomeExpired
)

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, log *logger.Logger) *TUI {
	return &TUI{services: services, logger: log}
}

// Login runs the two-step login program (document, then verification
// code) and blocks until a session is established or the user quits.
func (t *TUI) Login(ctx context.Context) error {
	t.services.LoginFlow.Reset()

	root := newLoginRootModel(ctx, t.services.LoginFlow)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(*loginRootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

// ShellResult is how the shell program ended. LastPath is the route
// the user was on when the program ended, so an expired session can
// return to it after re-login.
type ShellResult struct {
	Outcome  ShellOutcome
	LastPath string
}

// Shell runs the authenticated navigation program: menu, guarded
// routes and the access-denied screen. startPath is the originally
// requested route, honored once permissions resolve. expired delivers
// the session watcher's out-of-band expiry signal.
func (t *TUI) Shell(ctx context.Context, startPath string, expired <-chan struct{}) (ShellResult, error) {
	root := newShellModel(ctx, t.services, startPath, expired, t.logger)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return ShellResult{Outcome: OutcomeQuit}, err
	}

	result, ok := finalModel.(*shellModel)
	if !ok {
		return ShellResult{Outcome: OutcomeQuit}, tea.ErrProgramKilled
	}

	return ShellResult{Outcome: result.outcome, LastPath: result.path}, nil
}
