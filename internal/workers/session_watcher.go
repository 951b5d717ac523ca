package workers

import (
	"context"
	"time"

	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/internal/service"
)

// SessionWatcher periodically re-checks the cached session against
// both expiry clocks while the application is open. When either clock
// crosses into the past the session is cleared locally and onExpired
// fires once per expiry, so the shell can drop back to the login flow
// instead of serving stale authenticated UI.
type SessionWatcher struct {
	ctx       context.Context
	auth      service.AuthService
	interval  time.Duration
	onExpired func()
	logger    *logger.Logger
}

func NewSessionWatcher(ctx context.Context, auth service.AuthService, interval time.Duration, onExpired func(), log *logger.Logger) *SessionWatcher {
	return &SessionWatcher{ctx: ctx, auth: auth, interval: interval, onExpired: onExpired, logger: log}
}

// Run spawns the watch loop and returns immediately.
func (w *SessionWatcher) Run() {
	go w.watch()
}

func (w *SessionWatcher) watch() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	wasAuthenticated := w.auth.IsAuthenticated()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			stillValid := w.auth.Revalidate(w.ctx)
			if wasAuthenticated && !stillValid {
				w.logger.Info().Msg("sesión expirada detectada por el worker")
				if w.onExpired != nil {
					w.onExpired()
				}
			}
			wasAuthenticated = stillValid || w.auth.IsAuthenticated()
		}
	}
}
