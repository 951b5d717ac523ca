package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmvaldez/portero/internal/adapter"
	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/internal/store"
	"github.com/jmvaldez/portero/internal/utils"
	"github.com/jmvaldez/portero/models"
)

type clientAuthService struct {
	localStore store.SessionRepository
	adapter    adapter.PortalAdapter
	logger     *logger.Logger

	// now is swappable in tests to pin the expiry clocks.
	now func() time.Time

	mu         sync.RWMutex
	user       models.Usuario
	sesion     models.Sesion
	status     AuthStatus
	generation uint64
}

func NewClientAuthService(localStore store.SessionRepository, portalAdapter adapter.PortalAdapter, log *logger.Logger) AuthService {
	return &clientAuthService{
		localStore: localStore,
		adapter:    portalAdapter,
		logger:     log,
		now:        time.Now,
		status:     AuthResolving,
	}
}

func (a *clientAuthService) Login(ctx context.Context, user models.Usuario, sesion models.Sesion) error {
	// Backends that omit expiraEn still embed exp in the JWT; fall
	// back to it so the dual-expiry check stays meaningful.
	if sesion.ExpiraEn.IsZero() && sesion.Token != "" {
		if exp, err := utils.TokenExpiry(sesion.Token); err == nil {
			sesion.ExpiraEn = exp
		}
	}

	if err := a.localStore.Persist(ctx, user, sesion); err != nil {
		a.logger.Err(err).Str("func", "Login").Msg("error persisting session")
		return fmt.Errorf("error persisting session: %w", err)
	}

	a.adapter.SetToken(sesion.Token)

	a.mu.Lock()
	a.user = user
	a.sesion = sesion
	a.status = AuthAuthenticated
	a.generation++
	a.mu.Unlock()

	a.logger.Info().Str("idus", user.IDUS).Str("tipo", user.TipoUsuario).Msg("sesión iniciada")

	return nil
}

// Logout clears the local record no matter what the backend answers.
// A user must never be stuck logged in locally because the remote
// invalidation failed.
func (a *clientAuthService) Logout(ctx context.Context) error {
	a.mu.RLock()
	idus := a.user.IDUS
	a.mu.RUnlock()

	if idus != "" {
		if err := a.adapter.Logout(ctx, idus); err != nil {
			a.logger.Warn().Err(err).Str("idus", idus).Msg("remote logout failed, clearing locally anyway")
		}
	}

	return a.clearLocal(ctx)
}

func (a *clientAuthService) RefreshSession(ctx context.Context, sesion models.Sesion) error {
	a.mu.RLock()
	authenticated := a.status == AuthAuthenticated
	a.mu.RUnlock()
	if !authenticated {
		return ErrNotAuthenticated
	}

	if err := a.localStore.UpdateSession(ctx, sesion); err != nil {
		a.logger.Err(err).Str("func", "RefreshSession").Msg("error updating session")
		return fmt.Errorf("error refreshing session: %w", err)
	}

	a.adapter.SetToken(sesion.Token)

	a.mu.Lock()
	a.sesion = sesion
	a.mu.Unlock()

	return nil
}

func (a *clientAuthService) Restore(ctx context.Context) (models.Usuario, error) {
	user, sesion, err := a.localStore.Load(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		a.markAnonymous()
		return models.Usuario{}, ErrNoActiveSession
	}
	if err != nil {
		a.logger.Err(err).Str("func", "Restore").Msg("error loading persisted session")
		a.markAnonymous()
		return models.Usuario{}, fmt.Errorf("error loading persisted session: %w", err)
	}

	if !sesion.EsValida(a.now()) {
		a.logger.Info().Str("idus", user.IDUS).Msg("sesión persistida expirada, limpiando")
		if clearErr := a.clearLocal(ctx); clearErr != nil {
			a.logger.Err(clearErr).Str("func", "Restore").Msg("error clearing stale session")
		}
		return models.Usuario{}, ErrSessionExpired
	}

	a.adapter.SetToken(sesion.Token)

	a.mu.Lock()
	a.user = user
	a.sesion = sesion
	a.status = AuthAuthenticated
	a.generation++
	a.mu.Unlock()

	return user, nil
}

func (a *clientAuthService) Revalidate(ctx context.Context) bool {
	a.mu.RLock()
	authenticated := a.status == AuthAuthenticated
	sesion := a.sesion
	a.mu.RUnlock()

	if !authenticated {
		return false
	}
	if sesion.EsValida(a.now()) {
		return true
	}

	a.logger.Info().Msg("sesión expirada durante el uso, limpiando")
	if err := a.clearLocal(ctx); err != nil {
		a.logger.Err(err).Str("func", "Revalidate").Msg("error clearing expired session")
	}

	return false
}

func (a *clientAuthService) Current() (models.Usuario, models.Sesion, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.status != AuthAuthenticated {
		return models.Usuario{}, models.Sesion{}, false
	}

	return a.user, a.sesion, true
}

func (a *clientAuthService) IsAuthenticated() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.status == AuthAuthenticated
}

func (a *clientAuthService) Status() AuthStatus {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.status
}

func (a *clientAuthService) Generation() uint64 {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.generation
}

// clearLocal wipes the persisted record and the cached snapshot. The
// cache is cleared even when the store delete fails.
func (a *clientAuthService) clearLocal(ctx context.Context) error {
	err := a.localStore.Clear(ctx)
	if err != nil {
		a.logger.Err(err).Str("func", "clearLocal").Msg("error clearing persisted session")
	}

	a.adapter.SetToken("")
	a.markAnonymous()

	if err != nil {
		return fmt.Errorf("error clearing persisted session: %w", err)
	}

	return nil
}

func (a *clientAuthService) markAnonymous() {
	a.mu.Lock()
	a.user = models.Usuario{}
	a.sesion = models.Sesion{}
	a.status = AuthAnonymous
	a.generation++
	a.mu.Unlock()
}
