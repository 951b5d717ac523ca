package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/jmvaldez/portero/internal/adapter"
	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/models"
)

type clientPermissionService struct {
	adapter adapter.PortalAdapter
	auth    AuthService
	logger  *logger.Logger

	mu       sync.Mutex
	status   PermissionStatus
	inFlight bool
	loadedAt uint64 // auth generation the cached data belongs to
	vistas   []models.Vista
	catalogo []models.Vista
	menu     []models.MenuNode
}

func NewClientPermissionService(portalAdapter adapter.PortalAdapter, auth AuthService, log *logger.Logger) PermissionService {
	return &clientPermissionService{adapter: portalAdapter, auth: auth, logger: log}
}

// Load fetches the granted views for the current identity, and the
// system catalog too when that identity is an administrator. At most
// one fetch runs at a time; results captured for a since-changed
// identity are discarded rather than applied.
func (p *clientPermissionService) Load(ctx context.Context) error {
	user, _, ok := p.auth.Current()
	if !ok {
		return ErrNotAuthenticated
	}
	generation := p.auth.Generation()

	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return nil
	}
	if p.status == PermissionsLoaded && p.loadedAt == generation {
		p.mu.Unlock()
		return nil
	}
	p.inFlight = true
	p.status = PermissionsLoading
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.inFlight = false
		p.mu.Unlock()
	}()

	// The catalog is advisory, not security-enforcing: a failed fetch
	// degrades to an empty catalog and the session continues.
	var catalogo []models.Vista
	if user.EsAdmin() {
		fetched, err := p.fetchWithRetry(ctx, func(ctx context.Context) ([]models.Vista, error) {
			return p.adapter.SystemViews(ctx)
		})
		if err != nil {
			p.logger.Warn().Err(err).Msg("system view catalog fetch failed, continuing without it")
		} else {
			catalogo = fetched
		}
	}

	// A failed granted-views fetch leaves the user with zero views,
	// which the route authorizer treats fail-closed.
	var vistas []models.Vista
	fetched, err := p.fetchWithRetry(ctx, func(ctx context.Context) ([]models.Vista, error) {
		return p.adapter.GrantedViews(ctx, user.IDUS)
	})
	if err != nil {
		p.logger.Warn().Err(err).Str("idus", user.IDUS).Msg("granted views fetch failed, degrading to empty set")
	} else {
		vistas = dropInvalid(fetched, p.logger)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.auth.Generation() != generation {
		p.logger.Info().Str("idus", user.IDUS).Msg("identity changed during permission fetch, discarding results")
		p.resetLocked()
		return nil
	}

	p.vistas = vistas
	p.catalogo = catalogo
	p.menu = BuildMenu(vistas)
	p.status = PermissionsLoaded
	p.loadedAt = generation

	p.logger.Info().Str("idus", user.IDUS).Int("vistas", len(vistas)).Msg("permisos cargados")

	return nil
}

// fetchWithRetry retries only outage-shaped failures; a definitive
// answer (including 404) is returned as-is.
func (p *clientPermissionService) fetchWithRetry(ctx context.Context, fetch func(context.Context) ([]models.Vista, error)) ([]models.Vista, error) {
	backoff := retry.WithMaxRetries(3, retry.NewFibonacci(200*time.Millisecond))

	var result []models.Vista
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		fetched, err := fetch(ctx)
		if errors.Is(err, adapter.ErrServiceUnavailable) {
			return retry.RetryableError(err)
		}
		if err != nil {
			return err
		}
		result = fetched
		return nil
	})

	return result, err
}

func dropInvalid(vistas []models.Vista, log *logger.Logger) []models.Vista {
	valid := make([]models.Vista, 0, len(vistas))
	for _, v := range vistas {
		if err := v.Validate(); err != nil {
			log.Warn().Err(err).Msg("dropping malformed vista from backend")
			continue
		}
		valid = append(valid, v)
	}

	return valid
}

func (p *clientPermissionService) Status() PermissionStatus {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.status
}

func (p *clientPermissionService) Views() []models.Vista {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]models.Vista(nil), p.vistas...)
}

func (p *clientPermissionService) Catalog() []models.Vista {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]models.Vista(nil), p.catalogo...)
}

func (p *clientPermissionService) Menu() []models.MenuNode {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]models.MenuNode(nil), p.menu...)
}

// CanAccessRoute answers whether the current identity may open path.
//
// While a fetch is still pending the answer is optimistically true, so
// no route is ever denied on grants that have not arrived yet. Callers
// pairing this with [Authorize] hold such navigations in Pending until
// the set is Loaded; a caller acting on the raw answer alone would let
// a user briefly reach a route their grants end up excluding.
func (p *clientPermissionService) CanAccessRoute(path string) bool {
	if !p.auth.IsAuthenticated() {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.status != PermissionsLoaded {
		return true
	}

	if len(p.vistas) == 0 {
		// Fail-closed default: only the landing and login routes.
		return path == DefaultRoute || path == LoginRoute
	}

	for _, v := range p.vistas {
		if v.Ruta == path {
			return true
		}
	}

	return false
}

// Reset drops every cached view so no identity can observe another
// identity's permissions.
func (p *clientPermissionService) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.resetLocked()
}

func (p *clientPermissionService) resetLocked() {
	p.status = PermissionsNotLoaded
	p.loadedAt = 0
	p.vistas = nil
	p.catalogo = nil
	p.menu = nil
}
