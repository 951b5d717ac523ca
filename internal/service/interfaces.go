package service

import (
	"context"

	"github.com/jmvaldez/portero/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthStatus is the coarse authentication state the route authorizer
// consumes.
type AuthStatus int

const (
	// AuthResolving means the persisted session has not been checked
	// yet. Guards must render a waiting state, never content.
	AuthResolving AuthStatus = iota

	// AuthAuthenticated means a valid session is established.
	AuthAuthenticated

	// AuthAnonymous means there is no valid session.
	AuthAnonymous
)

// PermissionStatus is the permission loader's state machine position.
type PermissionStatus int

const (
	PermissionsNotLoaded PermissionStatus = iota
	PermissionsLoading
	PermissionsLoaded
)

// AuthService owns the authenticated identity: the durable session
// record through the store plus a cached in-memory snapshot for fast
// synchronous reads.
type AuthService interface {
	// Login persists user and session atomically and marks the
	// identity authenticated.
	Login(ctx context.Context, user models.Usuario, sesion models.Sesion) error

	// Logout invalidates the session remotely on a best-effort basis
	// and then unconditionally clears the persisted record and the
	// in-memory cache. A remote failure never blocks the local clear.
	Logout(ctx context.Context) error

	// RefreshSession overwrites the session half only, extending the
	// dual expiries without re-running the login protocol.
	RefreshSession(ctx context.Context, sesion models.Sesion) error

	// Restore loads the persisted record and re-validates it against
	// both expiry clocks. A stale record is cleared locally (no remote
	// call) and reported via [ErrSessionExpired]; an absent one via
	// [ErrNoActiveSession]. Either way the status afterwards is
	// definitive (authenticated or anonymous), never resolving.
	Restore(ctx context.Context) (models.Usuario, error)

	// Revalidate re-checks the cached session against both expiry
	// clocks and clears it locally when stale. Cheap enough to call on
	// every navigation.
	Revalidate(ctx context.Context) bool

	// Current returns the cached identity snapshot. ok is false when
	// anonymous or still resolving.
	Current() (user models.Usuario, sesion models.Sesion, ok bool)

	IsAuthenticated() bool
	Status() AuthStatus

	// Generation increments on every identity change (login, logout,
	// stale-session clear). In-flight responses captured under an
	// older generation must be discarded, not applied.
	Generation() uint64
}

// PermissionService loads and caches the view permissions of the
// current identity and answers route-access questions from them.
type PermissionService interface {
	// Load fetches the granted views (and, for administrators, the
	// system catalog) for the current identity. Idempotent while a
	// fetch is in flight. Fetch failures are non-fatal and degrade to
	// the fail-closed empty set.
	Load(ctx context.Context) error

	Status() PermissionStatus

	// Views returns the granted view list of the current identity.
	Views() []models.Vista

	// Catalog returns the full system view catalog. Empty for
	// non-administrators and when the advisory catalog fetch failed.
	Catalog() []models.Vista

	// Menu returns the navigation tree derived from the granted views.
	Menu() []models.MenuNode

	// CanAccessRoute answers whether the current identity may open
	// path. While loading it optimistically answers true; with a
	// loaded empty set only the landing and login routes pass.
	CanAccessRoute(path string) bool

	// Reset drops all cached permission data. Must be called on every
	// identity change so no user observes another user's views.
	Reset()
}
