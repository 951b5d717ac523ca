package adapter

import (
	"context"

	"github.com/jmvaldez/portero/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PortalAdapter is the client-side boundary to the portal backend. It
// covers the two-step login protocol (document validation, challenge
// send, challenge verify), best-effort remote logout, and the two
// permission endpoints. Implementations hold the bearer token obtained
// at verification and attach it to authenticated requests.
type PortalAdapter interface {
	// ValidateDocument looks up the account registered under documento
	// for the given role. Fails with [ErrNotFound] when no such account
	// exists and with [ErrServiceUnavailable] when the backend or its
	// database is down, so callers can surface the specific cause.
	ValidateDocument(ctx context.Context, documento, rol string) (models.Usuario, error)

	// SendChallenge asks the backend to deliver a one-time code to the
	// account's phone. The delivery channel is owned by the backend.
	SendChallenge(ctx context.Context, idus, numeroCelular string) error

	// VerifyChallenge submits the one-time code. On success it returns
	// the account snapshot, the session record and the bearer token,
	// and stores the token for subsequent authenticated requests.
	// Fails with [ErrInvalidCode] or [ErrCodeExpired].
	VerifyChallenge(ctx context.Context, idus, codigo string, recordar bool) (models.Verificacion, error)

	// Logout invalidates the session server-side. Best-effort: callers
	// must never block local logout on its outcome.
	Logout(ctx context.Context, idus string) error

	// GrantedViews fetches the views the account may access.
	GrantedViews(ctx context.Context, idus string) ([]models.Vista, error)

	// SystemViews fetches the full system view catalog (Admin only).
	SystemViews(ctx context.Context) ([]models.Vista, error)

	// SetToken stores the bearer token used by authenticated requests.
	SetToken(token string)

	// Token returns the currently held bearer token, or "".
	Token() string
}
