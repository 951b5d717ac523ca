package store

import (
	"context"

	"github.com/jmvaldez/portero/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionRepository owns the durable copy of the session record: the
// account snapshot plus the session with its two expiry clocks. The
// client holds at most one identity at a time, so the repository
// semantics are single-record.
type SessionRepository interface {
	// Persist writes user and session atomically as one logical
	// record, so a reader can never observe a user without a session
	// or vice versa.
	Persist(ctx context.Context, user models.Usuario, sesion models.Sesion) error

	// Load reads the persisted record back. Returns
	// [ErrLocalSessionNotFound] if either half is missing or
	// unparsable.
	Load(ctx context.Context) (models.Usuario, models.Sesion, error)

	// UpdateSession overwrites the session half only, leaving the
	// user identity untouched. Used to extend the dual expiries
	// without re-running the login protocol.
	UpdateSession(ctx context.Context, sesion models.Sesion) error

	// Clear removes both halves of the record. Clearing an already
	// empty store is not an error.
	Clear(ctx context.Context) error
}
