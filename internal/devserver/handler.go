// Package devserver implements an in-memory stub of the portal REST
// backend for local development: document validation, challenge
// issuing and verification, logout and the two view endpoints. Issued
// codes are printed to the server log instead of being delivered
// out-of-band.
package devserver

import (
	"sync"

	"github.com/jmvaldez/portero/internal/config"
	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/models"
)

// challenge is one outstanding verification code for an account.
type challenge struct {
	codeHash  []byte
	expiresAt int64
}

type Handler struct {
	cfg    *config.DevServerConfig
	logger *logger.Logger

	// degraded makes every endpoint answer 503, to exercise the
	// client's service-unavailable path.
	degraded bool

	mu         sync.Mutex
	challenges map[string]challenge

	users  []models.Usuario
	vistas map[string][]models.Vista
	system []models.Vista
}

func NewHandler(cfg *config.DevServerConfig, degraded bool, log *logger.Logger) *Handler {
	h := &Handler{
		cfg:        cfg,
		logger:     log,
		degraded:   degraded,
		challenges: make(map[string]challenge),
	}
	h.loadFixtures()

	log.Info().Bool("degraded", degraded).Msg("dev server handler created")

	return h
}
