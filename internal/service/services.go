package service

import (
	"github.com/jmvaldez/portero/internal/adapter"
	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/internal/store"
)

// ClientServices bundles the client-side services behind one
// constructor so the application root wires them once and passes the
// bundle down, instead of every consumer reaching for ambient state.
type ClientServices struct {
	AuthService       AuthService
	PermissionService PermissionService
	LoginFlow         *LoginFlow
}

func NewClientServices(localStore store.SessionRepository, portalAdapter adapter.PortalAdapter, log *logger.Logger) *ClientServices {
	authSvc := NewClientAuthService(localStore, portalAdapter, log)

	return &ClientServices{
		AuthService:       authSvc,
		PermissionService: NewClientPermissionService(portalAdapter, authSvc, log),
		LoginFlow:         NewLoginFlow(portalAdapter, authSvc, log),
	}
}
