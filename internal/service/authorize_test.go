package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmvaldez/portero/internal/service"
)

func TestAuthorize(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		authStatus service.AuthStatus
		permStatus service.PermissionStatus
		canAccess  bool
		expected   service.Decision
	}{
		{
			name:       "pending while auth resolving",
			path:       "/clientes",
			authStatus: service.AuthResolving,
			permStatus: service.PermissionsNotLoaded,
			expected:   service.DecisionPending,
		},
		{
			name:       "pending while permissions not loaded",
			path:       "/clientes",
			authStatus: service.AuthAuthenticated,
			permStatus: service.PermissionsNotLoaded,
			canAccess:  true,
			expected:   service.DecisionPending,
		},
		{
			name:       "pending while permissions loading",
			path:       "/clientes",
			authStatus: service.AuthAuthenticated,
			permStatus: service.PermissionsLoading,
			canAccess:  true,
			expected:   service.DecisionPending,
		},
		{
			name:       "allow granted route",
			path:       "/clientes",
			authStatus: service.AuthAuthenticated,
			permStatus: service.PermissionsLoaded,
			canAccess:  true,
			expected:   service.DecisionAllow,
		},
		{
			name:       "deny ungranted route",
			path:       "/admin/usuarios",
			authStatus: service.AuthAuthenticated,
			permStatus: service.PermissionsLoaded,
			canAccess:  false,
			expected:   service.DecisionDeny,
		},
		{
			name:       "login route never denied",
			path:       service.LoginRoute,
			authStatus: service.AuthAuthenticated,
			permStatus: service.PermissionsLoaded,
			canAccess:  false,
			expected:   service.DecisionAllow,
		},
		{
			name:       "anonymous passes through, guards redirect",
			path:       "/clientes",
			authStatus: service.AuthAnonymous,
			permStatus: service.PermissionsNotLoaded,
			expected:   service.DecisionAllow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.Authorize(tt.path, tt.authStatus, tt.permStatus, tt.canAccess)
			assert.Equal(t, tt.expected, got)
		})
	}
}
