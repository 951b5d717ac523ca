package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/internal/mock"
	"github.com/jmvaldez/portero/internal/service"
	"github.com/jmvaldez/portero/internal/store"
	"github.com/jmvaldez/portero/models"
)

func testIdentity() (models.Usuario, models.Sesion) {
	user := models.Usuario{
		IDUS:          "US-0001",
		TipoUsuario:   models.TipoTrabajador,
		NumeroCelular: "+51999888777",
		Documento:     "12345678",
		Nombre:        "Rosa Quispe",
	}
	sesion := models.Sesion{
		Token:              "token-abc",
		ExpiraEn:           time.Now().Add(8 * time.Hour),
		CodigoAccesoExpira: time.Now().Add(12 * time.Hour),
		Recordar:           true,
	}

	return user, sesion
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	adapterMock := mock.NewMockPortalAdapter(ctrl)
	auth := service.NewClientAuthService(repo, adapterMock, logger.Nop())

	user, sesion := testIdentity()
	repo.EXPECT().Persist(gomock.Any(), user, sesion).Return(nil)
	adapterMock.EXPECT().SetToken(sesion.Token)

	require.NoError(t, auth.Login(context.Background(), user, sesion))

	gotUser, gotSesion, ok := auth.Current()
	require.True(t, ok)
	assert.Equal(t, user, gotUser)
	assert.Equal(t, sesion, gotSesion)
	assert.True(t, auth.IsAuthenticated())
	assert.Equal(t, service.AuthAuthenticated, auth.Status())
}

func TestAuthService_LoginPersistFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	adapterMock := mock.NewMockPortalAdapter(ctrl)
	auth := service.NewClientAuthService(repo, adapterMock, logger.Nop())

	user, sesion := testIdentity()
	repo.EXPECT().Persist(gomock.Any(), user, sesion).Return(errors.New("disk full"))

	assert.Error(t, auth.Login(context.Background(), user, sesion))
	assert.False(t, auth.IsAuthenticated())
}

// El cierre de sesión local nunca depende del backend.
func TestAuthService_LogoutClearsLocallyWhenRemoteFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	adapterMock := mock.NewMockPortalAdapter(ctrl)
	auth := service.NewClientAuthService(repo, adapterMock, logger.Nop())

	user, sesion := testIdentity()
	repo.EXPECT().Persist(gomock.Any(), user, sesion).Return(nil)
	adapterMock.EXPECT().SetToken(sesion.Token)
	require.NoError(t, auth.Login(context.Background(), user, sesion))

	adapterMock.EXPECT().Logout(gomock.Any(), user.IDUS).Return(errors.New("network down"))
	repo.EXPECT().Clear(gomock.Any()).Return(nil)
	adapterMock.EXPECT().SetToken("")

	require.NoError(t, auth.Logout(context.Background()))

	assert.False(t, auth.IsAuthenticated())
	assert.Equal(t, service.AuthAnonymous, auth.Status())
	_, _, ok := auth.Current()
	assert.False(t, ok)
}

func TestAuthService_LogoutCacheClearedEvenIfStoreFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	adapterMock := mock.NewMockPortalAdapter(ctrl)
	auth := service.NewClientAuthService(repo, adapterMock, logger.Nop())

	user, sesion := testIdentity()
	repo.EXPECT().Persist(gomock.Any(), user, sesion).Return(nil)
	adapterMock.EXPECT().SetToken(sesion.Token)
	require.NoError(t, auth.Login(context.Background(), user, sesion))

	adapterMock.EXPECT().Logout(gomock.Any(), user.IDUS).Return(nil)
	repo.EXPECT().Clear(gomock.Any()).Return(errors.New("io error"))
	adapterMock.EXPECT().SetToken("")

	assert.Error(t, auth.Logout(context.Background()))
	assert.False(t, auth.IsAuthenticated())
}

func TestAuthService_RestoreValidSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	adapterMock := mock.NewMockPortalAdapter(ctrl)
	auth := service.NewClientAuthService(repo, adapterMock, logger.Nop())

	user, sesion := testIdentity()
	repo.EXPECT().Load(gomock.Any()).Return(user, sesion, nil)
	adapterMock.EXPECT().SetToken(sesion.Token)

	restored, err := auth.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, user, restored)
	assert.True(t, auth.IsAuthenticated())
}

func TestAuthService_RestoreNoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	adapterMock := mock.NewMockPortalAdapter(ctrl)
	auth := service.NewClientAuthService(repo, adapterMock, logger.Nop())

	assert.Equal(t, service.AuthResolving, auth.Status())

	repo.EXPECT().Load(gomock.Any()).Return(models.Usuario{}, models.Sesion{}, store.ErrLocalSessionNotFound)

	_, err := auth.Restore(context.Background())
	assert.ErrorIs(t, err, service.ErrNoActiveSession)
	assert.Equal(t, service.AuthAnonymous, auth.Status())
}

// Una sesión con cualquiera de los dos relojes vencidos se limpia
// localmente, sin llamada remota.
func TestAuthService_RestoreExpiredSessionClears(t *testing.T) {
	tests := []struct {
		name   string
		sesion models.Sesion
	}{
		{
			name: "session clock expired",
			sesion: models.Sesion{
				Token:              "token-abc",
				ExpiraEn:           time.Now().Add(-time.Minute),
				CodigoAccesoExpira: time.Now().Add(time.Hour),
			},
		},
		{
			name: "access code clock expired",
			sesion: models.Sesion{
				Token:              "token-abc",
				ExpiraEn:           time.Now().Add(time.Hour),
				CodigoAccesoExpira: time.Now().Add(-time.Minute),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockSessionRepository(ctrl)
			adapterMock := mock.NewMockPortalAdapter(ctrl)
			auth := service.NewClientAuthService(repo, adapterMock, logger.Nop())

			user, _ := testIdentity()
			repo.EXPECT().Load(gomock.Any()).Return(user, tt.sesion, nil)
			repo.EXPECT().Clear(gomock.Any()).Return(nil)
			adapterMock.EXPECT().SetToken("")

			_, err := auth.Restore(context.Background())
			assert.ErrorIs(t, err, service.ErrSessionExpired)
			assert.Equal(t, service.AuthAnonymous, auth.Status())
		})
	}
}

func TestAuthService_RevalidateClearsExpired(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	adapterMock := mock.NewMockPortalAdapter(ctrl)
	auth := service.NewClientAuthService(repo, adapterMock, logger.Nop())

	user, sesion := testIdentity()
	sesion.CodigoAccesoExpira = time.Now().Add(50 * time.Millisecond)

	repo.EXPECT().Persist(gomock.Any(), user, sesion).Return(nil)
	adapterMock.EXPECT().SetToken(sesion.Token)
	require.NoError(t, auth.Login(context.Background(), user, sesion))
	require.True(t, auth.Revalidate(context.Background()))

	time.Sleep(60 * time.Millisecond)

	repo.EXPECT().Clear(gomock.Any()).Return(nil)
	adapterMock.EXPECT().SetToken("")

	assert.False(t, auth.Revalidate(context.Background()))
	assert.False(t, auth.IsAuthenticated())
}

func TestAuthService_RefreshSessionRequiresAuth(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	adapterMock := mock.NewMockPortalAdapter(ctrl)
	auth := service.NewClientAuthService(repo, adapterMock, logger.Nop())

	_, sesion := testIdentity()
	err := auth.RefreshSession(context.Background(), sesion)
	assert.ErrorIs(t, err, service.ErrNotAuthenticated)
}

func TestAuthService_RefreshSessionKeepsIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	adapterMock := mock.NewMockPortalAdapter(ctrl)
	auth := service.NewClientAuthService(repo, adapterMock, logger.Nop())

	user, sesion := testIdentity()
	repo.EXPECT().Persist(gomock.Any(), user, sesion).Return(nil)
	adapterMock.EXPECT().SetToken(sesion.Token)
	require.NoError(t, auth.Login(context.Background(), user, sesion))

	renewed := sesion
	renewed.Token = "token-renewed"
	renewed.ExpiraEn = sesion.ExpiraEn.Add(8 * time.Hour)

	repo.EXPECT().UpdateSession(gomock.Any(), renewed).Return(nil)
	adapterMock.EXPECT().SetToken(renewed.Token)

	require.NoError(t, auth.RefreshSession(context.Background(), renewed))

	gotUser, gotSesion, ok := auth.Current()
	require.True(t, ok)
	assert.Equal(t, user, gotUser)
	assert.Equal(t, renewed, gotSesion)
}

func TestAuthService_GenerationAdvancesOnIdentityChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	adapterMock := mock.NewMockPortalAdapter(ctrl)
	auth := service.NewClientAuthService(repo, adapterMock, logger.Nop())

	user, sesion := testIdentity()
	repo.EXPECT().Persist(gomock.Any(), user, sesion).Return(nil)
	adapterMock.EXPECT().SetToken(sesion.Token)
	require.NoError(t, auth.Login(context.Background(), user, sesion))
	afterLogin := auth.Generation()

	adapterMock.EXPECT().Logout(gomock.Any(), user.IDUS).Return(nil)
	repo.EXPECT().Clear(gomock.Any()).Return(nil)
	adapterMock.EXPECT().SetToken("")
	require.NoError(t, auth.Logout(context.Background()))

	assert.Greater(t, auth.Generation(), afterLogin)
}
