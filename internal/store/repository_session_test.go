package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmvaldez/portero/internal/config"
	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/models"
)

func newTestStorages(t *testing.T) *ClientStorages {
	t.Helper()

	cfg := config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "portero_test.db")},
	}
	storages, err := NewClientStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages
}

func testUserAndSession() (models.Usuario, models.Sesion) {
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

func TestSessionRepository_PersistAndLoad(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()
	user, sesion := testUserAndSession()

	require.NoError(t, storages.Persist(ctx, user, sesion))

	gotUser, gotSesion, err := storages.Load(ctx)
	require.NoError(t, err)

	assert.Equal(t, user, gotUser)
	assert.Equal(t, sesion.Token, gotSesion.Token)
	assert.Equal(t, sesion.Recordar, gotSesion.Recordar)
	assert.WithinDuration(t, sesion.ExpiraEn, gotSesion.ExpiraEn, time.Second)
	assert.WithinDuration(t, sesion.CodigoAccesoExpira, gotSesion.CodigoAccesoExpira, time.Second)
}

func TestSessionRepository_PersistOverwrites(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()
	user, sesion := testUserAndSession()

	require.NoError(t, storages.Persist(ctx, user, sesion))

	// una segunda sesión reemplaza a la primera, nunca se acumulan
	user.Nombre = "Rosa Q. Mamani"
	sesion.Token = "token-def"
	require.NoError(t, storages.Persist(ctx, user, sesion))

	gotUser, gotSesion, err := storages.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Rosa Q. Mamani", gotUser.Nombre)
	assert.Equal(t, "token-def", gotSesion.Token)
}

func TestSessionRepository_LoadEmpty(t *testing.T) {
	storages := newTestStorages(t)

	_, _, err := storages.Load(context.Background())
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestSessionRepository_LoadCorruptedRecord(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()
	user, sesion := testUserAndSession()

	require.NoError(t, storages.Persist(ctx, user, sesion))

	// un valor que el driver no puede convertir a bool: el registro
	// ilegible equivale a no tener sesión, nunca a un error fatal
	_, err := storages.db.ExecContext(ctx, `UPDATE sesion SET recordar = 'basura'`)
	require.NoError(t, err)

	_, _, err = storages.Load(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)

	// un login posterior sobreescribe el registro dañado
	require.NoError(t, storages.Persist(ctx, user, sesion))
	_, gotSesion, err := storages.Load(ctx)
	require.NoError(t, err)
	assert.True(t, gotSesion.Recordar)
}

func TestSessionRepository_UpdateSession(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()
	user, sesion := testUserAndSession()

	require.NoError(t, storages.Persist(ctx, user, sesion))

	renewed := sesion
	renewed.Token = "token-renewed"
	renewed.ExpiraEn = sesion.ExpiraEn.Add(8 * time.Hour)
	require.NoError(t, storages.UpdateSession(ctx, renewed))

	gotUser, gotSesion, err := storages.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, gotUser)
	assert.Equal(t, "token-renewed", gotSesion.Token)
	assert.WithinDuration(t, renewed.ExpiraEn, gotSesion.ExpiraEn, time.Second)
}

func TestSessionRepository_UpdateSessionWithoutRecord(t *testing.T) {
	storages := newTestStorages(t)

	_, sesion := testUserAndSession()
	err := storages.UpdateSession(context.Background(), sesion)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)
}

func TestSessionRepository_Clear(t *testing.T) {
	storages := newTestStorages(t)
	ctx := context.Background()
	user, sesion := testUserAndSession()

	require.NoError(t, storages.Persist(ctx, user, sesion))
	require.NoError(t, storages.Clear(ctx))

	_, _, err := storages.Load(ctx)
	assert.ErrorIs(t, err, ErrLocalSessionNotFound)

	// limpiar un almacén vacío no es un error
	assert.NoError(t, storages.Clear(ctx))
}
