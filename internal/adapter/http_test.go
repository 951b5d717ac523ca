package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmvaldez/portero/internal/config"
	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/models"
)

func newTestAdapter(t *testing.T, handler http.Handler) (PortalAdapter, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPPortalAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return a, srv
}

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, message string, data any) {
	t.Helper()

	envelope := models.APIResponse{Success: status < 300, Message: message}
	if data != nil {
		raw, err := json.Marshal(data)
		require.NoError(t, err)
		envelope.Data = raw
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(envelope))
}

func TestNewHTTPPortalAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPPortalAdapter(config.ClientAdapter{HTTPAddress: ""}, logger.Nop())
	assert.Error(t, err)
}

func TestNewHTTPPortalAdapter_AddsSchemeWhenMissing(t *testing.T) {
	a, err := NewHTTPPortalAdapter(config.ClientAdapter{HTTPAddress: "localhost:8080"}, logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, a)
}

func TestValidateDocument_Success(t *testing.T) {
	var gotBody models.ValidarDocumentoRequest

	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/validar-documento", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		writeEnvelope(t, w, http.StatusOK, "", models.Usuario{
			IDUS:          "USR-7",
			TipoUsuario:   models.TipoTrabajador,
			NumeroCelular: "+51911111111",
			Documento:     "12345678",
		})
	}))

	usuario, err := a.ValidateDocument(context.Background(), "12345678", models.TipoTrabajador)
	require.NoError(t, err)
	assert.Equal(t, "USR-7", usuario.IDUS)
	assert.Equal(t, "12345678", gotBody.Documento)
	assert.Equal(t, models.TipoTrabajador, gotBody.Rol)
}

func TestValidateDocument_NotFoundVsUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
		wantErr error
	}{
		{"no account for role", http.StatusNotFound, "Usuario no registrado", ErrNotFound},
		{"database down", http.StatusServiceUnavailable, "Base de datos no conectada", ErrServiceUnavailable},
		{"gateway down", http.StatusBadGateway, "", ErrServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeEnvelope(t, w, tt.status, tt.message, nil)
			}))

			_, err := a.ValidateDocument(context.Background(), "12345678", models.TipoTrabajador)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.message != "" {
				assert.Contains(t, err.Error(), tt.message, "backend message must be surfaced verbatim")
			}
		})
	}
}

func TestVerifyChallenge_StoresToken(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusOK, "", models.Verificacion{
			Usuario: models.Usuario{IDUS: "USR-7"},
			Sesion: models.Sesion{
				Token:              "tok-123",
				ExpiraEn:           time.Now().Add(time.Hour),
				CodigoAccesoExpira: time.Now().Add(2 * time.Hour),
			},
			Token: "tok-123",
		})
	}))

	v, err := a.VerifyChallenge(context.Background(), "USR-7", "123456", true)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", v.Token)
	assert.Equal(t, "tok-123", a.Token())
}

func TestVerifyChallenge_InvalidAndExpiredCode(t *testing.T) {
	t.Run("wrong code", func(t *testing.T) {
		a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(t, w, http.StatusUnprocessableEntity, "Código incorrecto", nil)
		}))

		_, err := a.VerifyChallenge(context.Background(), "USR-7", "000000", false)
		assert.ErrorIs(t, err, ErrInvalidCode)
	})

	t.Run("expired code", func(t *testing.T) {
		a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeEnvelope(t, w, http.StatusGone, "Código expirado", nil)
		}))

		_, err := a.VerifyChallenge(context.Background(), "USR-7", "123456", false)
		assert.ErrorIs(t, err, ErrCodeExpired)
	})
}

func TestGrantedViews_SendsBearerToken(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/vistas/usuario/USR-7", r.URL.Path)
		assert.Equal(t, "Bearer tok-abc", r.Header.Get("Authorization"))

		writeEnvelope(t, w, http.StatusOK, "", []models.Vista{
			{Ruta: "/clientes", Nombre: "Clientes", Orden: 1},
		})
	}))

	a.SetToken("tok-abc")

	vistas, err := a.GrantedViews(context.Background(), "USR-7")
	require.NoError(t, err)
	require.Len(t, vistas, 1)
	assert.Equal(t, "/clientes", vistas[0].Ruta)
}

func TestSystemViews_Unauthorized(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusUnauthorized, "Token inválido", nil)
	}))

	_, err := a.SystemViews(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogout_ReturnsMappedError(t *testing.T) {
	a, _ := newTestAdapter(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(t, w, http.StatusInternalServerError, "fallo interno", nil)
	}))

	err := a.Logout(context.Background(), "USR-7")
	assert.ErrorIs(t, err, ErrInternalServer)
}
