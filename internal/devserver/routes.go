package devserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/jmvaldez/portero/internal/app"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withDegradedMode)

	// rutas sin autorización
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/validar-documento", h.validarDocumento)
		r.Post("/api/auth/enviar-codigo", h.enviarCodigo)
		r.Post("/api/auth/verificar-codigo", h.verificarCodigo)
	})

	// rutas con token de sesión
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/vistas/usuario/{idus}", h.vistasUsuario)
		r.Get("/api/vistas", h.vistasSistema)
	})

	return router
}

// withDegradedMode short-circuits every request with 503 when the
// server was started degraded, mimicking a down database.
func (h *Handler) withDegradedMode(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.degraded {
			respond(w, r, http.StatusServiceUnavailable, app.MsgBaseDatosNoConectada, nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
