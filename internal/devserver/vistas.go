package devserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jmvaldez/portero/internal/app"
	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/models"
)

func (h *Handler) vistasUsuario(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	idus := chi.URLParam(r, "idus")
	if _, found := h.findUserByID(idus); !found {
		respond(w, r, http.StatusNotFound, app.MsgUsuarioNoEncontrado, nil)
		return
	}

	vistas := h.vistas[idus]
	log.Debug().Str("idus", idus).Int("vistas", len(vistas)).Msg("granted views served")

	respond(w, r, http.StatusOK, "", vistas)
}

// vistasSistema serves the full catalog. Only administrators may ask
// for it.
func (h *Handler) vistasSistema(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	idus, _ := r.Context().Value(idusCtxKey).(string)
	user, found := h.findUserByID(idus)
	if !found || user.TipoUsuario != models.TipoAdmin {
		log.Info().Str("idus", idus).Msg("system catalog denied")
		respond(w, r, http.StatusUnauthorized, app.MsgNoAutorizado, nil)
		return
	}

	respond(w, r, http.StatusOK, "", h.system)
}
