package devserver

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jmvaldez/portero/internal/app"
	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/internal/utils"
)

const traceIDHeader = "X-Request-Id"

type ctxKey string

const idusCtxKey ctxKey = "idus"

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		lw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(lw, r)

		log.Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Int("status", lw.status).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}

// auth validates the bearer token and stores the account id in the
// request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Msg("invalid authorization header")
			respond(w, r, http.StatusUnauthorized, app.MsgNoAutorizado, nil)
			return
		}

		idus, err := utils.ValidateSessionToken(token, h.cfg.Auth.TokenSignKey, h.cfg.Auth.TokenIssuer)
		if err != nil {
			log.Err(err).Msg("invalid session token")
			respond(w, r, http.StatusUnauthorized, app.MsgNoAutorizado, nil)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), idusCtxKey, idus)))
	})
}

// responseWriter captures the status and size for the logging
// middleware.
type responseWriter struct {
	http.ResponseWriter

	status      int
	size        int
	wroteHeader bool
}

func (w *responseWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.status = status
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
