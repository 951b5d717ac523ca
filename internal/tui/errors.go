package tui

import (
	"errors"

	"github.com/jmvaldez/portero/internal/adapter"
	"github.com/jmvaldez/portero/internal/service"
)

// humanizeLoginError turns a flow error into the message shown inline.
// Outages get a fixed explanation so the user is never told "user not
// found" when the real cause is a down database; backend rejections
// keep the backend's own wording, which the adapter carries verbatim.
func humanizeLoginError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrServiceUnavailable):
		return "La base de datos no está conectada. Intente nuevamente en unos minutos."
	case errors.Is(err, service.ErrDocumentMalformed),
		errors.Is(err, service.ErrCodeMalformed):
		return afterSentinel(err)
	case errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrInvalidCode),
		errors.Is(err, adapter.ErrCodeExpired):
		return afterSentinel(err)
	default:
		return err.Error()
	}
}

// afterSentinel strips the wrapping prefixes and returns the last
// colon-separated fragment, which holds the user-facing text.
func afterSentinel(err error) string {
	msg := err.Error()
	for i := len(msg) - 1; i >= 0; i-- {
		if msg[i] == ':' {
			if i+2 <= len(msg) {
				return msg[i+2:]
			}
			break
		}
	}
	return msg
}
