package devserver

import (
	"encoding/json"
	"net/http"

	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/models"
)

// respond writes the uniform response envelope every portal endpoint
// uses. data may be nil.
func respond(w http.ResponseWriter, r *http.Request, status int, message string, data any) {
	envelope := models.APIResponse{
		Success: status >= http.StatusOK && status < http.StatusMultipleChoices,
		Message: message,
	}

	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			logger.FromRequest(r).Err(err).Msg("error marshaling response data")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		envelope.Data = raw
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
