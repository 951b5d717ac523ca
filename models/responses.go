package models

import "encoding/json"

// APIResponse is the uniform envelope returned by every portal REST
// endpoint. Data is kept raw so each adapter method can decode it into
// the payload type it expects; Message carries the backend-provided,
// user-facing text that error paths surface verbatim.
type APIResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Verificacion is the payload of a successful verify-challenge call:
// the account snapshot, the freshly minted session record and the
// bearer token for subsequent authenticated requests.
type Verificacion struct {
	Usuario Usuario `json:"usuario"`
	Sesion  Sesion  `json:"sesion"`
	Token   string  `json:"token"`
}

// EnvioCodigo is the payload of a send-challenge call.
type EnvioCodigo struct {
	Enviado bool `json:"enviado"`
}
