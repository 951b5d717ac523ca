package models

// ValidarDocumentoRequest is the body of POST /api/auth/validar-documento.
type ValidarDocumentoRequest struct {
	Documento string `json:"documento"`
	Rol       string `json:"rol"`
}

// EnviarCodigoRequest is the body of POST /api/auth/enviar-codigo.
type EnviarCodigoRequest struct {
	IDUS          string `json:"idus"`
	NumeroCelular string `json:"numeroCelular"`
}

// VerificarCodigoRequest is the body of POST /api/auth/verificar-codigo.
type VerificarCodigoRequest struct {
	IDUS     string `json:"idus"`
	Codigo   string `json:"codigo"`
	Recordar bool   `json:"recordar"`
}

// LogoutRequest is the body of POST /api/auth/logout. The call is
// best-effort: the client never blocks local logout on its outcome.
type LogoutRequest struct {
	IDUS string `json:"idus"`
}
