package models

// Account role labels returned by the portal backend in the
// tipoUsuario field.
const (
	TipoAdmin      = "Admin"
	TipoTrabajador = "Trabajador"
)

// Usuario represents a portal account as returned by the
// validate-document endpoint. It is immutable for the lifetime of a
// login attempt: the record fetched during document validation is the
// one persisted on successful verification.
type Usuario struct {
	// IDUS is the opaque account identifier assigned by the portal.
	IDUS string `json:"idus"`

	// TipoUsuario is the account role, one of [TipoAdmin] or
	// [TipoTrabajador]. Admin accounts additionally load the full
	// system view catalog.
	TipoUsuario string `json:"tipoUsuario"`

	// NumeroCelular is the phone number the verification code is
	// delivered to. The delivery channel itself is owned by the backend.
	NumeroCelular string `json:"numeroCelular"`

	// Documento is the national ID (DNI, 8 digits) or tax ID
	// (RUC, 11 digits) the account was looked up by.
	Documento string `json:"documento"`

	// Nombre is the display name shown in the shell header.
	Nombre string `json:"nombre"`
}

// EsAdmin reports whether the account carries the administrator role.
func (u Usuario) EsAdmin() bool {
	return u.TipoUsuario == TipoAdmin
}

// TableName returns the name of the local database table
// associated with the Usuario model.
func (u Usuario) TableName() string {
	return "usuario"
}
