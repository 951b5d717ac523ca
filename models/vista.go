package models

import (
	"fmt"
	"strings"
)

// Vista is a single grantable route with its display metadata. Vistas
// are created server-side and loaded read-only once per session; the
// menu tree and every route-access decision are derived from them.
type Vista struct {
	// Ruta is the route path, unique within a user's granted set.
	// It is either top-level ("/clientes") or nested exactly one
	// level ("/reportes/ventas").
	Ruta string `json:"ruta"`

	// Nombre is the human-readable menu label.
	Nombre string `json:"nombre"`

	// Icono is the menu icon identifier.
	Icono string `json:"icono"`

	// Categoria is a free-form grouping label.
	Categoria string `json:"categoria"`

	// Orden total-orders sibling entries in the menu.
	Orden int `json:"orden"`
}

// Validate checks the fields the menu builder and route authorizer
// depend on. Entries that fail validation are dropped at the boundary
// instead of propagating empty paths into derived structures.
func (v Vista) Validate() error {
	if strings.TrimSpace(v.Ruta) == "" || !strings.HasPrefix(v.Ruta, "/") {
		return fmt.Errorf("vista has invalid ruta %q", v.Ruta)
	}
	if strings.TrimSpace(v.Nombre) == "" {
		return fmt.Errorf("vista %s has empty nombre", v.Ruta)
	}
	return nil
}

// Segments returns the path segments of Ruta without the leading
// slash. "/reportes/ventas" yields ["reportes", "ventas"].
func (v Vista) Segments() []string {
	trimmed := strings.Trim(v.Ruta, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}
