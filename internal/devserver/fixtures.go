package devserver

import "github.com/jmvaldez/portero/models"

// loadFixtures seeds the in-memory dataset: one worker reachable by
// DNI, one administrator reachable by RUC, and their view grants.
func (h *Handler) loadFixtures() {
	h.users = []models.Usuario{
		{
			IDUS:          "US-0001",
			TipoUsuario:   models.TipoTrabajador,
			NumeroCelular: "+51999888777",
			Documento:     "12345678",
			Nombre:        "Rosa Quispe",
		},
		{
			IDUS:          "US-0002",
			TipoUsuario:   models.TipoAdmin,
			NumeroCelular: "+51988777666",
			Documento:     "20123456789",
			Nombre:        "Joaquín Valdez",
		},
	}

	h.system = []models.Vista{
		{Ruta: "/clientes", Nombre: "Clientes", Icono: "users", Orden: 3},
		{Ruta: "/reportes/ventas", Nombre: "Reporte de ventas", Icono: "chart", Categoria: "reportes", Orden: 2},
		{Ruta: "/reportes/stock", Nombre: "Reporte de stock", Icono: "box", Categoria: "reportes", Orden: 1},
		{Ruta: "/almacen/entradas", Nombre: "Entradas de almacén", Icono: "in", Categoria: "almacen", Orden: 5},
		{Ruta: "/almacen/salidas", Nombre: "Salidas de almacén", Icono: "out", Categoria: "almacen", Orden: 4},
		{Ruta: "/admin/usuarios", Nombre: "Gestión de usuarios", Icono: "cog", Categoria: "admin", Orden: 6},
	}

	h.vistas = map[string][]models.Vista{
		// la trabajadora solo ve clientes y reportes
		"US-0001": {h.system[0], h.system[1], h.system[2]},
		// el administrador ve todo
		"US-0002": h.system,
	}
}

func (h *Handler) findUser(documento, rol string) (models.Usuario, bool) {
	for _, u := range h.users {
		if u.Documento == documento && u.TipoUsuario == rol {
			return u, true
		}
	}
	return models.Usuario{}, false
}

func (h *Handler) findUserByID(idus string) (models.Usuario, bool) {
	for _, u := range h.users {
		if u.IDUS == idus {
			return u, true
		}
	}
	return models.Usuario{}, false
}
