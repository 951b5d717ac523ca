package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmvaldez/portero/internal/service"
	"github.com/jmvaldez/portero/models"
)

func TestBuildMenu_GroupsNestedRoutes(t *testing.T) {
	vistas := []models.Vista{
		{Ruta: "/reportes/a", Nombre: "A", Orden: 2},
		{Ruta: "/reportes/b", Nombre: "B", Orden: 1},
		{Ruta: "/clientes", Nombre: "Clientes", Orden: 3},
	}

	menu := service.BuildMenu(vistas)
	require.Len(t, menu, 2)

	reportes := menu[0]
	assert.Equal(t, "/reportes", reportes.Path)
	assert.Equal(t, "Reportes", reportes.Name)
	// el padre sintetizado hereda el orden del primer hijo ya ordenado
	assert.Equal(t, 1, reportes.Orden)
	require.Len(t, reportes.Submenu, 2)
	assert.Equal(t, "/reportes/b", reportes.Submenu[0].Path)
	assert.Equal(t, "/reportes/a", reportes.Submenu[1].Path)

	clientes := menu[1]
	assert.Equal(t, "/clientes", clientes.Path)
	assert.Equal(t, 3, clientes.Orden)
	assert.Empty(t, clientes.Submenu)
}

func TestBuildMenu_TopLevelOnly(t *testing.T) {
	vistas := []models.Vista{
		{Ruta: "/ventas", Nombre: "Ventas", Icono: "cart", Orden: 2},
		{Ruta: "/inicio", Nombre: "Inicio", Icono: "home", Orden: 1},
	}

	menu := service.BuildMenu(vistas)
	require.Len(t, menu, 2)
	assert.Equal(t, "/inicio", menu[0].Path)
	assert.Equal(t, "home", menu[0].Icon)
	assert.Equal(t, "/ventas", menu[1].Path)
}

func TestBuildMenu_MultipleGroups(t *testing.T) {
	vistas := []models.Vista{
		{Ruta: "/almacen/entradas", Nombre: "Entradas", Orden: 5},
		{Ruta: "/inicio", Nombre: "Inicio", Orden: 1},
		{Ruta: "/reportes/ventas", Nombre: "Ventas", Orden: 3},
		{Ruta: "/almacen/salidas", Nombre: "Salidas", Orden: 4},
		{Ruta: "/reportes/stock", Nombre: "Stock", Orden: 2},
	}

	menu := service.BuildMenu(vistas)
	require.Len(t, menu, 3)

	assert.Equal(t, "/inicio", menu[0].Path)

	assert.Equal(t, "/reportes", menu[1].Path)
	assert.Equal(t, 2, menu[1].Orden)
	require.Len(t, menu[1].Submenu, 2)
	assert.Equal(t, "/reportes/stock", menu[1].Submenu[0].Path)

	assert.Equal(t, "/almacen", menu[2].Path)
	assert.Equal(t, 4, menu[2].Orden)
	require.Len(t, menu[2].Submenu, 2)
	assert.Equal(t, "/almacen/salidas", menu[2].Submenu[0].Path)
}

func TestBuildMenu_Deterministic(t *testing.T) {
	vistas := []models.Vista{
		{Ruta: "/reportes/a", Nombre: "A", Orden: 2},
		{Ruta: "/reportes/b", Nombre: "B", Orden: 1},
		{Ruta: "/clientes", Nombre: "Clientes", Orden: 3},
	}

	first := service.BuildMenu(vistas)
	second := service.BuildMenu(vistas)
	assert.Equal(t, first, second)
}

func TestBuildMenu_Empty(t *testing.T) {
	assert.Empty(t, service.BuildMenu(nil))
	assert.Empty(t, service.BuildMenu([]models.Vista{}))
}
