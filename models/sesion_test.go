package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSesion_EsValida_DualExpiry(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Minute)
	after := now.Add(time.Minute)

	tests := []struct {
		name               string
		expiraEn           time.Time
		codigoAccesoExpira time.Time
		want               bool
	}{
		{"both in the future", after, after, true},
		{"session expired", before, after, false},
		{"access code expired", after, before, false},
		{"both expired", before, before, false},
		{"session expiring exactly now", now, after, false},
		{"access code expiring exactly now", after, now, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Sesion{
				Token:              "tok",
				ExpiraEn:           tt.expiraEn,
				CodigoAccesoExpira: tt.codigoAccesoExpira,
			}
			assert.Equal(t, tt.want, s.EsValida(now))
		})
	}
}

func TestVista_Validate(t *testing.T) {
	assert.NoError(t, Vista{Ruta: "/clientes", Nombre: "Clientes"}.Validate())
	assert.Error(t, Vista{Ruta: "", Nombre: "Clientes"}.Validate())
	assert.Error(t, Vista{Ruta: "clientes", Nombre: "Clientes"}.Validate())
	assert.Error(t, Vista{Ruta: "/clientes", Nombre: "  "}.Validate())
}

func TestVista_Segments(t *testing.T) {
	assert.Equal(t, []string{"reportes", "ventas"}, Vista{Ruta: "/reportes/ventas"}.Segments())
	assert.Equal(t, []string{"clientes"}, Vista{Ruta: "/clientes"}.Segments())
	assert.Nil(t, Vista{Ruta: "/"}.Segments())
}
