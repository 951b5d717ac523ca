package models

import "time"

// Sesion is the durable client-side artifact proving authentication.
// It is subject to two independent expiry clocks: the session token
// expiry and the access-code expiry. Either clock crossing into the
// past invalidates the whole record.
type Sesion struct {
	// Token is the opaque bearer token presented on authenticated
	// requests.
	Token string `json:"token"`

	// ExpiraEn is the instant the session itself expires.
	ExpiraEn time.Time `json:"expiraEn"`

	// CodigoAccesoExpira is the instant the access code backing this
	// session expires. It gates validity independently of ExpiraEn.
	CodigoAccesoExpira time.Time `json:"codigoAccesoExpira"`

	// Recordar is the "remember me" flag chosen at verification time.
	Recordar bool `json:"recordar"`
}

// EsValida reports whether the session is still usable at instant now.
// Both expiry clocks must lie strictly in the future; a session at or
// past either deadline is stale and must be cleared locally.
func (s Sesion) EsValida(now time.Time) bool {
	return now.Before(s.ExpiraEn) && now.Before(s.CodigoAccesoExpira)
}

// TableName returns the name of the local database table
// associated with the Sesion model.
func (s Sesion) TableName() string {
	return "sesion"
}
