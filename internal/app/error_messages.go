// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joaquin Valdez

// Package app contains shared application-layer message constants used
// by the portero dev server handlers and surfaced in client screens.
//
// All Msg* constants are human-readable, user-facing Spanish strings
// written into HTTP response bodies. The client surfaces backend
// messages verbatim, so keeping them in one place keeps the wording
// consistent between the stub backend and the screens that render it.
package app

const (
	// MsgDatosInvalidos is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgDatosInvalidos = "Datos inválidos"

	// MsgUsuarioNoEncontrado is returned when no account exists for
	// the supplied document and role combination.
	MsgUsuarioNoEncontrado = "No existe un usuario con ese documento para el rol indicado"

	// MsgBaseDatosNoConectada is returned with a 503 status when the
	// backend database is unreachable. Distinguished from
	// MsgUsuarioNoEncontrado so users are never told "not found"
	// during an outage.
	MsgBaseDatosNoConectada = "La base de datos no está conectada, intente nuevamente en unos minutos"

	// MsgCodigoEnviado confirms a verification code was handed to the
	// delivery channel.
	MsgCodigoEnviado = "Código de verificación enviado"

	// MsgCodigoInvalido is returned when the submitted verification
	// code does not match the outstanding challenge.
	MsgCodigoInvalido = "El código ingresado no es válido"

	// MsgCodigoExpirado is returned when the outstanding challenge has
	// already expired; the user must request a new code.
	MsgCodigoExpirado = "El código ha expirado, solicite uno nuevo"

	// MsgSinChallengePendiente is returned when a verify arrives with
	// no outstanding challenge for that account.
	MsgSinChallengePendiente = "No hay un código pendiente para este usuario"

	// MsgSesionCerrada confirms a server-side logout.
	MsgSesionCerrada = "Sesión cerrada"

	// MsgNoAutorizado is returned when an authenticated endpoint is
	// called without a valid bearer token.
	MsgNoAutorizado = "No autorizado"

	// MsgErrorInterno is returned on unexpected server-side failures.
	MsgErrorInterno = "Error interno del servidor"
)
