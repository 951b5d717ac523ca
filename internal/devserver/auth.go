// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joaquin Valdez

package devserver

import (
	"crypto/rand"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jmvaldez/portero/internal/app"
	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/internal/utils"
	"github.com/jmvaldez/portero/models"
)

func (h *Handler) validarDocumento(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ValidarDocumentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respond(w, r, http.StatusBadRequest, app.MsgDatosInvalidos, nil)
		return
	}

	user, found := h.findUser(req.Documento, req.Rol)
	if !found {
		log.Info().Str("rol", req.Rol).Msg("no user for document and role")
		respond(w, r, http.StatusNotFound, app.MsgUsuarioNoEncontrado, nil)
		return
	}

	respond(w, r, http.StatusOK, "", user)
}

func (h *Handler) enviarCodigo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.EnviarCodigoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respond(w, r, http.StatusBadRequest, app.MsgDatosInvalidos, nil)
		return
	}

	if _, found := h.findUserByID(req.IDUS); !found {
		respond(w, r, http.StatusNotFound, app.MsgUsuarioNoEncontrado, nil)
		return
	}

	code, err := generateCode()
	if err != nil {
		log.Err(err).Msg("error generating code")
		respond(w, r, http.StatusInternalServerError, app.MsgErrorInterno, nil)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("error hashing code")
		respond(w, r, http.StatusInternalServerError, app.MsgErrorInterno, nil)
		return
	}

	h.mu.Lock()
	h.challenges[req.IDUS] = challenge{
		codeHash:  hash,
		expiresAt: time.Now().Add(h.cfg.Auth.CodeDuration).Unix(),
	}
	h.mu.Unlock()

	// no hay canal de entrega en desarrollo: el código va al log
	log.Info().Str("idus", req.IDUS).Str("codigo", code).Msg("código de verificación emitido")

	respond(w, r, http.StatusOK, app.MsgCodigoEnviado, models.EnvioCodigo{Enviado: true})
}

func (h *Handler) verificarCodigo(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.VerificarCodigoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respond(w, r, http.StatusBadRequest, app.MsgDatosInvalidos, nil)
		return
	}

	user, found := h.findUserByID(req.IDUS)
	if !found {
		respond(w, r, http.StatusNotFound, app.MsgUsuarioNoEncontrado, nil)
		return
	}

	h.mu.Lock()
	pending, hasChallenge := h.challenges[req.IDUS]
	h.mu.Unlock()

	if !hasChallenge {
		respond(w, r, http.StatusUnprocessableEntity, app.MsgSinChallengePendiente, nil)
		return
	}

	if time.Now().Unix() > pending.expiresAt {
		h.mu.Lock()
		delete(h.challenges, req.IDUS)
		h.mu.Unlock()
		respond(w, r, http.StatusGone, app.MsgCodigoExpirado, nil)
		return
	}

	if err := bcrypt.CompareHashAndPassword(pending.codeHash, []byte(req.Codigo)); err != nil {
		log.Info().Str("idus", req.IDUS).Msg("wrong verification code")
		respond(w, r, http.StatusUnprocessableEntity, app.MsgCodigoInvalido, nil)
		return
	}

	h.mu.Lock()
	delete(h.challenges, req.IDUS)
	h.mu.Unlock()

	token, err := utils.GenerateSessionToken(h.cfg.Auth.TokenIssuer, user.IDUS, h.cfg.Auth.TokenDuration, h.cfg.Auth.TokenSignKey)
	if err != nil {
		log.Err(err).Msg("error issuing session token")
		respond(w, r, http.StatusInternalServerError, app.MsgErrorInterno, nil)
		return
	}

	now := time.Now()
	verificacion := models.Verificacion{
		Usuario: user,
		Sesion: models.Sesion{
			Token:              token.SignedString,
			ExpiraEn:           now.Add(h.cfg.Auth.TokenDuration),
			CodigoAccesoExpira: now.Add(h.cfg.Auth.CodeDuration),
			Recordar:           req.Recordar,
		},
		Token: token.SignedString,
	}

	respond(w, r, http.StatusOK, "", verificacion)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		respond(w, r, http.StatusBadRequest, app.MsgDatosInvalidos, nil)
		return
	}

	h.mu.Lock()
	delete(h.challenges, req.IDUS)
	h.mu.Unlock()

	respond(w, r, http.StatusOK, app.MsgSesionCerrada, nil)
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
