// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joaquin Valdez

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/jmvaldez/portero/internal/config"
	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/internal/utils"
	"github.com/jmvaldez/portero/models"
)

type httpPortalAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPPortalAdapter constructs an HTTP/REST implementation of
// [PortalAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client
// with the resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be
// parsed as a valid URL.
func NewHTTPPortalAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (PortalAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpPortalAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [PortalAdapter]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all
// subsequent authenticated requests.
func (h *httpPortalAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [PortalAdapter]. It returns the bearer token
// currently held by the adapter, or an empty string if none has been
// set.
func (h *httpPortalAdapter) Token() string {
	return h.token
}

// ValidateDocument implements [PortalAdapter]. It POSTs the document
// and role to POST /api/auth/validar-documento and decodes the account
// snapshot from the response envelope. The 404/503 distinction is
// preserved through [mapHTTPError] so the login flow can tell "no such
// user" from "database down".
func (h *httpPortalAdapter) ValidateDocument(ctx context.Context, documento, rol string) (models.Usuario, error) {
	resp, err := h.request(ctx).
		SetBody(models.ValidarDocumentoRequest{Documento: documento, Rol: rol}).
		Post("/api/auth/validar-documento")
	if err != nil {
		return models.Usuario{}, fmt.Errorf("validate document request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Usuario{}, err
	}

	var usuario models.Usuario
	if err = decodeEnvelope(resp.Body(), &usuario); err != nil {
		return models.Usuario{}, fmt.Errorf("decode validate document response: %w", err)
	}

	return usuario, nil
}

// SendChallenge implements [PortalAdapter]. It POSTs the account id
// and phone to POST /api/auth/enviar-codigo.
func (h *httpPortalAdapter) SendChallenge(ctx context.Context, idus, numeroCelular string) error {
	resp, err := h.request(ctx).
		SetBody(models.EnviarCodigoRequest{IDUS: idus, NumeroCelular: numeroCelular}).
		Post("/api/auth/enviar-codigo")
	if err != nil {
		return fmt.Errorf("send challenge request: %w", err)
	}

	return mapHTTPError(resp)
}

// VerifyChallenge implements [PortalAdapter]. It POSTs the one-time
// code to POST /api/auth/verificar-codigo. On success the bearer token
// from the response payload is stored via SetToken.
func (h *httpPortalAdapter) VerifyChallenge(ctx context.Context, idus, codigo string, recordar bool) (models.Verificacion, error) {
	resp, err := h.request(ctx).
		SetBody(models.VerificarCodigoRequest{IDUS: idus, Codigo: codigo, Recordar: recordar}).
		Post("/api/auth/verificar-codigo")
	if err != nil {
		return models.Verificacion{}, fmt.Errorf("verify challenge request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Verificacion{}, err
	}

	var verificacion models.Verificacion
	if err = decodeEnvelope(resp.Body(), &verificacion); err != nil {
		return models.Verificacion{}, fmt.Errorf("decode verify challenge response: %w", err)
	}

	h.SetToken(verificacion.Token)
	return verificacion, nil
}

// Logout implements [PortalAdapter]. It POSTs the account id to
// POST /api/auth/logout. The caller treats any error as non-fatal.
func (h *httpPortalAdapter) Logout(ctx context.Context, idus string) error {
	resp, err := h.authedRequest(ctx).
		SetBody(models.LogoutRequest{IDUS: idus}).
		Post("/api/auth/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

// GrantedViews implements [PortalAdapter]. It GETs the account's
// granted views from GET /api/vistas/usuario/{idus}. Requires a valid
// bearer token.
func (h *httpPortalAdapter) GrantedViews(ctx context.Context, idus string) ([]models.Vista, error) {
	resp, err := h.authedRequest(ctx).Get("/api/vistas/usuario/" + url.PathEscape(idus))
	if err != nil {
		return nil, fmt.Errorf("granted views request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var vistas []models.Vista
	if err = decodeEnvelope(resp.Body(), &vistas); err != nil {
		return nil, fmt.Errorf("decode granted views response: %w", err)
	}

	return vistas, nil
}

// SystemViews implements [PortalAdapter]. It GETs the full system view
// catalog from GET /api/vistas. Requires a valid bearer token; the
// backend additionally enforces the Admin role.
func (h *httpPortalAdapter) SystemViews(ctx context.Context) ([]models.Vista, error) {
	resp, err := h.authedRequest(ctx).Get("/api/vistas")
	if err != nil {
		return nil, fmt.Errorf("system views request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var vistas []models.Vista
	if err = decodeEnvelope(resp.Body(), &vistas); err != nil {
		return nil, fmt.Errorf("decode system views response: %w", err)
	}

	return vistas, nil
}

func (h *httpPortalAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Request-Id", uuid.NewString())
}

func (h *httpPortalAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

// decodeEnvelope unmarshals the data field of the uniform response
// envelope into target.
func decodeEnvelope(body []byte, target any) error {
	var envelope models.APIResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		return err
	}
	if len(envelope.Data) == 0 {
		return fmt.Errorf("response envelope has no data")
	}

	return json.Unmarshal(envelope.Data, target)
}
