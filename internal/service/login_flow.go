// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joaquin Valdez

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/jmvaldez/portero/internal/adapter"
	"github.com/jmvaldez/portero/internal/logger"
	"github.com/jmvaldez/portero/internal/validators"
	"github.com/jmvaldez/portero/models"
)

// LoginState is the login protocol's state machine position.
type LoginState int

const (
	// StateIdle accepts a document. Re-entered on "change document"
	// and after backend lookup failures.
	StateIdle LoginState = iota

	// StateAwaitingCode means a challenge is outstanding and the flow
	// accepts a six-digit code or, once the cooldown elapses, a
	// resend.
	StateAwaitingCode

	// StateVerified means the session is established; the flow is
	// done and control returns to the caller for navigation.
	StateVerified
)

// ResendCooldownTicks is the number of one-second ticks a resend is
// blocked for after a challenge is sent.
const ResendCooldownTicks = 60

// LoginFlow drives the two-step out-of-band login protocol:
// Idle → AwaitingCode → Verified. It owns the resend cooldown counter
// and the admission decisions; the actual per-second ticking is driven
// by the UI calling Tick.
type LoginFlow struct {
	adapter adapter.PortalAdapter
	auth    AuthService
	logger  *logger.Logger

	mu       sync.Mutex
	state    LoginState
	user     models.Usuario
	cooldown int
}

func NewLoginFlow(portalAdapter adapter.PortalAdapter, auth AuthService, log *logger.Logger) *LoginFlow {
	return &LoginFlow{adapter: portalAdapter, auth: auth, logger: log}
}

// SubmitDocument classifies raw locally and, when it is a well-formed
// DNI or RUC, looks the account up and requests a challenge. On any
// failure the flow stays in Idle; NotFound and ServiceUnavailable are
// surfaced distinctly so the user is never told "user not found" when
// the real cause is an outage.
func (f *LoginFlow) SubmitDocument(ctx context.Context, raw, rol string) error {
	f.mu.Lock()
	if f.state != StateIdle {
		f.mu.Unlock()
		return ErrWrongLoginState
	}
	f.mu.Unlock()

	class, msg := validators.ClassifyDocument(raw)
	if !class.EsValido() {
		return fmt.Errorf("%w: %s", ErrDocumentMalformed, msg)
	}

	documento := validators.OnlyDigits(raw)

	user, err := f.adapter.ValidateDocument(ctx, documento, rol)
	if err != nil {
		f.logger.Warn().Err(err).Str("rol", rol).Msg("document validation failed")
		return fmt.Errorf("error validating document: %w", err)
	}

	if err = f.adapter.SendChallenge(ctx, user.IDUS, user.NumeroCelular); err != nil {
		f.logger.Warn().Err(err).Str("idus", user.IDUS).Msg("challenge send failed")
		return fmt.Errorf("error sending verification code: %w", err)
	}

	f.mu.Lock()
	f.user = user
	f.state = StateAwaitingCode
	f.cooldown = ResendCooldownTicks
	f.mu.Unlock()

	f.logger.Info().Str("idus", user.IDUS).Msg("código de verificación enviado")

	return nil
}

// Resend issues a new challenge for the outstanding login attempt.
// Before the cooldown elapses it is rejected without touching the
// outstanding challenge or the counter; after, exactly one new
// challenge is sent and the cooldown restarts.
func (f *LoginFlow) Resend(ctx context.Context) error {
	f.mu.Lock()
	if f.state != StateAwaitingCode {
		f.mu.Unlock()
		return ErrWrongLoginState
	}
	if f.cooldown > 0 {
		f.mu.Unlock()
		return ErrResendNotAllowed
	}
	user := f.user
	f.mu.Unlock()

	if err := f.adapter.SendChallenge(ctx, user.IDUS, user.NumeroCelular); err != nil {
		f.logger.Warn().Err(err).Str("idus", user.IDUS).Msg("challenge resend failed")
		return fmt.Errorf("error resending verification code: %w", err)
	}

	f.mu.Lock()
	f.cooldown = ResendCooldownTicks
	f.mu.Unlock()

	return nil
}

// Tick decrements the cooldown counter by one unit while it is
// positive. It never blocks other interaction.
func (f *LoginFlow) Tick() {
	f.mu.Lock()
	if f.cooldown > 0 {
		f.cooldown--
	}
	f.mu.Unlock()
}

// Cooldown returns the remaining resend cooldown in ticks.
func (f *LoginFlow) Cooldown() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.cooldown
}

// SubmitCode verifies the six-digit code and, on success, establishes
// the session and moves to Verified. On failure the flow remains in
// AwaitingCode with the outstanding challenge intact, so the user may
// retry or resend.
func (f *LoginFlow) SubmitCode(ctx context.Context, code string, recordar bool) error {
	f.mu.Lock()
	if f.state != StateAwaitingCode {
		f.mu.Unlock()
		return ErrWrongLoginState
	}
	user := f.user
	f.mu.Unlock()

	if !validators.ValidCode(code) {
		return fmt.Errorf("%w: se esperan 6 dígitos", ErrCodeMalformed)
	}

	verificacion, err := f.adapter.VerifyChallenge(ctx, user.IDUS, code, recordar)
	if err != nil {
		f.logger.Warn().Err(err).Str("idus", user.IDUS).Msg("challenge verification failed")
		return fmt.Errorf("error verifying code: %w", err)
	}

	sesion := verificacion.Sesion
	if sesion.Token == "" {
		sesion.Token = verificacion.Token
	}
	sesion.Recordar = recordar

	if err = f.auth.Login(ctx, verificacion.Usuario, sesion); err != nil {
		return err
	}

	f.mu.Lock()
	f.state = StateVerified
	f.mu.Unlock()

	return nil
}

// Reset abandons the current attempt and returns to Idle, discarding
// the fetched account and the cooldown ("change document").
func (f *LoginFlow) Reset() {
	f.mu.Lock()
	f.state = StateIdle
	f.user = models.Usuario{}
	f.cooldown = 0
	f.mu.Unlock()
}

// State returns the protocol's current position.
func (f *LoginFlow) State() LoginState {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// PendingUser returns the account fetched during document validation.
// Zero value outside AwaitingCode/Verified.
func (f *LoginFlow) PendingUser() models.Usuario {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.user
}
