// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joaquin Valdez

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// portero. It aggregates all sub-configurations and is populated by
// merging values from a .env file, environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Auth holds token issuing settings used by the dev server.
	Auth Auth `envPrefix:"AUTH_"`

	// Portal holds the outbound transport settings the client uses to
	// reach the portal backend.
	Portal Portal `envPrefix:"PORTAL_"`

	// Storage holds the local persistence settings (the client-side
	// session database).
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen settings for the dev server binary.
	Server Server `envPrefix:"SERVER_"`

	// Workers holds background job settings (session re-validation).
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the
	// values already loaded from the environment and flags.
	// Populated via the CONFIG environment variable or the -c / -config
	// flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running
	// application (e.g. "1.2.3").
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Auth holds token issuing settings. Only the dev server signs tokens;
// the client treats them as opaque.
type Auth struct {
	// TokenSignKey is the secret key used to sign and verify session
	// JWT tokens. Must be kept confidential outside development.
	// Env: AUTH_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued token.
	// Env: AUTH_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a session token remains valid after
	// issuance (e.g. "8h").
	// Env: AUTH_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// CodeDuration is how long an issued access code remains valid
	// (the second expiry clock on the session record).
	// Env: AUTH_CODE_DURATION
	CodeDuration time.Duration `env:"CODE_DURATION"`
}

// Portal holds the outbound transport settings for the portal backend.
type Portal struct {
	// HTTPAddress is the base URL of the portal REST API
	// (e.g. "http://localhost:8080").
	// Env: PORTAL_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the per-request timeout for outbound calls
	// (e.g. "15s").
	// Env: PORTAL_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups local persistence settings.
type Storage struct {
	// DB holds the local session database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite session store.
type DB struct {
	// DSN is the SQLite file path holding the persisted session
	// record (e.g. "portero.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Server holds listen settings for the dev server.
type Server struct {
	// HTTPAddress is the TCP address the dev server listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single
	// inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for the client background jobs.
type Workers struct {
	// SessionCheckInterval is how often the session watcher re-checks
	// the dual expiry clocks while the app is open.
	// Env: WORKERS_SESSION_CHECK_INTERVAL
	SessionCheckInterval time.Duration `env:"SESSION_CHECK_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority
// order (first non-zero value wins):
//  1. Environment variables (after loading an optional .env file)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any
// source fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotenv().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
