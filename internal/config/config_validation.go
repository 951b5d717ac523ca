// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Joaquin Valdez

package config

// validate checks that the final merged [StructuredConfig] satisfies
// the invariants shared by both binaries. Per-binary requirements are
// enforced on the projected views instead.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SessionCheckInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *DevServerConfig) validate() error {
	if cfg.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenIssuer == "" ||
		cfg.Auth.TokenDuration == 0 || cfg.Auth.CodeDuration == 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}
