package config

import (
	"fmt"
	"time"
)

// DevServerConfig is the configuration view consumed by the dev server
// binary.
type DevServerConfig struct {
	// HTTPAddress is the TCP address the dev server listens on.
	HTTPAddress string
	// RequestTimeout bounds each inbound request.
	RequestTimeout time.Duration
	// Auth holds the token issuing settings.
	Auth Auth
}

// GetDevServerConfig builds and validates the dev server config view
// from the merged structured configuration.
func GetDevServerConfig() (*DevServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	devCfg := &DevServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		Auth:           cfg.Auth,
	}

	return devCfg, devCfg.validate()
}
