package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport
// layer.
type ClientAdapter struct {
	// HTTPAddress is the portal backend base URL.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used for the session store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SessionCheckInterval defines how often the session watcher
	// re-checks the persisted session's dual expiry clocks.
	SessionCheckInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App App
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view
// from the merged structured configuration. It loads the base config
// via [GetStructuredConfig], maps only the fields relevant to the
// client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: cfg.App,
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Portal.HTTPAddress,
			RequestTimeout: cfg.Portal.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{SessionCheckInterval: cfg.Workers.SessionCheckInterval},
	}

	return clientCfg, clientCfg.validate()
}
