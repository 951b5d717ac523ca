package config

import "time"

// defaultConfig returns the built-in fallback values merged in last,
// so any explicitly configured source wins. The defaults make the
// client and the dev server runnable out of the box against each
// other.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  "portero-dev-secret",
			TokenIssuer:   "portero-dev",
			TokenDuration: 8 * time.Hour,
			CodeDuration:  12 * time.Hour,
		},
		Portal: Portal{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			DB: DB{DSN: "portero.db"},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			SessionCheckInterval: 30 * time.Second,
		},
	}
}
