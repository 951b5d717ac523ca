package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a dev server listen address in format [host]:[port]
//	-portal portal backend base URL
//	-d local session database path
//	-c/-config json file path with configs
//	-token-sign-key token signing key (dev server)
//	-token-issuer token issuer name (dev server)
//	-token-duration session token duration (e.g., "8h")
//	-code-duration access code duration (e.g., "12h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-session-check-interval session watcher interval (e.g., "30s")
func ParseFlags() *StructuredConfig {
	var serverAddress string
	var portalAddress string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var codeDuration time.Duration
	var requestTimeout time.Duration
	var sessionCheckInterval time.Duration

	flag.StringVar(&serverAddress, "a", "", "Dev server listen address host:port")
	flag.StringVar(&portalAddress, "portal", "", "Portal backend base URL")
	flag.StringVar(&databaseDSN, "d", "", "Local session database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Session token duration (e.g., 8h)")
	flag.DurationVar(&codeDuration, "code-duration", 0, "Access code duration (e.g., 12h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&sessionCheckInterval, "session-check-interval", 0, "Session watcher interval (e.g., 30s)")

	flag.Parse()

	return &StructuredConfig{
		Auth: Auth{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			CodeDuration:  codeDuration,
		},
		Portal: Portal{
			HTTPAddress:    portalAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			SessionCheckInterval: sessionCheckInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}
