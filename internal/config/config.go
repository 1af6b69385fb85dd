// SPDX-License-Identifier: Apache-2.0

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// eco-conscious backend. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as token parameters,
	// the public base URL, and the environment mode.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the document store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address, timeout, and CORS settings for the
	// HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Mail holds SMTP settings for outgoing verification email.
	Mail Mail `envPrefix:"MAIL_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values that control token
// lifecycle, link generation, and the runtime mode.
type App struct {
	// TokenSignKey is the secret key used to sign and verify all JWT
	// tokens (session and verification alike). Must be kept confidential.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// It identifies the service that issued the token and is validated on
	// every authenticated request.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a session JWT remains valid after
	// login (e.g. "72h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// VerificationTokenDuration specifies how long an emailed verification
	// link remains redeemable. The product requirement is 24 hours.
	// Env: APP_VERIFICATION_TOKEN_DURATION
	VerificationTokenDuration time.Duration `env:"VERIFICATION_TOKEN_DURATION"`

	// BaseURL is the public base URL of the API used when composing
	// verification links (e.g. "https://shop.example.com").
	// Env: APP_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Environment is the runtime mode: "development" or "production".
	// It affects startup wiring only, never request-time logic.
	// Env: APP_ENVIRONMENT
	Environment string `env:"ENVIRONMENT"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the root endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the document store connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the MongoDB backend.
type DB struct {
	// URI is the MongoDB connection string
	// (e.g. "mongodb://localhost:27017").
	// Env: STORAGE_DB_DATABASE_URI
	URI string `env:"DATABASE_URI"`

	// Database is the name of the database holding all collections.
	// Env: STORAGE_DB_DATABASE_NAME
	Database string `env:"DATABASE_NAME"`

	// ConnectTimeout bounds the initial connect and ping at startup.
	// Env: STORAGE_DB_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// Address is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:3000").
	// Env: SERVER_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the transport layer abandons it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// AllowedOrigins is the list of origins permitted by the CORS policy.
	// Env: SERVER_ALLOWED_ORIGINS (comma-separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Mail holds SMTP transport settings for outgoing email.
type Mail struct {
	// SMTPHost is the hostname of the SMTP relay (e.g. "smtp.gmail.com").
	// Env: MAIL_SMTP_HOST
	SMTPHost string `env:"SMTP_HOST"`

	// SMTPPort is the TCP port of the SMTP relay (e.g. 587).
	// Env: MAIL_SMTP_PORT
	SMTPPort int `env:"SMTP_PORT"`

	// Username authenticates against the SMTP relay.
	// Env: MAIL_USERNAME
	Username string `env:"USERNAME"`

	// Password authenticates against the SMTP relay.
	// Env: MAIL_PASSWORD
	Password string `env:"PASSWORD"`

	// From is the sender address placed on outgoing mail. Defaults to
	// Username when empty.
	// Env: MAIL_FROM
	From string `env:"FROM"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins per field):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
