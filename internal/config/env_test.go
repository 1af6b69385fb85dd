// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY":              "jwt_secret",
		"APP_TOKEN_ISSUER":                "test_issuer",
		"APP_TOKEN_DURATION":              "72h",
		"APP_VERIFICATION_TOKEN_DURATION": "24h",
		"APP_BASE_URL":                    "https://shop.example.com",
		"APP_ENVIRONMENT":                 "production",
		"APP_VERSION":                     "1.2.3",

		"SERVER_ADDRESS":         "localhost:3000",
		"SERVER_REQUEST_TIMEOUT": "30s",
		"SERVER_ALLOWED_ORIGINS": "https://shop.example.com,http://localhost:5173",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI":    "mongodb://localhost:27017",
		"STORAGE_DB_DATABASE_NAME":   "ecoconscious",
		"STORAGE_DB_CONNECT_TIMEOUT": "10s",

		"MAIL_SMTP_HOST": "smtp.example.com",
		"MAIL_SMTP_PORT": "587",
		"MAIL_USERNAME":  "noreply@example.com",
		"MAIL_PASSWORD":  "mail_secret",
		"MAIL_FROM":      "EcoConscious <noreply@example.com>",
	}
	for k, v := range envVars {
		t.Setenv(k, v)
	}

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 72*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 24*time.Hour, cfg.App.VerificationTokenDuration)
	assert.Equal(t, "https://shop.example.com", cfg.App.BaseURL)
	assert.Equal(t, "production", cfg.App.Environment)
	assert.Equal(t, "1.2.3", cfg.App.Version)

	assert.Equal(t, "localhost:3000", cfg.Server.Address)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"https://shop.example.com", "http://localhost:5173"}, cfg.Server.AllowedOrigins)

	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.DB.URI)
	assert.Equal(t, "ecoconscious", cfg.Storage.DB.Database)
	assert.Equal(t, 10*time.Second, cfg.Storage.DB.ConnectTimeout)

	assert.Equal(t, "smtp.example.com", cfg.Mail.SMTPHost)
	assert.Equal(t, 587, cfg.Mail.SMTPPort)
	assert.Equal(t, "noreply@example.com", cfg.Mail.Username)
	assert.Equal(t, "mail_secret", cfg.Mail.Password)
	assert.Equal(t, "EcoConscious <noreply@example.com>", cfg.Mail.From)
}

func TestParseEnv_PartialFields(t *testing.T) {
	// Arrange
	t.Setenv("APP_TOKEN_SIGN_KEY", "jwt_secret")
	t.Setenv("SERVER_ADDRESS", "localhost:3000")

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "localhost:3000", cfg.Server.Address)
	assert.Empty(t, cfg.Storage.DB.URI)
	assert.Zero(t, cfg.App.TokenDuration)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	assert.Error(t, err)
}
