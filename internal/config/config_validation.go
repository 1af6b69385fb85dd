// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	if cfg.Storage.DB.URI == "" {
		return ErrMissingDatabaseURI
	}

	if cfg.App.Environment != "development" && cfg.App.Environment != "production" {
		return ErrInvalidEnvironment
	}

	return nil
}
