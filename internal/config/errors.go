package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// provided by any configuration source.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
	// ErrMissingDatabaseURI indicates that no document store connection
	// string was provided by any configuration source.
	ErrMissingDatabaseURI = errors.New("database URI is required")
	// ErrInvalidEnvironment indicates an environment mode other than
	// "development" or "production".
	ErrInvalidEnvironment = errors.New("environment must be development or production")
)
