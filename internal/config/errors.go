package config

import "errors"

// ErrParsingEnv wraps failures to convert an environment variable into its
// config field type.
var ErrParsingEnv = errors.New("error parsing env config")

// Validation errors returned by [StructuredConfig.validate].
var (
	ErrMissingDSN          = errors.New("database DSN is required (STORAGE_DB_DATABASE_URI)")
	ErrMissingTokenSignKey = errors.New("token sign key is required (APP_TOKEN_SIGN_KEY)")
	ErrMissingCryptoSecret = errors.New("crypto secret is required (APP_CRYPTO_SECRET)")
	ErrInvalidHashCost     = errors.New("password hash cost is out of bcrypt range")
	ErrNegativeDuration    = errors.New("durations must not be negative")
)
