package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing HTTP listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid activation service settings
	// (for example, missing base URL or a non-positive client timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidClientConfigs indicates the terminal client has no link to open.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
	// ErrInvalidFlags indicates command-line flags could not be parsed.
	ErrInvalidFlags = errors.New("invalid command-line flags")
)
