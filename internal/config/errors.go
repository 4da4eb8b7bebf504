package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidSettingsConfigs indicates an invalid source order (unknown
	// or repeated source kinds).
	ErrInvalidSettingsConfigs = errors.New("invalid settings configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
)
