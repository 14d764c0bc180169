package config

import "errors"

// Configuration validation errors returned (possibly several at once) by
// Config.Validate. Use errors.Is to test for them.
var (
	// ErrNoPasswords is returned when no password, list file or interactive
	// session was requested.
	ErrNoPasswords = errors.New("no password specified: pass passwords as arguments or use --list")

	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrTeeWithoutOutput is returned when --tee is used without --output.
	ErrTeeWithoutOutput = errors.New("--tee requires --output")

	// ErrInvalidCharset is returned for a charset other than ascii or unicode.
	ErrInvalidCharset = errors.New("invalid charset: must be ascii or unicode")

	// ErrInvalidBackend is returned for a blacklist backend other than file, memory or index.
	ErrInvalidBackend = errors.New("invalid blacklist backend: must be file, memory or index")

	// ErrInvalidColorMode is returned for a color mode other than auto, always or never.
	ErrInvalidColorMode = errors.New("invalid color mode: must be auto, always or never")

	// ErrInvalidMaxEstimateLength is returned when the estimate length limit is negative.
	ErrInvalidMaxEstimateLength = errors.New("invalid max estimate length: must be non-negative")

	// ErrNoBlacklistFile is returned when a file-based blacklist check is
	// enabled without a file name.
	ErrNoBlacklistFile = errors.New("blacklist check enabled but no blacklist file configured")

	// ErrInvalidEnvValue is returned when an environment variable cannot be parsed.
	ErrInvalidEnvValue = errors.New("invalid environment variable value")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
