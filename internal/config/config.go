package config

import (
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/hashicorp/go-multierror"

	"github.com/nao1215/passcheck/internal/blacklist"
	"github.com/nao1215/passcheck/internal/estimator"
	"github.com/nao1215/passcheck/internal/strength"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "passcheck"

	// DefaultBlacklistFile is the list checked when none is configured.
	DefaultBlacklistFile = "rockyou.txt"

	// DefaultBlacklistDir is the base directory of relative blacklist file names.
	DefaultBlacklistDir = "files"

	// DefaultBatchSize is the number of passwords evaluated concurrently.
	DefaultBatchSize = 4

	// DefaultMaxEstimateLength is the number of runes given to the estimator.
	DefaultMaxEstimateLength = estimator.DefaultMaxLength

	// Color modes.
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds all configuration options for passcheck.
// It is populated from defaults, the config file, the environment and CLI
// flags, then passed explicitly to the components that need it.
type Config struct {
	// BlacklistCheck enables the blacklist lookup. Off by default.
	BlacklistCheck bool

	// BlacklistFile is the list file. Relative names are resolved against BlacklistDir.
	BlacklistFile string

	// BlacklistDir is the base directory for relative BlacklistFile names.
	BlacklistDir string

	// BlacklistBackend selects how the list is searched: file, memory or index.
	BlacklistBackend string

	// IndexDir is the directory of the SQLite blacklist index.
	// Defaults to the XDG data directory.
	IndexDir string

	// Charset selects the character classes of the rule checks: ascii or unicode.
	Charset string

	// Estimate enables crack-time estimation.
	Estimate bool

	// MaxEstimateLength is the number of runes given to the estimator.
	// Zero means the default.
	MaxEstimateLength int

	// UserInputs are personal words (names, company) that weaken a password.
	UserInputs []string

	// JSONReport selects JSON output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport selects Markdown output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile writes the report to a file instead of stdout.
	ReportFile string

	// Tee also writes the report to stdout when ReportFile is set.
	Tee bool

	// Color controls ANSI colors: auto, always or never.
	Color string

	// BatchSize is the number of passwords evaluated concurrently.
	BatchSize int

	// ShowPassword prints passwords in reports instead of masking them.
	ShowPassword bool

	// Verbose enables debug logging and detailed reports.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	ConfigFilePath string

	// Passwords are the passwords given on the command line.
	Passwords []string

	// ListFile is a file with one password per line.
	ListFile string

	// Interactive prompts for passwords on standard input.
	Interactive bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		BlacklistCheck:    false,
		BlacklistFile:     DefaultBlacklistFile,
		BlacklistDir:      DefaultBlacklistDir,
		BlacklistBackend:  string(blacklist.BackendFile),
		IndexDir:          XDGDataDir(),
		Charset:           strength.CharsetASCII.String(),
		Estimate:          true,
		MaxEstimateLength: DefaultMaxEstimateLength,
		Color:             ColorAuto,
		BatchSize:         DefaultBatchSize,
	}
}

// BlacklistPath returns the path of the blacklist file.
// Absolute file names are used as-is.
func (c *Config) BlacklistPath() string {
	if c.BlacklistFile == "" || filepath.IsAbs(c.BlacklistFile) {
		return c.BlacklistFile
	}
	return filepath.Join(c.BlacklistDir, c.BlacklistFile)
}

// XDGDataDir returns the XDG data directory for passcheck, where the
// blacklist index is stored.
// On Linux: ~/.local/share/passcheck
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for passcheck.
// On Linux: ~/.config/passcheck
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and reports every problem found.
// The returned error is a *multierror.Error whose entries wrap the
// package's sentinel errors.
func (c *Config) Validate() error {
	var result *multierror.Error

	if len(c.Passwords) == 0 && c.ListFile == "" && !c.Interactive {
		result = multierror.Append(result, ErrNoPasswords)
	}
	if c.BatchSize <= 0 {
		result = multierror.Append(result, ErrInvalidBatchSize)
	}
	if c.JSONReport && c.MarkdownReport {
		result = multierror.Append(result, ErrConflictingReportFormats)
	}
	if c.Tee && c.ReportFile == "" {
		result = multierror.Append(result, ErrTeeWithoutOutput)
	}
	if _, err := strength.ParseCharset(c.Charset); err != nil {
		result = multierror.Append(result, fmt.Errorf("%w: %q", ErrInvalidCharset, c.Charset))
	}
	backend, err := blacklist.ParseBackend(c.BlacklistBackend)
	if err != nil {
		result = multierror.Append(result, fmt.Errorf("%w: %q", ErrInvalidBackend, c.BlacklistBackend))
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		result = multierror.Append(result, fmt.Errorf("%w: %q", ErrInvalidColorMode, c.Color))
	}
	if c.MaxEstimateLength < 0 {
		result = multierror.Append(result, ErrInvalidMaxEstimateLength)
	}
	if c.BlacklistCheck && backend != blacklist.BackendIndex && c.BlacklistFile == "" {
		result = multierror.Append(result, ErrNoBlacklistFile)
	}

	return result.ErrorOrNil()
}
