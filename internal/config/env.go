package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override the configuration file.
const (
	EnvBlacklistCheck   = "PASSCHECK_BLACKLIST_CHECK"
	EnvBlacklistFile    = "PASSCHECK_BLACKLIST_FILE"
	EnvBlacklistBackend = "PASSCHECK_BLACKLIST_BACKEND"
	EnvCharset          = "PASSCHECK_CHARSET"
)

// DefaultEnvFile is the dotenv file read from the current directory.
const DefaultEnvFile = ".env"

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// EnvLookup returns a LookupFunc over the process environment and the dotenv
// file at path. Variables already set in the process win over the file, as
// with godotenv.Load. A missing file is not an error.
func EnvLookup(path string) (LookupFunc, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		values = map[string]string{}
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := values[key]
		return v, ok
	}, nil
}

// ApplyEnv overrides cfg with the PASSCHECK_* variables found by lookup.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if v, ok := lookup(EnvBlacklistCheck); ok && strings.TrimSpace(v) != "" {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnvValue, EnvBlacklistCheck, v)
		}
		c.BlacklistCheck = b
	}
	if v, ok := lookup(EnvBlacklistFile); ok && v != "" {
		c.BlacklistFile = v
	}
	if v, ok := lookup(EnvBlacklistBackend); ok && v != "" {
		c.BlacklistBackend = v
	}
	if v, ok := lookup(EnvCharset); ok && v != "" {
		c.Charset = v
	}
	return nil
}
