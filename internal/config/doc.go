// Package config provides the configuration of passcheck.
//
// A Config starts from NewConfig defaults and is then overlaid, in order, by
// the YAML configuration file, environment variables (including a .env
// file) and finally the command-line flags the user actually set.
package config
