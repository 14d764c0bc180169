package blacklist

import "errors"

var (
	// ErrUnavailable indicates that the blacklist source could not be opened or read.
	ErrUnavailable = errors.New("blacklist unavailable")

	// ErrUnknownBackend is returned by ParseBackend for unsupported names.
	ErrUnknownBackend = errors.New("unknown blacklist backend")
)
