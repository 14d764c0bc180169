package database

import "errors"

var (
	// ErrIndexNotFound is returned by Open when the index database does not
	// exist and CreateIfNotExists is false.
	ErrIndexNotFound = errors.New("blacklist index not found")
)
