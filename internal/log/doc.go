// Package log provides an slog handler that keeps passwords out of logs.
//
// passcheck handles plaintext passwords on every code path, so every logger
// it creates wraps its text or JSON handler in a SecureHandler. The handler
// replaces the value of any attribute whose key names a secret (password,
// candidate, user_input, token and similar) and any string value that looks
// like a credential (JWTs, bearer tokens, private key blocks).
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("evaluating", "password", pw) // logged as ***REDACTED***
//	slog.SetDefault(logger)
package log
