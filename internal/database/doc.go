// Package database provides the SQLite-backed blacklist index for passcheck.
//
// Large blacklists (rockyou.txt has more than fourteen million lines) are
// slow to scan line by line for every password. The index imports such a
// file once and answers membership queries with a primary-key lookup.
//
// The BlacklistDB stores:
//   - Blacklist entries, one row per distinct line
//   - Import history (source path, number of lines, import time)
//
// SQLite is provided by modernc.org/sqlite, which is CGO-free, so the
// binary cross-compiles without a C toolchain.
package database
