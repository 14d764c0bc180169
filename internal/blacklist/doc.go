// Package blacklist decides whether a password appears in a list of known
// compromised passwords.
//
// A Store answers membership queries. Three stores are provided:
//   - FileStore reads the list file on every query
//   - MemoryStore loads the list once and keeps it in a set
//   - IndexStore queries the SQLite index built by "passcheck blacklist import"
//
// The Checker turns a Store into a model.Verdict. It never returns an error:
// a store that cannot be read yields VerdictUnavailable so that the rest of
// the evaluation still completes.
package blacklist
