// Package main provides the entry point for the passcheck CLI.
//
// passcheck evaluates password strength: it checks length and character
// classes, estimates how long the password would survive common attack
// scenarios and optionally looks it up in a blacklist of leaked passwords.
//
// Usage:
//
//	passcheck check <password>
//	passcheck check --list <file>
//	passcheck check            (interactive)
//
// See --help for all available options.
package main

// main is the entry point for passcheck.
func main() {
	Execute()
}
