package model

import "fmt"

// Verdict is the outcome of a blacklist check.
//
// The zero value is VerdictDisabled, so a report whose blacklist step never
// ran carries an explicit "disabled" marker instead of something that reads
// like a negative result.
type Verdict int

const (
	// VerdictDisabled means blacklist checking was turned off.
	VerdictDisabled Verdict = iota

	// VerdictNotBlacklisted means the list was read and the password is not on it.
	VerdictNotBlacklisted

	// VerdictBlacklisted means the password exactly matches a list entry.
	VerdictBlacklisted

	// VerdictUnavailable means the list could not be opened or read.
	VerdictUnavailable
)

var verdictNames = map[Verdict]string{
	VerdictDisabled:       "disabled",
	VerdictNotBlacklisted: "not_blacklisted",
	VerdictBlacklisted:    "blacklisted",
	VerdictUnavailable:    "unavailable",
}

// String returns the machine-readable name of the verdict.
func (v Verdict) String() string {
	if name, ok := verdictNames[v]; ok {
		return name
	}
	return "unknown"
}

// Message returns the sentence shown to the user for the verdict.
func (v Verdict) Message() string {
	switch v {
	case VerdictDisabled:
		return "Disabled"
	case VerdictNotBlacklisted:
		return "Password is not blacklisted."
	case VerdictBlacklisted:
		return "WARNING: This password is blacklisted. Please choose a different password."
	case VerdictUnavailable:
		return "Error: Blacklist file not found."
	default:
		return "Unknown blacklist state."
	}
}

// Determined reports whether the verdict is a definite yes or no.
func (v Verdict) Determined() bool {
	return v == VerdictBlacklisted || v == VerdictNotBlacklisted
}

// MarshalText encodes the verdict as its name.
func (v Verdict) MarshalText() ([]byte, error) {
	name, ok := verdictNames[v]
	if !ok {
		return nil, fmt.Errorf("unknown verdict: %d", int(v))
	}
	return []byte(name), nil
}

// UnmarshalText decodes a verdict from its name.
func (v *Verdict) UnmarshalText(text []byte) error {
	for verdict, name := range verdictNames {
		if name == string(text) {
			*v = verdict
			return nil
		}
	}
	return fmt.Errorf("unknown verdict: %q", string(text))
}
