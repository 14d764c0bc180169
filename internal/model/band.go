package model

import "fmt"

// Band is the qualitative strength classification derived from a score.
// Bands are ordered: a higher band always means a higher score.
type Band int

const (
	// BandWeak covers scores below 3.
	BandWeak Band = iota

	// BandMedium covers scores 3 and 4.
	BandMedium

	// BandStrong is reserved for the maximum score.
	BandStrong
)

// Messages shown for each band.
const (
	MessageStrong = "Strong password!"
	MessageMedium = "Medium password. Consider adding more complexity."
	MessageWeak   = "Weak password. Please use a stronger password."
)

// String returns a human-readable representation of the band.
func (b Band) String() string {
	switch b {
	case BandWeak:
		return "WEAK"
	case BandMedium:
		return "MEDIUM"
	case BandStrong:
		return "STRONG"
	default:
		return "UNKNOWN"
	}
}

// Message returns the feedback sentence for the band.
func (b Band) Message() string {
	switch b {
	case BandStrong:
		return MessageStrong
	case BandMedium:
		return MessageMedium
	default:
		return MessageWeak
	}
}

// MarshalText encodes the band as its lower-case name.
func (b Band) MarshalText() ([]byte, error) {
	switch b {
	case BandWeak:
		return []byte("weak"), nil
	case BandMedium:
		return []byte("medium"), nil
	case BandStrong:
		return []byte("strong"), nil
	default:
		return nil, fmt.Errorf("unknown band: %d", int(b))
	}
}

// UnmarshalText decodes a band from its lower-case name.
func (b *Band) UnmarshalText(text []byte) error {
	switch string(text) {
	case "weak":
		*b = BandWeak
	case "medium":
		*b = BandMedium
	case "strong":
		*b = BandStrong
	default:
		return fmt.Errorf("unknown band: %q", string(text))
	}
	return nil
}
