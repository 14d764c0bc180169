package strength

import (
	"fmt"
	"unicode"
)

// Charset selects which characters count as uppercase, lowercase and digits.
type Charset int

const (
	// CharsetASCII recognizes only A-Z, a-z and 0-9.
	CharsetASCII Charset = iota

	// CharsetUnicode recognizes any Unicode uppercase, lowercase and decimal digit.
	CharsetUnicode
)

// String returns the configuration name of the charset.
func (c Charset) String() string {
	switch c {
	case CharsetASCII:
		return "ascii"
	case CharsetUnicode:
		return "unicode"
	default:
		return "unknown"
	}
}

// ParseCharset converts a configuration name into a Charset.
func ParseCharset(name string) (Charset, error) {
	switch name {
	case "", "ascii":
		return CharsetASCII, nil
	case "unicode":
		return CharsetUnicode, nil
	default:
		return CharsetASCII, fmt.Errorf("unknown charset %q", name)
	}
}

func (c Charset) isUpper(r rune) bool {
	if c == CharsetUnicode {
		return unicode.IsUpper(r)
	}
	return r >= 'A' && r <= 'Z'
}

func (c Charset) isLower(r rune) bool {
	if c == CharsetUnicode {
		return unicode.IsLower(r)
	}
	return r >= 'a' && r <= 'z'
}

func (c Charset) isDigit(r rune) bool {
	if c == CharsetUnicode {
		return unicode.IsDigit(r)
	}
	return r >= '0' && r <= '9'
}

// isSpecial is charset independent: anything that is neither a letter nor a number.
func isSpecial(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsNumber(r)
}
