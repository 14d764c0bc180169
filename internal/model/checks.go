package model

// MinLength is the number of characters (runes) a password needs to pass
// the length rule.
const MinLength = 12

// MaxScore is the highest rule-based score a password can reach.
// It equals the number of facts in CheckResult.
const MaxScore = 5

// CheckResult holds the five independent rule facts for a password.
// Each fact is a pure function of the password.
type CheckResult struct {
	// HasMinLength is true when the password has at least MinLength runes.
	HasMinLength bool `json:"has_min_length"`

	// HasUppercase is true when the password contains an uppercase letter.
	HasUppercase bool `json:"has_uppercase"`

	// HasLowercase is true when the password contains a lowercase letter.
	HasLowercase bool `json:"has_lowercase"`

	// HasDigit is true when the password contains a digit.
	HasDigit bool `json:"has_digit"`

	// HasSpecialChar is true when the password contains at least one
	// character that is not alphanumeric.
	HasSpecialChar bool `json:"has_special_char"`
}

// Passed returns the number of facts that hold.
func (c CheckResult) Passed() int {
	n := 0
	for _, ok := range []bool{c.HasMinLength, c.HasUppercase, c.HasLowercase, c.HasDigit, c.HasSpecialChar} {
		if ok {
			n++
		}
	}
	return n
}
