package strength

import (
	"unicode/utf8"

	"github.com/nao1215/passcheck/internal/model"
)

// Check evaluates the five rules against password.
func Check(password string, cs Charset) model.CheckResult {
	result := model.CheckResult{
		HasMinLength: utf8.RuneCountInString(password) >= model.MinLength,
	}
	for _, r := range password {
		switch {
		case cs.isUpper(r):
			result.HasUppercase = true
		case cs.isLower(r):
			result.HasLowercase = true
		case cs.isDigit(r):
			result.HasDigit = true
		}
		if isSpecial(r) {
			result.HasSpecialChar = true
		}
	}
	return result
}

// Score returns the number of rules password satisfies, in [0, model.MaxScore].
func Score(password string, cs Charset) int {
	return Check(password, cs).Passed()
}

// Label maps a score to its band and feedback message.
// Scores outside [0, model.MaxScore] are treated as weak unless they equal MaxScore.
func Label(score int) (model.Band, string) {
	var band model.Band
	switch {
	case score == model.MaxScore:
		band = model.BandStrong
	case score >= 3 && score < model.MaxScore:
		band = model.BandMedium
	default:
		band = model.BandWeak
	}
	return band, band.Message()
}
