package strength

import (
	"fmt"
	"unicode/utf8"

	"github.com/nao1215/passcheck/internal/model"
)

// Recommendation sentences, in the order they are emitted.
var (
	RecommendLength    = fmt.Sprintf("Increase the length of your password to at least %d characters.", model.MinLength)
	RecommendUppercase = "Add at least one uppercase letter to your password."
	RecommendLowercase = "Add at least one lowercase letter to your password."
	RecommendDigit     = "Add at least one number to your password."
	RecommendSpecial   = "Add at least one special character to your password."
)

// Recommend returns one suggestion per rule password fails.
// A perfect score yields an empty slice without looking at password.
func Recommend(password string, score int, cs Charset) []string {
	recs := []string{}
	if score == model.MaxScore {
		return recs
	}

	if utf8.RuneCountInString(password) < model.MinLength {
		recs = append(recs, RecommendLength)
	}
	if !containsFunc(password, cs.isUpper) {
		recs = append(recs, RecommendUppercase)
	}
	if !containsFunc(password, cs.isLower) {
		recs = append(recs, RecommendLowercase)
	}
	if !containsFunc(password, cs.isDigit) {
		recs = append(recs, RecommendDigit)
	}
	if !containsFunc(password, isSpecial) {
		recs = append(recs, RecommendSpecial)
	}
	return recs
}

func containsFunc(s string, f func(rune) bool) bool {
	for _, r := range s {
		if f(r) {
			return true
		}
	}
	return false
}
