package estimator

import (
	"math"

	"github.com/nbutton23/zxcvbn-go"
)

// DefaultMaxLength is the number of runes checked by default.
// zxcvbn gets slow on long inputs, so anything beyond this is cut off.
const DefaultMaxLength = 100

// attacker describes one guessing scenario and its rate in guesses per second.
type attacker struct {
	name string
	rate float64
}

var attackers = []attacker{
	{"online_throttling_100_per_hour", 100.0 / 3600.0},
	{"online_no_throttling_10_per_second", 10},
	{"offline_slow_hashing_1e4_per_second", 1e4},
	{"offline_fast_hashing_1e10_per_second", 1e10},
}

// Zxcvbn estimates crack times with the zxcvbn algorithm.
type Zxcvbn struct {
	userInputs []string
	maxLength  int
}

// ZxcvbnOption is a functional option for Zxcvbn.
type ZxcvbnOption func(*Zxcvbn)

// WithUserInputs adds words (names, company, e-mail) that an attacker would
// try first. Passwords built from them get a lower estimate.
func WithUserInputs(inputs ...string) ZxcvbnOption {
	return func(z *Zxcvbn) {
		z.userInputs = append(z.userInputs, inputs...)
	}
}

// WithMaxLength sets how many runes of the password are estimated.
// Values below 1 keep the default.
func WithMaxLength(n int) ZxcvbnOption {
	return func(z *Zxcvbn) {
		if n > 0 {
			z.maxLength = n
		}
	}
}

// NewZxcvbn creates a zxcvbn-backed Estimator.
func NewZxcvbn(opts ...ZxcvbnOption) *Zxcvbn {
	z := &Zxcvbn{
		userInputs: []string{},
		maxLength:  DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(z)
	}
	return z
}

// Estimate implements Estimator.
func (z *Zxcvbn) Estimate(password string) *Result {
	entropy := 0.0
	score := 0
	if password != "" {
		match := zxcvbn.PasswordStrength(z.truncate(password), z.userInputs)
		entropy = match.Entropy
		score = match.Score
	}
	return resultFromEntropy(entropy, score)
}

func (z *Zxcvbn) truncate(password string) string {
	runes := []rune(password)
	if len(runes) <= z.maxLength {
		return password
	}
	return string(runes[:z.maxLength])
}

func resultFromEntropy(entropy float64, score int) *Result {
	guesses := math.Pow(2, entropy)
	scenarios := make([]Scenario, 0, len(attackers))
	for _, a := range attackers {
		seconds := guesses / a.rate
		scenarios = append(scenarios, Scenario{
			Name:    a.name,
			Seconds: seconds,
			Display: DisplayTime(seconds),
		})
	}
	return &Result{
		Scenarios:    scenarios,
		GuessesLog10: entropy * math.Log10(2),
		Entropy:      entropy,
		Score:        score,
	}
}
