package model

import (
	"strings"
	"time"
)

// CrackTime is the estimated time to crack a password under one attacker scenario.
type CrackTime struct {
	// Scenario is the display name of the attacker model, for example
	// "Online_throttling_100_per_hour".
	Scenario string `json:"scenario"`

	// Display is the human-readable duration, for example "3 hours".
	Display string `json:"display"`
}

// CrackTimeReport holds the estimator output for one password.
type CrackTimeReport struct {
	// Unknown is true when the estimator produced no scenario data.
	Unknown bool `json:"unknown"`

	// Scenarios lists crack times in the order the estimator reported them.
	Scenarios []CrackTime `json:"scenarios,omitempty"`

	// GuessesLog10 is the log10 of the estimated number of guesses.
	GuessesLog10 float64 `json:"guesses_log10,omitempty"`

	// Entropy is the estimated entropy in bits.
	Entropy float64 `json:"entropy,omitempty"`

	// Score is the estimator's guessability score from 0 to 4.
	Score int `json:"score,omitempty"`
}

// String renders the crack times one scenario per line, or "Unknown".
func (c CrackTimeReport) String() string {
	if c.Unknown || len(c.Scenarios) == 0 {
		return "Unknown"
	}
	lines := make([]string, 0, len(c.Scenarios))
	for _, s := range c.Scenarios {
		lines = append(lines, s.Scenario+": "+s.Display)
	}
	return strings.Join(lines, "\n")
}

// EvaluationReport is the aggregate result of evaluating one password.
// A new report is created for every evaluation and never shared.
type EvaluationReport struct {
	// Password is the evaluated input. It is never serialized.
	Password string `json:"-"`

	// Index is the position of the password in a batch, starting at zero.
	Index int `json:"index"`

	// DateEvaluated is when the evaluation started.
	DateEvaluated time.Time `json:"date_evaluated"`

	// Checks holds the individual rule facts.
	Checks CheckResult `json:"checks"`

	// Score is the rule-based score in [0, MaxScore].
	Score int `json:"score"`

	// Band is the qualitative classification of Score.
	Band Band `json:"band"`

	// Message is the feedback sentence for Band.
	Message string `json:"message"`

	// Recommendations lists one suggestion per failed rule.
	// It is empty when Score equals MaxScore.
	Recommendations []string `json:"recommendations"`

	// CrackTimes holds the estimator output.
	CrackTimes CrackTimeReport `json:"crack_times"`

	// Blacklist is the blacklist verdict. VerdictDisabled when the check was off.
	Blacklist Verdict `json:"blacklist"`

	// PerformedSteps records the pipeline steps that ran, in order.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Error contains any error message if the evaluation was interrupted.
	Error string `json:"error,omitempty"`
}

// NewEvaluationReport creates a report for the given password.
func NewEvaluationReport(password string) *EvaluationReport {
	return &EvaluationReport{
		Password:        password,
		DateEvaluated:   time.Now(),
		Recommendations: []string{},
	}
}

// AddPerformedStep records that a step was executed.
func (r *EvaluationReport) AddPerformedStep(name string) {
	r.PerformedSteps = append(r.PerformedSteps, name)
}

// MaskedPassword returns one asterisk per rune of the password.
func (r *EvaluationReport) MaskedPassword() string {
	return strings.Repeat("*", len([]rune(r.Password)))
}
