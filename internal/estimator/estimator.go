// Package estimator provides crack-time estimation for passwords.
//
// The Estimator interface is the only thing the evaluation pipeline depends
// on, so the zxcvbn-backed implementation can be swapped for another one or
// for Nop when estimation is turned off.
package estimator

// Scenario is the estimated crack time under one attacker model.
type Scenario struct {
	// Name is the machine name of the attacker model,
	// for example "offline_slow_hashing_1e4_per_second".
	Name string

	// Seconds is the estimated time to crack in seconds.
	Seconds float64

	// Display is the human-readable form of Seconds.
	Display string
}

// Result is the outcome of estimating one password.
type Result struct {
	// Scenarios are ordered from the slowest attacker to the fastest.
	Scenarios []Scenario

	// GuessesLog10 is the log10 of the estimated number of guesses.
	GuessesLog10 float64

	// Entropy is the estimated entropy in bits.
	Entropy float64

	// Score is the guessability score from 0 (too guessable) to 4 (very unguessable).
	Score int
}

// Estimator estimates how long a password would resist guessing.
// A nil Result, or one without scenarios, means the estimate is unknown.
type Estimator interface {
	Estimate(password string) *Result
}

// Nop is an Estimator that never knows the answer.
type Nop struct{}

// Estimate always returns nil.
func (Nop) Estimate(string) *Result {
	return nil
}
