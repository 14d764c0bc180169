package estimator

import (
	"strings"
	"testing"
)

func TestDisplayTime(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		seconds  float64
		expected string
	}{
		{0, "less than a second"},
		{0.99, "less than a second"},
		{1, "1 second"},
		{1.4, "1 second"},
		{2, "2 seconds"},
		{59, "59 seconds"},
		{60, "1 minute"},
		{150, "2 minutes"},
		{3600, "1 hour"},
		{7200, "2 hours"},
		{86400, "1 day"},
		{86400 * 31, "1 month"},
		{86400 * 31 * 12, "1 year"},
		{86400 * 31 * 12 * 5, "5 years"},
		{86400 * 31 * 12 * 100, "centuries"},
		{1e30, "centuries"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if got := DisplayTime(tc.seconds); got != tc.expected {
				t.Errorf("DisplayTime(%v) = %q, want %q", tc.seconds, got, tc.expected)
			}
		})
	}
}

func TestNop(t *testing.T) {
	t.Parallel()

	var e Estimator = Nop{}
	if got := e.Estimate("anything"); got != nil {
		t.Errorf("Nop.Estimate() = %+v, want nil", got)
	}
}

func TestZxcvbnEstimate(t *testing.T) {
	t.Parallel()

	z := NewZxcvbn()

	t.Run("scenario order", func(t *testing.T) {
		t.Parallel()
		r := z.Estimate("correct horse battery staple")
		if r == nil {
			t.Fatal("Estimate() returned nil")
		}
		want := []string{
			"online_throttling_100_per_hour",
			"online_no_throttling_10_per_second",
			"offline_slow_hashing_1e4_per_second",
			"offline_fast_hashing_1e10_per_second",
		}
		if len(r.Scenarios) != len(want) {
			t.Fatalf("got %d scenarios, want %d", len(r.Scenarios), len(want))
		}
		for i, name := range want {
			if r.Scenarios[i].Name != name {
				t.Errorf("scenario %d = %q, want %q", i, r.Scenarios[i].Name, name)
			}
			if r.Scenarios[i].Display == "" {
				t.Errorf("scenario %q has empty display", name)
			}
		}
		for i := 1; i < len(r.Scenarios); i++ {
			if r.Scenarios[i].Seconds > r.Scenarios[i-1].Seconds {
				t.Errorf("faster attacker %q needs more time than %q", r.Scenarios[i].Name, r.Scenarios[i-1].Name)
			}
		}
	})

	t.Run("empty password", func(t *testing.T) {
		t.Parallel()
		r := z.Estimate("")
		if r == nil {
			t.Fatal("Estimate(\"\") returned nil")
		}
		if r.Entropy != 0 || r.Score != 0 {
			t.Errorf("empty password entropy=%v score=%d", r.Entropy, r.Score)
		}
		if got := r.Scenarios[0].Display; got != "36 seconds" {
			t.Errorf("throttled online display = %q, want 36 seconds", got)
		}
		if got := r.Scenarios[3].Display; got != "less than a second" {
			t.Errorf("fast offline display = %q, want less than a second", got)
		}
	})

	t.Run("stronger password has more entropy", func(t *testing.T) {
		t.Parallel()
		weak := z.Estimate("password")
		strong := z.Estimate("q8#Vz!tR2@mLw7^xP")
		if strong.Entropy <= weak.Entropy {
			t.Errorf("entropy of strong (%v) <= weak (%v)", strong.Entropy, weak.Entropy)
		}
		if strong.Score < weak.Score {
			t.Errorf("score of strong (%d) < weak (%d)", strong.Score, weak.Score)
		}
		if strong.GuessesLog10 <= weak.GuessesLog10 {
			t.Errorf("guesses of strong (%v) <= weak (%v)", strong.GuessesLog10, weak.GuessesLog10)
		}
	})
}

func TestZxcvbnTruncate(t *testing.T) {
	t.Parallel()

	z := NewZxcvbn(WithMaxLength(5))
	if got := z.truncate("héllo world"); got != "héllo" {
		t.Errorf("truncate() = %q, want %q", got, "héllo")
	}
	if got := z.truncate("abc"); got != "abc" {
		t.Errorf("truncate() = %q, want %q", got, "abc")
	}

	long := strings.Repeat("x9!", 1000)
	if r := NewZxcvbn().Estimate(long); r == nil || len(r.Scenarios) == 0 {
		t.Error("long password should still be estimated")
	}
}

func TestZxcvbnOptions(t *testing.T) {
	t.Parallel()

	z := NewZxcvbn(WithUserInputs("alice", "acme"), WithMaxLength(0))
	if z.maxLength != DefaultMaxLength {
		t.Errorf("maxLength = %d, want default %d", z.maxLength, DefaultMaxLength)
	}
	if len(z.userInputs) != 2 {
		t.Errorf("userInputs = %v", z.userInputs)
	}

	plain := NewZxcvbn().Estimate("alice2024acme")
	personal := z.Estimate("alice2024acme")
	if personal.Entropy > plain.Entropy {
		t.Errorf("user inputs should not raise entropy: %v > %v", personal.Entropy, plain.Entropy)
	}
}
