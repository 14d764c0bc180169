package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/nao1215/passcheck/internal/model"
)

// createTestReport creates a medium-strength report with sample data.
func createTestReport() *model.EvaluationReport {
	r := model.NewEvaluationReport("Secret123x")
	r.Checks = model.CheckResult{HasUppercase: true, HasLowercase: true, HasDigit: true}
	r.Score = 3
	r.Band = model.BandMedium
	r.Message = model.MessageMedium
	r.Recommendations = []string{
		"Increase the length of your password to at least 12 characters.",
		"Add at least one special character to your password.",
	}
	r.CrackTimes = model.CrackTimeReport{
		Scenarios: []model.CrackTime{
			{Scenario: "Online_throttling_100_per_hour", Display: "centuries"},
			{Scenario: "Offline_fast_hashing_1e10_per_second", Display: "2 minutes"},
		},
		Entropy:      40.2,
		GuessesLog10: 12.1,
		Score:        3,
	}
	r.Blacklist = model.VerdictNotBlacklisted
	return r
}

// createStrongReport creates a strong report with the blacklist disabled.
func createStrongReport() *model.EvaluationReport {
	r := model.NewEvaluationReport("Aa1!aaaaaaaa")
	r.Index = 1
	r.Score = 5
	r.Band = model.BandStrong
	r.Message = model.MessageStrong
	r.CrackTimes = model.CrackTimeReport{Unknown: true}
	return r
}

func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes all sections", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewSimpleWriter(&buf).Write(createTestReport())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
		}

		out := buf.String()
		for _, want := range []string{
			"Password Strength Evaluation",
			"Password: **********",
			"Password strength: 3/5",
			model.MessageMedium,
			"Recommendations:",
			"- Add at least one special character to your password.",
			"Password Cracking Time Estimation:",
			"Online_throttling_100_per_hour: centuries",
			"Password Blacklisting:",
			"Password is not blacklisted.",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("output missing %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, "Secret123x") {
			t.Error("password should be masked")
		}
		if strings.Contains(out, "\033[") {
			t.Error("colors should be off by default")
		}
	})

	t.Run("shows password when asked", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithShowPassword(true)).Write(createTestReport()); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "Password: Secret123x") {
			t.Errorf("password not shown:\n%s", buf.String())
		}
	})

	t.Run("strong report without blacklist", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(createStrongReport()); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		if strings.Contains(out, "Recommendations:") {
			t.Error("strong report should have no recommendations section")
		}
		if !strings.Contains(out, "Password Blacklisting: Disabled") {
			t.Error("disabled blacklist marker missing")
		}
		if !strings.Contains(out, "Unknown") {
			t.Error("unknown crack times should render as Unknown")
		}
	})

	t.Run("blacklisted and unavailable", func(t *testing.T) {
		t.Parallel()

		for _, v := range []model.Verdict{model.VerdictBlacklisted, model.VerdictUnavailable} {
			r := createTestReport()
			r.Blacklist = v

			var buf bytes.Buffer
			if _, err := NewSimpleWriter(&buf).Write(r); err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(buf.String(), v.Message()) {
				t.Errorf("output missing %q", v.Message())
			}
		}
	})

	t.Run("colors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithColor(true)).Write(createTestReport()); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "\033[") {
			t.Error("expected ANSI escape sequences")
		}
	})

	t.Run("verbose shows checks", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithVerbose(true)).Write(createTestReport()); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		for _, want := range []string{"[ ] At least 12 characters", "[x] Uppercase letter", "Guessability: 3/4"} {
			if !strings.Contains(out, want) {
				t.Errorf("verbose output missing %q", want)
			}
		}
	})
}

func TestSimpleWriterBatch(t *testing.T) {
	t.Parallel()

	reports := []*model.EvaluationReport{createTestReport(), createStrongReport(), nil}
	summary := model.Summarize(reports)

	var buf bytes.Buffer
	if _, err := NewSimpleWriter(&buf).WriteBatch(reports, summary); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Count(out, "Password Strength Evaluation") != 2 {
		t.Errorf("expected two reports:\n%s", out)
	}
	for _, want := range []string{"SUMMARY", "Passwords:     2", "STRONG:        1", "Average score: 4.00/5", "Checked:       1"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("single report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatal(err)
		}

		var decoded map[string]any
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if decoded["band"] != "medium" || decoded["blacklist"] != "not_blacklisted" {
			t.Errorf("unexpected JSON: %s", buf.String())
		}
		if decoded["score"] != float64(3) {
			t.Errorf("score = %v", decoded["score"])
		}
		if strings.Contains(buf.String(), "Secret123x") {
			t.Error("password must not appear in JSON")
		}
		if !strings.HasSuffix(buf.String(), "\n") {
			t.Error("output should end with a newline")
		}
	})

	t.Run("pretty print", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).Write(createTestReport()); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "\n  \"score\": 3") {
			t.Errorf("expected indented output:\n%s", buf.String())
		}
	})

	t.Run("batch", func(t *testing.T) {
		t.Parallel()

		reports := []*model.EvaluationReport{createTestReport(), createStrongReport()}
		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithVersion("v1.2.3")).WriteBatch(reports, model.Summarize(reports)); err != nil {
			t.Fatal(err)
		}

		var decoded BatchJSONReport
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if decoded.Version != "v1.2.3" {
			t.Errorf("Version = %q", decoded.Version)
		}
		if len(decoded.Reports) != 2 || decoded.Reports[1].Band != model.BandStrong {
			t.Errorf("Reports = %+v", decoded.Reports)
		}
		if decoded.Summary == nil || decoded.Summary.Total != 2 {
			t.Errorf("Summary = %+v", decoded.Summary)
		}
	})

	t.Run("empty batch has empty array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WriteBatch(nil, nil); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), `"reports":[]`) {
			t.Errorf("unexpected JSON: %s", buf.String())
		}
	})
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("single report", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(createTestReport()); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		for _, want := range []string{
			"# Password Evaluation",
			"| Score",
			"3/5",
			"MEDIUM",
			"✅ Not blacklisted",
			"[!WARNING]",
			"**Recommendations**",
			"Online_throttling_100_per_hour",
			"`**********`",
		} {
			if !strings.Contains(out, want) {
				t.Errorf("markdown missing %q:\n%s", want, out)
			}
		}
		if strings.Contains(out, "Secret123x") {
			t.Error("password should be masked")
		}
	})

	t.Run("shows password escaped", func(t *testing.T) {
		t.Parallel()

		r := createTestReport()
		r.Password = "a|b`c"
		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf, WithMarkdownShowPassword(true)).Write(r); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "`a\\|b'c`") {
			t.Errorf("password not escaped:\n%s", buf.String())
		}
	})

	t.Run("batch with pie chart", func(t *testing.T) {
		t.Parallel()

		blacklisted := createTestReport()
		blacklisted.Blacklist = model.VerdictBlacklisted
		reports := []*model.EvaluationReport{blacklisted, createStrongReport()}

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).WriteBatch(reports, model.Summarize(reports)); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		for _, want := range []string{"## Summary", "```mermaid", "pie", "Password Strength Distribution", "### #1", "### #2", "[!CAUTION]", "Unknown", "Checked against the blacklist: 1 of 2"} {
			if !strings.Contains(out, want) {
				t.Errorf("markdown missing %q:\n%s", want, out)
			}
		}
	})
}

// failingWriter always returns an error.
type failingWriter struct{}

func (failingWriter) Write(*model.EvaluationReport) (int, error) {
	return 0, errors.New("write failed")
}

func (failingWriter) WriteBatch([]*model.EvaluationReport, *model.BatchSummary) (int, error) {
	return 0, errors.New("write failed")
}

func TestMultiWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes to all", func(t *testing.T) {
		t.Parallel()

		var text, js bytes.Buffer
		mw := NewMultiWriter(NewSimpleWriter(&text), NewJSONWriter(&js))
		n, err := mw.Write(createTestReport())
		if err != nil {
			t.Fatal(err)
		}
		if n != text.Len()+js.Len() {
			t.Errorf("total %d, want %d", n, text.Len()+js.Len())
		}

		reports := []*model.EvaluationReport{createStrongReport()}
		if _, err := mw.WriteBatch(reports, model.Summarize(reports)); err != nil {
			t.Fatal(err)
		}
	})

	t.Run("stops on first error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		mw := NewMultiWriter(failingWriter{}, NewSimpleWriter(&buf))
		if _, err := mw.Write(createTestReport()); err == nil {
			t.Error("expected error")
		}
		if _, err := mw.WriteBatch(nil, nil); err == nil {
			t.Error("expected error")
		}
		if buf.Len() != 0 {
			t.Error("writers after the failing one should not run")
		}
	})
}

func TestEscapeCode(t *testing.T) {
	t.Parallel()

	if got := escapeCode("a`b|c"); got != "a'b\\|c" {
		t.Errorf("escapeCode() = %q", got)
	}
}
