package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mgutz/ansi"

	"github.com/nao1215/passcheck/internal/model"
)

const ruleWidth = 40

// palette holds the color functions of the text output.
type palette struct {
	title          func(string) string
	heading        func(string) string
	message        func(string) string
	recommendation func(string) string
	crackTime      func(string) string
	warning        func(string) string
	ok             func(string) string
}

func plainPalette() palette {
	plain := func(s string) string { return s }
	return palette{plain, plain, plain, plain, plain, plain, plain}
}

func colorPalette() palette {
	return palette{
		title:          ansi.ColorFunc("cyan"),
		heading:        ansi.ColorFunc("green"),
		message:        ansi.ColorFunc("yellow"),
		recommendation: ansi.ColorFunc("blue"),
		crackTime:      ansi.ColorFunc("magenta"),
		warning:        ansi.ColorFunc("red"),
		ok:             ansi.ColorFunc("green"),
	}
}

// SimpleWriter outputs human-readable text reports.
type SimpleWriter struct {
	baseWriter

	colors palette

	// verbose adds the rule checklist and estimator details.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithColor enables ANSI colors.
func WithColor(enabled bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		if enabled {
			w.colors = colorPalette()
		} else {
			w.colors = plainPalette()
		}
	}
}

// WithShowPassword prints passwords in clear text instead of masking them.
func WithShowPassword(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showPassword = show
	}
}

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
// Colors are off by default.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		colors:     plainPalette(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs one report.
func (w *SimpleWriter) Write(report *model.EvaluationReport) (int, error) {
	var sb strings.Builder
	w.writeReport(&sb, report)
	return io.WriteString(w.output, sb.String())
}

// WriteBatch outputs every report followed by the batch summary.
func (w *SimpleWriter) WriteBatch(reports []*model.EvaluationReport, summary *model.BatchSummary) (int, error) {
	var sb strings.Builder
	for _, r := range reports {
		if r != nil {
			w.writeReport(&sb, r)
		}
	}
	if summary != nil {
		w.writeSummary(&sb, summary)
	}
	return io.WriteString(w.output, sb.String())
}

func (w *SimpleWriter) writeReport(sb *strings.Builder, report *model.EvaluationReport) {
	c := w.colors

	sb.WriteString("\n" + strings.Repeat("=", ruleWidth) + "\n")
	sb.WriteString(c.title("Password Strength Evaluation") + "\n")
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n\n")
	sb.WriteString("Password: " + w.password(report) + "\n\n")

	sb.WriteString(c.heading(fmt.Sprintf("Password strength: %d/%d", report.Score, model.MaxScore)) + "\n")
	sb.WriteString(c.message(report.Message) + "\n\n")

	if w.verbose {
		w.writeChecks(sb, report.Checks)
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString(c.heading("Recommendations:") + "\n")
		for _, rec := range report.Recommendations {
			sb.WriteString(c.recommendation("- "+rec) + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(c.heading("Password Cracking Time Estimation: ") + "\n")
	sb.WriteString(c.crackTime(report.CrackTimes.String()) + "\n")
	if w.verbose && !report.CrackTimes.Unknown {
		sb.WriteString(fmt.Sprintf("Guessability: %d/4, entropy %.1f bits, about 10^%.1f guesses\n",
			report.CrackTimes.Score, report.CrackTimes.Entropy, report.CrackTimes.GuessesLog10))
	}
	sb.WriteString("\n")

	switch report.Blacklist {
	case model.VerdictDisabled:
		sb.WriteString(c.heading("Password Blacklisting: Disabled") + "\n")
	case model.VerdictBlacklisted, model.VerdictUnavailable:
		sb.WriteString(c.heading("Password Blacklisting: ") + "\n")
		sb.WriteString(c.warning(report.Blacklist.Message()) + "\n")
	default:
		sb.WriteString(c.heading("Password Blacklisting: ") + "\n")
		sb.WriteString(c.ok(report.Blacklist.Message()) + "\n")
	}

	if report.Error != "" {
		sb.WriteString(c.warning("Error: "+report.Error) + "\n")
	}
	sb.WriteString("\n" + strings.Repeat("=", ruleWidth) + "\n")
}

func (w *SimpleWriter) writeChecks(sb *strings.Builder, checks model.CheckResult) {
	sb.WriteString(w.colors.heading("Checks:") + "\n")
	rows := []struct {
		label string
		ok    bool
	}{
		{fmt.Sprintf("At least %d characters", model.MinLength), checks.HasMinLength},
		{"Uppercase letter", checks.HasUppercase},
		{"Lowercase letter", checks.HasLowercase},
		{"Number", checks.HasDigit},
		{"Special character", checks.HasSpecialChar},
	}
	for _, row := range rows {
		mark := "[ ]"
		if row.ok {
			mark = "[x]"
		}
		sb.WriteString("  " + mark + " " + row.label + "\n")
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeSummary(sb *strings.Builder, s *model.BatchSummary) {
	c := w.colors

	sb.WriteString("\n" + strings.Repeat("-", ruleWidth) + "\n")
	sb.WriteString(c.title("SUMMARY") + "\n")
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n\n")
	sb.WriteString(fmt.Sprintf("  Passwords:     %s\n", humanize.Comma(int64(s.Total))))
	sb.WriteString(fmt.Sprintf("  STRONG:        %s\n", humanize.Comma(int64(s.StrongCount))))
	sb.WriteString(fmt.Sprintf("  MEDIUM:        %s\n", humanize.Comma(int64(s.MediumCount))))
	sb.WriteString(fmt.Sprintf("  WEAK:          %s\n", humanize.Comma(int64(s.WeakCount))))
	sb.WriteString(fmt.Sprintf("  Average score: %.2f/%d\n", s.AverageScore, model.MaxScore))
	if s.CheckedCount > 0 {
		sb.WriteString(fmt.Sprintf("  Checked:       %s\n", humanize.Comma(int64(s.CheckedCount))))
	}
	if s.BlacklistedCount > 0 {
		sb.WriteString(c.warning(fmt.Sprintf("  Blacklisted:   %s", humanize.Comma(int64(s.BlacklistedCount)))) + "\n")
	}
	if s.UnavailableCount > 0 {
		sb.WriteString(c.warning(fmt.Sprintf("  Unavailable:   %s", humanize.Comma(int64(s.UnavailableCount)))) + "\n")
	}
	if s.FailedCount > 0 {
		sb.WriteString(c.warning(fmt.Sprintf("  Failed:        %s", humanize.Comma(int64(s.FailedCount)))) + "\n")
	}
	sb.WriteString("\n")
}
