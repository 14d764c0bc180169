package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/passcheck/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
type MarkdownWriter struct {
	baseWriter
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithMarkdownShowPassword prints passwords in clear text instead of masking them.
func WithMarkdownShowPassword(show bool) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.showPassword = show
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs one report.
func (w *MarkdownWriter) Write(report *model.EvaluationReport) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("Password Evaluation")
	md.PlainText("")
	w.writeReport(md, report, false)
	w.writeFooter(md)
	return len(md.String()), md.Build()
}

// WriteBatch outputs the summary with a band chart, then every report.
func (w *MarkdownWriter) WriteBatch(reports []*model.EvaluationReport, summary *model.BatchSummary) (int, error) {
	md := markdown.NewMarkdown(w.output)
	md.H1("Password Evaluation")
	md.PlainText("")

	if summary != nil {
		w.writeSummary(md, summary)
	}

	md.H2("Passwords")
	md.PlainText("")
	for _, r := range reports {
		if r != nil {
			w.writeReport(md, r, true)
		}
	}
	w.writeFooter(md)
	return len(md.String()), md.Build()
}

// writeReport writes the sections of one report. In a batch the report gets
// its own third-level heading.
func (w *MarkdownWriter) writeReport(md *markdown.Markdown, report *model.EvaluationReport, inBatch bool) {
	if inBatch {
		md.H3(fmt.Sprintf("#%d", report.Index+1))
		md.PlainText("")
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Password", "`" + escapeCode(w.password(report)) + "`"},
			{"Score", fmt.Sprintf("%d/%d", report.Score, model.MaxScore)},
			{"Strength", report.Band.String()},
			{"Blacklist", blacklistText(report.Blacklist)},
			{"Evaluated", report.DateEvaluated.Format("2006-01-02 15:04:05 MST")},
		},
	})
	md.PlainText("")

	switch report.Band {
	case model.BandStrong:
		md.Tip(report.Message)
	case model.BandMedium:
		md.Warningf("%s", report.Message)
	default:
		md.Cautionf("%s", report.Message)
	}
	md.PlainText("")

	if report.Blacklist == model.VerdictBlacklisted {
		md.Cautionf("%s", report.Blacklist.Message())
		md.PlainText("")
	}

	if len(report.Recommendations) > 0 {
		md.PlainText("**Recommendations**")
		md.PlainText("")
		md.BulletList(report.Recommendations...)
		md.PlainText("")
	}

	md.PlainText("**Crack time estimation**")
	md.PlainText("")
	if report.CrackTimes.Unknown || len(report.CrackTimes.Scenarios) == 0 {
		md.PlainText("Unknown")
		md.PlainText("")
	} else {
		rows := make([][]string, 0, len(report.CrackTimes.Scenarios))
		for _, s := range report.CrackTimes.Scenarios {
			rows = append(rows, []string{s.Scenario, s.Display})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Scenario", "Time"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	if report.Error != "" {
		md.Note("Evaluation interrupted: " + report.Error)
		md.PlainText("")
	}
}

// blacklistText returns the table cell for a verdict.
func blacklistText(v model.Verdict) string {
	switch v {
	case model.VerdictBlacklisted:
		return "❌ Blacklisted"
	case model.VerdictNotBlacklisted:
		return "✅ Not blacklisted"
	case model.VerdictUnavailable:
		return "⚠️ Unavailable"
	default:
		return "Disabled"
	}
}

func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, s *model.BatchSummary) {
	md.H2("Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Band", "Count"},
		Rows: [][]string{
			{"🟢 Strong", strconv.Itoa(s.StrongCount)},
			{"🟡 Medium", strconv.Itoa(s.MediumCount)},
			{"🔴 Weak", strconv.Itoa(s.WeakCount)},
			{"**Total**", "**" + strconv.Itoa(s.Total) + "**"},
		},
	})
	md.PlainText("")
	md.PlainTextf("Average score: %.2f/%d", s.AverageScore, model.MaxScore)
	md.PlainText("")
	if s.CheckedCount > 0 {
		md.PlainTextf("Checked against the blacklist: %d of %d", s.CheckedCount, s.Total)
		md.PlainText("")
	}

	if s.Total > 0 {
		w.writePieChart(md, s)
	}

	if s.BlacklistedCount > 0 {
		md.Cautionf("%d password(s) found on the blacklist.", s.BlacklistedCount)
		md.PlainText("")
	}
	if s.UnavailableCount > 0 {
		md.Warningf("The blacklist could not be read for %d password(s).", s.UnavailableCount)
		md.PlainText("")
	}
}

// writePieChart writes a mermaid pie chart of the band distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, s *model.BatchSummary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Password Strength Distribution"),
		piechart.WithShowData(true),
	)
	if s.StrongCount > 0 {
		chart.LabelAndIntValue("Strong", uint64(s.StrongCount))
	}
	if s.MediumCount > 0 {
		chart.LabelAndIntValue("Medium", uint64(s.MediumCount))
	}
	if s.WeakCount > 0 {
		chart.LabelAndIntValue("Weak", uint64(s.WeakCount))
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [passcheck](https://github.com/nao1215/passcheck)*")
}

// escapeCode keeps a value from closing an inline code span or a table cell.
func escapeCode(s string) string {
	return strings.NewReplacer("`", "'", "|", "\\|").Replace(s)
}
