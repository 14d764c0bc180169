package report

import (
	"io"

	"github.com/nao1215/passcheck/internal/model"
)

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs a single evaluation report.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.EvaluationReport) (int, error)

	// WriteBatch outputs the reports of a batch followed by its summary.
	WriteBatch(reports []*model.EvaluationReport, summary *model.BatchSummary) (int, error)
}

// MultiWriter writes to multiple Writers in order and stops on the first error.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
func (m *MultiWriter) Write(report *model.EvaluationReport) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.Write(report)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// WriteBatch outputs the batch to all configured Writers.
func (m *MultiWriter) WriteBatch(reports []*model.EvaluationReport, summary *model.BatchSummary) (int, error) {
	var total int
	for _, w := range m.writers {
		n, err := w.WriteBatch(reports, summary)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer

	// showPassword prints the password instead of a mask.
	showPassword bool
}

func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// password returns the password as it should appear in the output.
func (b baseWriter) password(report *model.EvaluationReport) string {
	if b.showPassword {
		return report.Password
	}
	return report.MaskedPassword()
}
