package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/passcheck/internal/model"
)

// JSONWriter outputs reports in JSON format. The password is never included.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	indentPrefix string
	indentString string

	// version is recorded in batch output.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with two-space indentation.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithVersion records the program version in batch output.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs one report as a JSON object.
func (w *JSONWriter) Write(report *model.EvaluationReport) (int, error) {
	return w.writeJSON(report)
}

// BatchJSONReport is the JSON document written for a batch.
type BatchJSONReport struct {
	// Version is the passcheck version that generated this report.
	Version string `json:"version,omitempty"`

	// Reports are the individual evaluations in input order.
	Reports []*model.EvaluationReport `json:"reports"`

	// Summary aggregates the reports.
	Summary *model.BatchSummary `json:"summary,omitempty"`
}

// WriteBatch outputs the batch as a single JSON document.
func (w *JSONWriter) WriteBatch(reports []*model.EvaluationReport, summary *model.BatchSummary) (int, error) {
	if reports == nil {
		reports = []*model.EvaluationReport{}
	}
	return w.writeJSON(&BatchJSONReport{
		Version: w.version,
		Reports: reports,
		Summary: summary,
	})
}

func (w *JSONWriter) writeJSON(v any) (int, error) {
	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}
	if err != nil {
		return 0, err
	}

	data = append(data, '\n')
	return w.output.Write(data)
}
