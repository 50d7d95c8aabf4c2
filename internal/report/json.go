package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/leadscan/internal/model"
)

// JSONWriter outputs reports in JSON format for scripts and other tools.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	indent bool

	indentPrefix string
	indentString string

	// version is recorded in the output when set.
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

// WithPrettyPrint is WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithVersion records the leadscan version in the output.
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

// Write outputs the report wrapped with tool metadata.
func (w *JSONWriter) Write(report *model.ScanReport) (int, error) {
	doc := NewJSONReport(report)
	doc.Version = w.version
	return w.writeJSON(doc)
}

// writeJSON marshals v and writes it followed by a newline.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	var (
		data []byte
		err  error
	)
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

// JSONSummary holds the per-state counts of a report.
type JSONSummary struct {
	Total   int `json:"total"`
	Addable int `json:"addable"`
	Exists  int `json:"exists"`
	Unknown int `json:"unknown"`
	Saved   int `json:"saved"`
}

// JSONReport is the document written by JSONWriter.
type JSONReport struct {
	Version string            `json:"version,omitempty"`
	Report  *model.ScanReport `json:"report"`
	Summary JSONSummary       `json:"summary"`
}

// NewJSONReport wraps report with its summary counts.
func NewJSONReport(report *model.ScanReport) *JSONReport {
	return &JSONReport{
		Report: report,
		Summary: JSONSummary{
			Total:   len(report.Items),
			Addable: report.AddableCount(),
			Exists:  report.CountByState(model.CheckExists),
			Unknown: report.CountByState(model.CheckUnknown),
			Saved:   report.CountByState(model.CheckSaved),
		},
	}
}
