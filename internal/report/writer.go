package report

import (
	"io"

	"github.com/nao1215/leadscan/internal/model"
)

// Writer defines the interface for report output.
// Implementations write scan results in various formats.
type Writer interface {
	// Write outputs the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.ScanReport) (int, error)
}

// MultiWriter writes to multiple Writers in order.
// It is used to print to the terminal and save a file in one pass.
type MultiWriter struct {
	writers []Writer
}

// NewMultiWriter creates a Writer that writes to all provided Writers.
func NewMultiWriter(writers ...Writer) *MultiWriter {
	return &MultiWriter{writers: writers}
}

// Write outputs the report to all configured Writers.
// Returns the total bytes written across all writers.
// Stops on first error encountered.
func (m *MultiWriter) Write(report *model.ScanReport) (int, error) {
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

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// stateMarker returns the bracketed marker shown next to an email.
func stateMarker(item model.EmailItem) string {
	switch item.State {
	case model.CheckExists:
		return "[exists]"
	case model.CheckSaved:
		return "[saved]"
	case model.CheckUnknown:
		return "[unknown]"
	case model.CheckPending:
		if item.Addable {
			return "[add]"
		}
		return "[pending]"
	default:
		if item.Addable {
			return "[add]"
		}
		return "[-]"
	}
}

// statusText summarizes how the scan ended.
func statusText(report *model.ScanReport) string {
	switch {
	case report.TimedOut:
		return "TIMED OUT (partial results)"
	case report.FetchError != "":
		return "FETCH FAILED - " + report.FetchError
	case report.ErrorMessage != "":
		return "ERROR - " + report.ErrorMessage
	default:
		return "Complete"
	}
}
