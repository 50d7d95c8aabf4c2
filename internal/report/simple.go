package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/leadscan/internal/model"
)

// NoEmailsMessage is printed instead of an empty list.
const NoEmailsMessage = "No email addresses found on this page."

// SimpleWriter outputs human-readable text reports for the terminal.
// Each email is printed with a marker for its add-control state.
type SimpleWriter struct {
	baseWriter

	// verbose adds the raw match count and the pipeline steps.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with additional details.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the report in human-readable format.
func (w *SimpleWriter) Write(report *model.ScanReport) (int, error) {
	var sb strings.Builder

	w.writeHeader(&sb, report)
	w.writeEmails(&sb, report)
	w.writeFooter(&sb, report)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the page, domain and status lines.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.ScanReport) {
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	sb.WriteString("LEADSCAN REPORT\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")

	fmt.Fprintf(sb, "Page:       %s\n", report.PageURL)
	if report.HasDomain {
		fmt.Fprintf(sb, "Domain:     %s\n", report.Domain)
	} else {
		sb.WriteString("Domain:     (unavailable)\n")
	}
	if report.Page != nil && report.Page.Title != "" {
		fmt.Fprintf(sb, "Title:      %s\n", report.Page.Title)
	}
	fmt.Fprintf(sb, "Scan Date:  %s\n", report.DateScanned.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(sb, "Status:     %s\n", statusText(report))
	sb.WriteString("\n")
}

// writeEmails writes one line per email, or the empty-state message.
func (w *SimpleWriter) writeEmails(sb *strings.Builder, report *model.ScanReport) {
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	sb.WriteString("EMAIL ADDRESSES\n")
	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n\n")

	if report.NoneFound || len(report.Items) == 0 {
		sb.WriteString("  ")
		sb.WriteString(NoEmailsMessage)
		sb.WriteString("\n\n")
		return
	}

	for _, item := range report.Items {
		fmt.Fprintf(sb, "  %-10s %s\n", stateMarker(item), item.Email)
		if w.verbose && item.CheckError != "" {
			fmt.Fprintf(sb, "             check failed: %s\n", item.CheckError)
		}
	}
	sb.WriteString("\n")
}

// writeFooter writes counts and, when verbose, pipeline details.
func (w *SimpleWriter) writeFooter(sb *strings.Builder, report *model.ScanReport) {
	fmt.Fprintf(sb, "Addable: %d  Exists: %d  Unknown: %d  Saved: %d\n",
		report.AddableCount(),
		report.CountByState(model.CheckExists),
		report.CountByState(model.CheckUnknown),
		report.CountByState(model.CheckSaved),
	)

	if w.verbose {
		matches := 0
		if report.Matches != nil {
			matches = report.Matches.Len()
		}
		fmt.Fprintf(sb, "Raw matches: %d\n", matches)
		if len(report.PerformedSteps) > 0 {
			fmt.Fprintf(sb, "Steps: %s\n", strings.Join(report.PerformedSteps, ", "))
		}
	}
}
