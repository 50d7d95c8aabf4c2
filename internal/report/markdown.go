package report

import (
	"io"
	"strconv"

	"github.com/nao1215/leadscan/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// MarkdownWriter outputs reports in Markdown format.
// It uses github-flavored alerts and a mermaid chart of check states.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.ScanReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeEmails(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report title and the scan properties table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.ScanReport) {
	md.H1("Leadscan Report")
	md.PlainText("")

	domainText := "-"
	if report.HasDomain {
		domainText = "`" + report.Domain + "`"
	}
	rows := [][]string{
		{"Page", report.PageURL},
		{"Domain", domainText},
	}
	if report.Page != nil && report.Page.Title != "" {
		rows = append(rows, []string{"Title", report.Page.Title})
	}
	rows = append(rows,
		[]string{"Scan Date", report.DateScanned.Format("2006-01-02 15:04:05 MST")},
		[]string{"Status", statusText(report)},
	)

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	if report.FetchError != "" {
		md.Warningf("The page could not be downloaded: %s", report.FetchError)
		md.PlainText("")
	}
}

// writeEmails writes the email table, state chart and summary alert.
func (w *MarkdownWriter) writeEmails(md *markdown.Markdown, report *model.ScanReport) {
	md.H2("Email Addresses")
	md.PlainText("")

	if report.NoneFound || len(report.Items) == 0 {
		md.Note(NoEmailsMessage)
		md.PlainText("")
		return
	}

	rows := make([][]string, len(report.Items))
	for i, item := range report.Items {
		addable := "no"
		if item.Addable {
			addable = "yes"
		}
		rows[i] = []string{"`" + item.Email + "`", string(item.State), addable}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Email", "State", "Addable"},
		Rows:   rows,
	})
	md.PlainText("")

	w.writePieChart(md, report)
	w.writeAlert(md, report)
}

// writePieChart writes a mermaid pie chart of check states.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.ScanReport) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Existence Check Results"),
		piechart.WithShowData(true),
	)

	states := []struct {
		label string
		state model.CheckState
	}{
		{"New", model.CheckNew},
		{"Exists", model.CheckExists},
		{"Unknown", model.CheckUnknown},
		{"Saved", model.CheckSaved},
		{"Pending", model.CheckPending},
	}
	for _, s := range states {
		if n := report.CountByState(s.state); n > 0 {
			chart.LabelAndIntValue(s.label, uint64(n))
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert summarizes what the operator can still do.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.ScanReport) {
	unknown := report.CountByState(model.CheckUnknown)
	addable := report.AddableCount()

	switch {
	case unknown > 0:
		md.Warningf("%d address(es) could not be checked against the lead service.", unknown)
	case addable > 0:
		md.Tip(strconv.Itoa(addable) + " new address(es) can be added to the list.")
	default:
		md.Importantf("All %d address(es) are already recorded.", len(report.Items))
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by [leadscan](https://github.com/nao1215/leadscan)*")
}
