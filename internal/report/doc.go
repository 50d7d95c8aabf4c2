// Package report renders scan results.
//
// Three formats are available:
//   - SimpleWriter: plain text for the terminal
//   - JSONWriter: structured JSON for scripts
//   - MarkdownWriter: a Markdown document for sharing
//
// Writers implement the Writer interface and can be combined with
// MultiWriter.
package report
