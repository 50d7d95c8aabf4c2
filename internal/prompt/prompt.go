// Package prompt asks the operator questions and shows blocking notices.
//
// On a terminal the questions are rendered with pterm's interactive
// printers. When stdin is a pipe or a file, a plain line reader is used so
// leadscan stays scriptable.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// Prompter asks the operator for input.
type Prompter interface {
	// Ask returns the trimmed answer. An empty string means the operator
	// cancelled.
	Ask(ctx context.Context, question string) (string, error)

	// Confirm asks a yes/no question. def is returned for an empty answer.
	Confirm(ctx context.Context, question string, def bool) (bool, error)
}

// Alerter shows a notice the operator must see.
type Alerter interface {
	Success(msg string)
	Failure(msg string)
}

// New returns a terminal prompter when in is a terminal and a line
// prompter otherwise.
func New(in *os.File, out io.Writer) Prompter {
	if in != nil && term.IsTerminal(int(in.Fd())) {
		return &TerminalPrompter{}
	}
	return NewLinePrompter(in, out)
}

// LinePrompter reads one line per question.
type LinePrompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLinePrompter reads answers from in and writes questions to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	if in == nil {
		in = strings.NewReader("")
	}
	if out == nil {
		out = io.Discard
	}
	return &LinePrompter{in: bufio.NewReader(in), out: out}
}

// Ask implements Prompter. End of input counts as cancel.
func (p *LinePrompter) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	fmt.Fprintf(p.out, "%s ", question)

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Confirm implements Prompter. Only "y" and "yes" (any case) are yes.
func (p *LinePrompter) Confirm(ctx context.Context, question string, def bool) (bool, error) {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}

	answer, err := p.Ask(ctx, question+" "+hint)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "":
		return def, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// TerminalPrompter uses pterm interactive printers.
type TerminalPrompter struct{}

// Ask implements Prompter.
func (p *TerminalPrompter) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	answer, err := pterm.DefaultInteractiveTextInput.WithDefaultText(question).Show()
	if err != nil {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(answer), nil
}

// Confirm implements Prompter.
func (p *TerminalPrompter) Confirm(ctx context.Context, question string, def bool) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	ok, err := pterm.DefaultInteractiveConfirm.
		WithDefaultText(question).
		WithDefaultValue(def).
		Show()
	if err != nil {
		return false, fmt.Errorf("failed to read answer: %w", err)
	}
	return ok, nil
}

// PrinterAlerter prints notices with pterm prefix printers.
type PrinterAlerter struct {
	success *pterm.PrefixPrinter
	failure *pterm.PrefixPrinter
}

// NewAlerter writes notices to w.
func NewAlerter(w io.Writer) *PrinterAlerter {
	if w == nil {
		w = os.Stderr
	}
	return &PrinterAlerter{
		success: pterm.Success.WithWriter(w),
		failure: pterm.Error.WithWriter(w),
	}
}

// Success implements Alerter.
func (a *PrinterAlerter) Success(msg string) {
	a.success.Println(msg)
}

// Failure implements Alerter.
func (a *PrinterAlerter) Failure(msg string) {
	a.failure.Println(msg)
}
