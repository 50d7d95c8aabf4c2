package prompt

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestLinePrompter_Ask(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "answer", input: "SaaS\n", want: "SaaS"},
		{name: "trimmed", input: "  Agencies  \n", want: "Agencies"},
		{name: "no newline at eof", input: "Retail", want: "Retail"},
		{name: "empty input is cancel", input: "", want: ""},
		{name: "blank line is cancel", input: "\n", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			p := NewLinePrompter(strings.NewReader(tt.input), &out)
			got, err := p.Ask(context.Background(), "Enter the name of the new category:")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Ask() = %q, want %q", got, tt.want)
			}
			if !strings.Contains(out.String(), "Enter the name of the new category:") {
				t.Errorf("question not written: %q", out.String())
			}
		})
	}
}

func TestLinePrompter_AskCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLinePrompter(strings.NewReader("x\n"), nil).Ask(ctx, "q")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestLinePrompter_Confirm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		def   bool
		want  bool
	}{
		{name: "y", input: "y\n", want: true},
		{name: "YES", input: "YES\n", want: true},
		{name: "n", input: "n\n", def: true, want: false},
		{name: "other word", input: "maybe\n", want: false},
		{name: "empty uses default true", input: "\n", def: true, want: true},
		{name: "empty uses default false", input: "\n", def: false, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			p := NewLinePrompter(strings.NewReader(tt.input), &out)
			got, err := p.Confirm(context.Background(), "Add a@example.com?", tt.def)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Confirm() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLinePrompter_SequentialQuestions(t *testing.T) {
	t.Parallel()

	p := NewLinePrompter(strings.NewReader("y\nn\n"), nil)
	ctx := context.Background()

	first, _ := p.Confirm(ctx, "first?", false)
	second, _ := p.Confirm(ctx, "second?", false)
	if !first || second {
		t.Errorf("got (%v, %v), want (true, false)", first, second)
	}
}

func TestNew_NonTerminal(t *testing.T) {
	t.Parallel()

	if _, ok := New(nil, nil).(*LinePrompter); !ok {
		t.Error("expected line prompter without a terminal")
	}
}

func TestAlerter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	a := NewAlerter(&buf)
	a.Success("New category added successfully!")
	a.Failure("Failed to add the new category. Please try again.")

	out := buf.String()
	if !strings.Contains(out, "New category added successfully!") {
		t.Errorf("missing success message: %q", out)
	}
	if !strings.Contains(out, "Failed to add the new category. Please try again.") {
		t.Errorf("missing failure message: %q", out)
	}
}
