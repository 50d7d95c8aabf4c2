package domain

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestExtract(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		rawURL string
		want   Name
		wantOK bool
	}{
		{name: "leading www", rawURL: "https://www.example.com/page", want: "example.com", wantOK: true},
		{name: "no www", rawURL: "https://example.com", want: "example.com", wantOK: true},
		{name: "uppercase WWW", rawURL: "https://WWW.Example.com/", want: "example.com", wantOK: true},
		{name: "mixed case host is lowered", rawURL: "https://WWW.Example.COM/contact", want: "example.com", wantOK: true},
		{name: "mixed case professional network", rawURL: "https://www.LinkedIn.com/in/x", want: "linkedin.com", wantOK: true},
		{name: "mixed case without www", rawURL: "https://Shop.Example.org", want: "shop.example.org", wantOK: true},
		{name: "www in the middle", rawURL: "https://shop.www.example.co.uk/x", want: "example.co.uk", wantOK: true},
		{name: "only first www is used", rawURL: "https://www.www.example.com", want: "www.example.com", wantOK: true},
		{name: "trailing www is kept", rawURL: "http://foo.www", want: "foo.www", wantOK: true},
		{name: "www prefix inside a label", rawURL: "https://www2.example.com", want: "www2.example.com", wantOK: true},
		{name: "port is dropped", rawURL: "http://www.example.com:8080/a", want: "example.com", wantOK: true},
		{name: "professional network", rawURL: "https://www.linkedin.com/in/someone", want: "linkedin.com", wantOK: true},
		{name: "subdomain kept", rawURL: "https://blog.example.com", want: "blog.example.com", wantOK: true},
		{name: "ip address", rawURL: "http://127.0.0.1:3000/", want: "127.0.0.1", wantOK: true},
		{name: "relative url has no host", rawURL: "/contact", want: "", wantOK: false},
		{name: "empty string", rawURL: "", want: "", wantOK: false},
		{name: "unparsable", rawURL: "http://[::1", want: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Extract(tt.rawURL)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Extract(%q) = (%q, %v), want (%q, %v)", tt.rawURL, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestExtractor_LogsFailures(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	e := NewExtractor(WithLogger(logger))

	if _, ok := e.Extract("http://[::1"); ok {
		t.Fatal("expected failure")
	}
	if !strings.Contains(buf.String(), "failed to parse page URL") {
		t.Errorf("expected warning to be logged, got %q", buf.String())
	}

	buf.Reset()
	if _, ok := e.Extract("mailto:"); ok {
		t.Fatal("expected failure for hostless URL")
	}
	if !strings.Contains(buf.String(), "page URL has no host") {
		t.Errorf("expected warning to be logged, got %q", buf.String())
	}
}

func TestName_IsProfessionalNetwork(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name Name
		want bool
	}{
		{name: "linkedin.com", want: true},
		{name: "uk.linkedin.com", want: false},
		{name: "LinkedIn.com", want: false},
		{name: "example.com", want: false},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			t.Parallel()
			if got := tt.name.IsProfessionalNetwork("linkedin.com"); got != tt.want {
				t.Errorf("IsProfessionalNetwork() = %v, want %v", got, tt.want)
			}
		})
	}
}
