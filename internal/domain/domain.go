// Package domain derives the canonical domain of a page URL.
package domain

import (
	"log/slog"
	"net/url"
	"strings"

	"golang.org/x/text/cases"
)

// wwwLabel is the host label stripped from hostnames.
const wwwLabel = "www"

// Name is a canonical domain such as "example.com".
type Name string

// String returns the domain as a string.
func (n Name) String() string {
	return string(n)
}

// IsProfessionalNetwork reports whether n equals the professional-network
// literal exactly.
func (n Name) IsProfessionalNetwork(literal string) bool {
	return string(n) == literal
}

// Extractor turns page URLs into domain names.
type Extractor struct {
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used to report unparsable URLs.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// NewExtractor returns an Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the lower-cased hostname of rawURL with everything up to
// and including the first "www" label removed. A "www" that is the last
// label is kept.
// The second result is false when rawURL has no host; the failure is logged
// and never returned as an error.
func (e *Extractor) Extract(rawURL string) (Name, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		e.logger.Warn("failed to parse page URL", "url", rawURL, "error", err)
		return "", false
	}

	host := cases.Fold().String(u.Hostname())
	if host == "" {
		e.logger.Warn("page URL has no host", "url", rawURL)
		return "", false
	}

	labels := strings.Split(host, ".")
	for i, label := range labels {
		if label != wwwLabel {
			continue
		}
		if i == len(labels)-1 {
			break
		}
		return Name(strings.Join(labels[i+1:], ".")), true
	}
	return Name(host), true
}

// Extract is a convenience wrapper around a default Extractor.
func Extract(rawURL string) (Name, bool) {
	return NewExtractor().Extract(rawURL)
}
