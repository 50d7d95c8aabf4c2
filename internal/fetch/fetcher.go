// Package fetch downloads the page whose addresses are collected.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/nao1215/leadscan/internal/model"
)

// ErrUnexpectedStatus is returned for non-2xx responses.
var ErrUnexpectedStatus = errors.New("unexpected HTTP status")

const (
	defaultUserAgent   = "leadscan/1.0"
	defaultMaxBodySize = model.MaxPageSize
	acceptHeader       = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

// PageFetcher performs a single GET per page. It does not retry or cache.
type PageFetcher struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
	logger      *slog.Logger
}

// Option configures a PageFetcher.
type Option func(*PageFetcher)

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *PageFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithMaxBodySize limits how many body bytes are read. Values <= 0 keep
// the default.
func WithMaxBodySize(size int64) Option {
	return func(f *PageFetcher) {
		if size > 0 {
			f.maxBodySize = size
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(f *PageFetcher) {
		f.logger = logger
	}
}

// NewPageFetcher returns a fetcher using client. A nil client means
// http.DefaultClient.
func NewPageFetcher(client *http.Client, opts ...Option) *PageFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	f := &PageFetcher{
		client:      client,
		userAgent:   defaultUserAgent,
		maxBodySize: defaultMaxBodySize,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads pageURL. Non-2xx responses return an error wrapping
// ErrUnexpectedStatus.
func (f *PageFetcher) Fetch(ctx context.Context, pageURL string) (*model.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	f.logger.Debug("fetching page", "url", pageURL)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d fetching %s", ErrUnexpectedStatus, resp.StatusCode, pageURL)
	}

	// One byte past the limit tells a cut body from one that fits exactly.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read body of %s: %w", pageURL, err)
	}

	page := &model.Page{
		URL:         pageURL,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Raw:         body,
	}
	if page.TruncateRaw(f.maxBodySize) {
		f.logger.Warn("page body exceeds size limit, addresses past the limit are ignored",
			"url", pageURL,
			"limit", f.maxBodySize,
		)
	}
	page.ComputeHash()

	if page.IsHTML() {
		title, err := ParseTitle(strings.NewReader(page.Text()))
		if err != nil {
			f.logger.Debug("failed to parse page title", "url", pageURL, "error", err)
		}
		page.Title = title
	}

	f.logger.Debug("fetched page",
		"url", pageURL,
		"status", resp.StatusCode,
		"bytes", len(page.Raw),
		"title", page.Title,
	)
	return page, nil
}
