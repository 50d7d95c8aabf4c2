package leadapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/nao1215/leadscan/internal/model"
)

// DefaultBaseURL is the production lead service.
const DefaultBaseURL = "https://lead.srninfotech.com"

// API paths.
const (
	pathCheckEmails      = "/api/check-emails"
	pathSaveEmails       = "/api/save-emails"
	pathSaveLinkedInData = "/api/save-linkedin-data"
	pathCategories       = "/api/categories"
)

// Client talks to the lead service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// WithToken sends token as a bearer credential on every request.
func WithToken(token string) Option {
	return func(cl *Client) {
		cl.token = token
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cl *Client) {
		cl.logger = logger
	}
}

// NewClient returns a client for baseURL. An empty baseURL means
// DefaultBaseURL. A trailing slash is ignored.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the service base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type checkRequest struct {
	Email string `json:"email"`
}

type checkResponse struct {
	Exists bool `json:"exists"`
}

// CheckEmail asks whether email is already recorded.
func (c *Client) CheckEmail(ctx context.Context, email string) (bool, error) {
	var out checkResponse
	if err := c.do(ctx, http.MethodPost, pathCheckEmails, checkRequest{Email: email}, &out); err != nil {
		return false, err
	}
	return out.Exists, nil
}

type saveEmailRequest struct {
	DomainName string `json:"DomainName"`
	Email      string `json:"Email"`
	Category   string `json:"category"`
}

// SaveEmail records email for domain under category.
func (c *Client) SaveEmail(ctx context.Context, domain, email, category string) error {
	return c.do(ctx, http.MethodPost, pathSaveEmails, saveEmailRequest{
		DomainName: domain,
		Email:      email,
		Category:   category,
	}, nil)
}

type saveLinkedInRequest struct {
	Email    string `json:"Email"`
	Category string `json:"category"`
}

// SaveLinkedInData records a professional-network lead.
func (c *Client) SaveLinkedInData(ctx context.Context, email, category string) error {
	return c.do(ctx, http.MethodPost, pathSaveLinkedInData, saveLinkedInRequest{
		Email:    email,
		Category: category,
	}, nil)
}

// Categories lists every category.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	categories := make([]model.Category, 0)
	if err := c.do(ctx, http.MethodGet, pathCategories, nil, &categories); err != nil {
		return nil, err
	}
	if categories == nil {
		categories = make([]model.Category, 0)
	}
	return categories, nil
}

type createCategoryRequest struct {
	Category string `json:"category"`
}

// CreateCategory adds a category named name.
func (c *Client) CreateCategory(ctx context.Context, name string) error {
	return c.do(ctx, http.MethodPost, pathCategories, createCategoryRequest{Category: name}, nil)
}

// do sends in as JSON (when non-nil) and decodes the response into out
// (when non-nil).
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return fmt.Errorf("invalid lead service URL: %w", err)
	}

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	c.logger.Debug("calling lead service", "method", method, "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody)) //nolint:errcheck // best effort
		return &StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body) //nolint:errcheck // drain for connection reuse
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", path, err)
	}
	return nil
}
