package config

import (
	"net"
	"net/url"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// DefaultAPIBaseURL is the lead service the original extension talks to.
	DefaultAPIBaseURL = "https://lead.srninfotech.com"

	// DefaultTimeout bounds each HTTP request (page download or API call).
	DefaultTimeout = 30 * time.Second

	// DefaultProfessionalNetwork is the domain whose leads go to the
	// professional-network endpoint instead of the generic one.
	DefaultProfessionalNetwork = "linkedin.com"

	// DefaultWebmailSuffix is the consumer webmail domain that is kept
	// alongside exact-domain matches.
	DefaultWebmailSuffix = "gmail.com"

	// AppName is the application name used for XDG directory paths.
	AppName = "leadscan"

	// DefaultUserAgent identifies leadscan in HTTP requests.
	DefaultUserAgent = "leadscan/1.0 (+https://github.com/nao1215/leadscan)"

	// DefaultMaxBodySize limits the page body read by the fetcher.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// CategoryKey is the local store key holding the selected category name.
	CategoryKey = "category"
)

// Config holds all configuration options for leadscan.
// It is populated from the configuration file and CLI flags and passed
// through the application explicitly.
type Config struct {
	// APIBaseURL is the scheme and host of the lead service.
	APIBaseURL string

	// APIToken is sent as a bearer token when non-empty.
	APIToken string

	// Timeout is the per-request HTTP timeout.
	Timeout time.Duration

	// ProxyAddress is an optional SOCKS5 proxy in "host:port" form.
	// Empty means direct connections.
	ProxyAddress string

	// UserAgent is the User-Agent header used when downloading pages.
	UserAgent string

	// MaxBodySize is the maximum page body size in bytes. 0 means default.
	MaxBodySize int64

	// ProfessionalNetwork is the domain literal routed to the
	// professional-network save endpoint.
	ProfessionalNetwork string

	// AllowedSuffixes are webmail domains kept in addition to the page
	// domain when narrowing matches. An empty slice disables the exception.
	AllowedSuffixes []string

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is the path to the configuration file.
	// If empty, .leadscan is searched in the current and home directories.
	ConfigFilePath string

	// File holds the loaded configuration file.
	File *File

	// JSONReport enables JSON report output. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report. Empty means stdout.
	ReportFile string

	// PageURL is the page to scan.
	PageURL string

	// Category overrides the remembered category for this run.
	Category string

	// Interactive asks for confirmation per addable email and submits.
	Interactive bool

	// StrictExistence refuses submission when the click-time existence
	// check fails, instead of proceeding.
	StrictExistence bool

	// DBDir is the directory holding the local SQLite store.
	DBDir string

	// SaveToDB records scans and submissions in the local store.
	SaveToDB bool
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		APIBaseURL:          DefaultAPIBaseURL,
		Timeout:             DefaultTimeout,
		UserAgent:           DefaultUserAgent,
		MaxBodySize:         DefaultMaxBodySize,
		ProfessionalNetwork: DefaultProfessionalNetwork,
		AllowedSuffixes:     []string{DefaultWebmailSuffix},
		DBDir:               XDGDataDir(),
		SaveToDB:            true,
	}
}

// ApplyFile copies the values set in the configuration file into c.
// Values absent from the file leave c unchanged.
func (c *Config) ApplyFile(f *File) {
	if f == nil {
		return
	}
	c.File = f
	if f.APIURL != "" {
		c.APIBaseURL = f.APIURL
	}
	if f.APIToken != "" {
		c.APIToken = f.APIToken
	}
	if f.ProfessionalNetwork != "" {
		c.ProfessionalNetwork = f.ProfessionalNetwork
	}
	if f.AllowedSuffixes != nil {
		c.AllowedSuffixes = append([]string(nil), f.AllowedSuffixes...)
	}
	if f.Proxy != "" {
		c.ProxyAddress = f.Proxy
	}
	if f.UserAgent != "" {
		c.UserAgent = f.UserAgent
	}
	if f.MaxBodySize != 0 {
		c.MaxBodySize = f.MaxBodySize
	}
}

// SiteConfig returns the page-fetch settings for host.
func (c *Config) SiteConfig(host string) SiteConfig {
	if c.File == nil {
		return SiteConfig{}
	}
	return c.File.GetSiteConfig(host)
}

// XDGDataDir returns the XDG data directory for leadscan.
// On Linux: ~/.local/share/leadscan
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for leadscan.
// On Linux: ~/.config/leadscan
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the settings shared by every command.
// It returns the first problem found.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidAPIURL
	}

	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	if c.ProfessionalNetwork == "" {
		return ErrEmptyProfessionalNetwork
	}

	if c.ProxyAddress != "" && !isValidProxyAddress(c.ProxyAddress) {
		return ErrInvalidProxyAddress
	}

	return nil
}

// ValidateScan checks the settings required to scan or submit for a page.
func (c *Config) ValidateScan() error {
	if c.PageURL == "" {
		return ErrNoTarget
	}
	return c.Validate()
}

// isValidProxyAddress checks for a "host:port" address with a port in 1-65535.
func isValidProxyAddress(address string) bool {
	host, port, err := net.SplitHostPort(address)
	if err != nil || host == "" {
		return false
	}
	n, err := strconv.Atoi(port)
	if err != nil {
		return false
	}
	return n >= 1 && n <= 65535
}
