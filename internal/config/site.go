package config

import "strings"

// SiteConfig holds page-fetch settings for a single host.
type SiteConfig struct {
	// Cookie is an HTTP cookie sent when downloading pages of this host.
	// Format: "name=value" or "name1=value1; name2=value2"
	Cookie string `yaml:"cookie,omitempty"`

	// Headers are extra HTTP headers sent when downloading pages of this host.
	Headers map[string]string `yaml:"headers,omitempty"`
}

// File represents the structure of the .leadscan configuration file.
type File struct {
	// APIURL overrides the lead service base URL.
	APIURL string `yaml:"apiURL,omitempty"`

	// APIToken is an optional bearer token for the lead service.
	APIToken string `yaml:"apiToken,omitempty"`

	// ProfessionalNetwork overrides the professional-network domain literal.
	ProfessionalNetwork string `yaml:"professionalNetwork,omitempty"`

	// AllowedSuffixes replaces the webmail allow-list. An explicit empty
	// list disables the exception; an absent key keeps the default.
	AllowedSuffixes []string `yaml:"allowedSuffixes,omitempty"`

	// Proxy is an optional SOCKS5 proxy address.
	Proxy string `yaml:"proxy,omitempty"`

	// UserAgent overrides the page-fetch User-Agent.
	UserAgent string `yaml:"userAgent,omitempty"`

	// MaxBodySize limits how many bytes of a page are scanned.
	// Zero keeps the default.
	MaxBodySize int64 `yaml:"maxBodySize,omitempty"`

	// Sites maps hosts to their site-specific configurations.
	// Keys are host names without scheme (e.g., "www.example.com").
	Sites map[string]SiteConfig `yaml:"sites,omitempty"`

	// Defaults applies to all hosts unless overridden in Sites.
	Defaults SiteConfig `yaml:"defaults,omitempty"`
}

// GetSiteConfig returns the configuration for host, merged over the defaults.
// The lookup is case-insensitive.
func (cf *File) GetSiteConfig(host string) SiteConfig {
	result := SiteConfig{Cookie: cf.Defaults.Cookie}
	if len(cf.Defaults.Headers) > 0 {
		result.Headers = make(map[string]string, len(cf.Defaults.Headers))
		for k, v := range cf.Defaults.Headers {
			result.Headers[k] = v
		}
	}

	siteConfig, ok := cf.Sites[host]
	if !ok {
		for k, v := range cf.Sites {
			if strings.EqualFold(k, host) {
				siteConfig, ok = v, true
				break
			}
		}
	}
	if !ok {
		return result
	}

	if siteConfig.Cookie != "" {
		result.Cookie = siteConfig.Cookie
	}
	if len(siteConfig.Headers) > 0 {
		if result.Headers == nil {
			result.Headers = make(map[string]string)
		}
		for k, v := range siteConfig.Headers {
			result.Headers[k] = v
		}
	}

	return result
}
