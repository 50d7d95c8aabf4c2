package extract

import "strings"

// DefaultWebmailSuffix is allow-listed by DefaultRule.
const DefaultWebmailSuffix = "gmail.com"

// SuffixRule keeps addresses whose part after "@" equals the page domain or
// one of AllowedSuffixes. Comparison is exact and case-sensitive.
type SuffixRule struct {
	// AllowedSuffixes are domains kept on every page. Empty disables the
	// exception so only same-domain addresses survive.
	AllowedSuffixes []string
}

// DefaultRule is the page domain plus gmail.com.
var DefaultRule = SuffixRule{AllowedSuffixes: []string{DefaultWebmailSuffix}}

// NewSuffixRule returns a rule allow-listing suffixes.
func NewSuffixRule(suffixes ...string) SuffixRule {
	return SuffixRule{AllowedSuffixes: append([]string(nil), suffixes...)}
}

// Keep reports whether email belongs to domain or an allow-listed suffix.
func (r SuffixRule) Keep(email, domain string) bool {
	if domain != "" && strings.HasSuffix(email, "@"+domain) {
		return true
	}
	for _, s := range r.AllowedSuffixes {
		if s != "" && strings.HasSuffix(email, "@"+s) {
			return true
		}
	}
	return false
}
