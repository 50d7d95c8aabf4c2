package model

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// MaxPageSize is the default size limit of raw page content.
const MaxPageSize = 5 * 1024 * 1024 // 5 MB

// Page represents a downloaded web page.
// The raw body is what the email matcher scans; the title is only used
// for display.
type Page struct {
	// URL is the URL the page was requested from.
	URL string `json:"url"`

	// StatusCode is the HTTP response status code.
	StatusCode int `json:"status_code"`

	// ContentType is the value of the Content-Type header.
	ContentType string `json:"content_type"`

	// Title is the text of the <title> element. Empty for non-HTML content.
	Title string `json:"title,omitempty"`

	// Raw is the response body, limited to MaxPageSize bytes.
	Raw []byte `json:"-"`

	// Hash is the SHA-256 of Raw, hex encoded.
	Hash string `json:"hash,omitempty"`
}

// ComputeHash calculates and sets the SHA-256 hash of the page's raw content.
func (p *Page) ComputeHash() {
	if len(p.Raw) == 0 {
		p.Hash = ""
		return
	}

	hash := sha256.Sum256(p.Raw)
	p.Hash = hex.EncodeToString(hash[:])
}

// Text returns the raw body as a string.
func (p *Page) Text() string {
	return string(p.Raw)
}

// IsHTML returns true if the content type indicates HTML.
func (p *Page) IsHTML() bool {
	ct := strings.ToLower(p.ContentType)
	return strings.HasPrefix(ct, "text/html") || strings.HasPrefix(ct, "application/xhtml+xml")
}

// TruncateRaw cuts Raw down to limit bytes and reports whether anything was
// dropped. A limit <= 0 means MaxPageSize.
func (p *Page) TruncateRaw(limit int64) bool {
	if limit <= 0 {
		limit = MaxPageSize
	}
	if int64(len(p.Raw)) <= limit {
		return false
	}
	p.Raw = p.Raw[:limit]
	return true
}
