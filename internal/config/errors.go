package config

import "errors"

// Configuration validation errors returned by Config.Validate and
// Config.ValidateScan. Callers match them with errors.Is.
var (
	// ErrNoTarget is returned when no page URL is given.
	ErrNoTarget = errors.New("no target specified: provide a page URL")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidAPIURL is returned when the lead service URL is not an
	// absolute http or https URL.
	ErrInvalidAPIURL = errors.New("invalid api url: must be an absolute http(s) URL")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrEmptyProfessionalNetwork is returned when the professional-network
	// domain literal is empty.
	ErrEmptyProfessionalNetwork = errors.New("invalid professional network: domain must not be empty")

	// ErrInvalidProxyAddress is returned when the proxy is not "host:port".
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")
)
