// Package log builds the slog loggers used by leadscan.
//
// Every logger returned by this package wraps its output handler in a
// SecureHandler. The wrapper masks values that must never reach a terminal
// or a shared log file:
//   - the lead service API token and Authorization headers
//   - per-site cookies loaded from the configuration file
//   - bearer, basic and JWT credentials found in any string value
//   - passwords and token query parameters embedded in URLs
//
// Email addresses, page URLs and category names are logged as-is; they are
// the subject of the tool, not secrets.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Debug("calling lead service",
//	    "url", "https://lead.example.com/api/check-emails",
//	    "authorization", "Bearer abc", // masked
//	)
package log
