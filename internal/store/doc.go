// Package store keeps leadscan's local state in a single SQLite file.
//
// Three tables are managed:
//   - settings: small key/value pairs, such as the selected category
//   - scans: one row per scanned page with the full report as JSON
//   - submissions: every lead successfully saved to the lead service
//
// The database lives in the XDG data directory by default and is opened
// with modernc.org/sqlite, so no cgo toolchain is required.
package store
