package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/nao1215/leadscan/internal/model"
)

// ScanSummary is one row of scan history without the full report.
type ScanSummary struct {
	ID         int64
	PageURL    string
	Domain     string
	Timestamp  time.Time
	EmailCount int
}

// SaveScan stores report and returns its row ID.
func (s *Store) SaveScan(ctx context.Context, report *model.ScanReport) (int64, error) {
	reportJSON, err := json.Marshal(report)
	if err != nil {
		return 0, fmt.Errorf("failed to serialize report: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
	INSERT INTO scans (page_url, domain, timestamp, email_count, report_json)
	VALUES (?, ?, ?, ?, ?)
	`,
		report.PageURL,
		report.Domain,
		formatTimestamp(report.DateScanned),
		report.Emails.Len(),
		string(reportJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save scan: %w", err)
	}
	return result.LastInsertId()
}

// ListScans returns the most recent scans first. limit <= 0 means all.
func (s *Store) ListScans(ctx context.Context, limit int) ([]ScanSummary, error) {
	query := `SELECT id, page_url, domain, timestamp, email_count FROM scans ORDER BY id DESC`
	args := make([]any, 0, 1)
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list scans: %w", err)
	}
	defer rows.Close()

	results := make([]ScanSummary, 0)
	for rows.Next() {
		var sum ScanSummary
		var domain sql.NullString
		var timestamp string
		if err := rows.Scan(&sum.ID, &sum.PageURL, &domain, &timestamp, &sum.EmailCount); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		sum.Domain = domain.String
		sum.Timestamp = parseTimestamp(timestamp)
		results = append(results, sum)
	}
	return results, rows.Err()
}

// GetScanByID returns the stored report, or nil when id is unknown.
func (s *Store) GetScanByID(ctx context.Context, id int64) (*model.ScanReport, error) {
	var reportJSON string
	err := s.db.QueryRowContext(ctx, `SELECT report_json FROM scans WHERE id = ?`, id).Scan(&reportJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get scan: %w", err)
	}

	var report model.ScanReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}
	return &report, nil
}

// RecordSubmission stores sub and sets its ID. A zero Timestamp is
// replaced with the current time.
func (s *Store) RecordSubmission(ctx context.Context, sub *model.Submission) error {
	if sub.Timestamp.IsZero() {
		sub.Timestamp = s.now()
	}

	result, err := s.db.ExecContext(ctx, `
	INSERT INTO submissions (email, domain, category, endpoint, timestamp)
	VALUES (?, ?, ?, ?, ?)
	`,
		sub.Email,
		sub.Domain,
		sub.Category,
		string(sub.Endpoint),
		formatTimestamp(sub.Timestamp),
	)
	if err != nil {
		return fmt.Errorf("failed to record submission: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read submission id: %w", err)
	}
	sub.ID = id
	return nil
}

// ListSubmissions returns the most recent submissions first. limit <= 0
// means all.
func (s *Store) ListSubmissions(ctx context.Context, limit int) ([]model.Submission, error) {
	query := `SELECT id, email, domain, category, endpoint, timestamp FROM submissions ORDER BY id DESC`
	args := make([]any, 0, 1)
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	results := make([]model.Submission, 0)
	for rows.Next() {
		var sub model.Submission
		var domain sql.NullString
		var endpoint, timestamp string
		if err := rows.Scan(&sub.ID, &sub.Email, &domain, &sub.Category, &endpoint, &timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		sub.Domain = domain.String
		sub.Endpoint = model.Endpoint(endpoint)
		sub.Timestamp = parseTimestamp(timestamp)
		results = append(results, sub)
	}
	return results, rows.Err()
}
