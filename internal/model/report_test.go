package model

import (
	"testing"
	"time"
)

// TestNewScanReport tests the ScanReport constructor.
func TestNewScanReport(t *testing.T) {
	t.Parallel()

	report := NewScanReport("https://www.example.com/page")

	if report.PageURL != "https://www.example.com/page" {
		t.Errorf("unexpected PageURL %q", report.PageURL)
	}
	if report.DateScanned.IsZero() || time.Since(report.DateScanned) > time.Second {
		t.Error("expected recent DateScanned")
	}
	if report.Items == nil {
		t.Error("expected Items to be initialized")
	}
	if report.NoneFound {
		t.Error("NoneFound should start false")
	}
}

func TestScanReportItems(t *testing.T) {
	t.Parallel()

	report := NewScanReport("https://example.com")
	report.Items = []EmailItem{
		{Email: "john@example.com", State: CheckExists, Addable: false},
		{Email: "jane@gmail.com", State: CheckNew, Addable: true},
		{Email: "ops@example.com", State: CheckUnknown, Addable: true},
	}

	t.Run("Item finds by email", func(t *testing.T) {
		t.Parallel()
		item := report.Item("jane@gmail.com")
		if item == nil || item.State != CheckNew {
			t.Fatalf("unexpected item: %+v", item)
		}
		if report.Item("nobody@example.com") != nil {
			t.Error("expected nil for unknown email")
		}
	})

	t.Run("AddableCount", func(t *testing.T) {
		t.Parallel()
		if got := report.AddableCount(); got != 2 {
			t.Errorf("expected 2 addable, got %d", got)
		}
	})

	t.Run("CountByState", func(t *testing.T) {
		t.Parallel()
		if got := report.CountByState(CheckExists); got != 1 {
			t.Errorf("expected 1 existing, got %d", got)
		}
		if got := report.CountByState(CheckPending); got != 0 {
			t.Errorf("expected 0 pending, got %d", got)
		}
	})
}
