package model

import "time"

// CheckState records the outcome of the existence check for one email.
type CheckState string

const (
	// CheckPending means the email has not been checked yet.
	CheckPending CheckState = "pending"

	// CheckNew means the lead service does not know the email.
	CheckNew CheckState = "new"

	// CheckExists means the lead service already recorded the email.
	CheckExists CheckState = "exists"

	// CheckUnknown means the check failed. The email stays addable.
	CheckUnknown CheckState = "unknown"

	// CheckSaved means the email was submitted during this session.
	CheckSaved CheckState = "saved"
)

// EmailItem is one displayed email together with its add-control state.
type EmailItem struct {
	// Email is the candidate address.
	Email string `json:"email"`

	// State is the existence-check outcome.
	State CheckState `json:"state"`

	// Addable reports whether the "add" action is offered.
	// It is false once the address is known to exist or was saved.
	Addable bool `json:"addable"`

	// CheckError holds the existence-check failure message, if any.
	CheckError string `json:"check_error,omitempty"`
}

// ScanReport is the result of scanning one page.
type ScanReport struct {
	// PageURL is the URL that was scanned.
	PageURL string `json:"page_url"`

	// Domain is the canonical domain of PageURL. Empty when the URL could
	// not be parsed.
	Domain string `json:"domain,omitempty"`

	// HasDomain reports whether Domain was derived.
	HasDomain bool `json:"has_domain"`

	// DateScanned is when the scan started.
	DateScanned time.Time `json:"date_scanned"`

	// Page is the downloaded page, nil if the fetch failed.
	Page *Page `json:"page,omitempty"`

	// Matches holds every regex match before domain narrowing.
	Matches *EmailSet `json:"matches,omitempty"`

	// Emails holds the addresses shown to the user.
	Emails *EmailSet `json:"emails,omitempty"`

	// Items holds the per-email display state in presentation order.
	Items []EmailItem `json:"items,omitempty"`

	// NoneFound is the explicit "no emails found" state.
	NoneFound bool `json:"none_found"`

	// FetchError holds the page download failure message, if any.
	FetchError string `json:"fetch_error,omitempty"`

	// PerformedSteps lists the pipeline steps that ran.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// TimedOut indicates the scan was cancelled before all steps ran.
	TimedOut bool `json:"timed_out"`

	// Error is the last step error. Not serialized.
	Error error `json:"-"`

	// ErrorMessage is the string form of Error.
	ErrorMessage string `json:"error,omitempty"`
}

// NewScanReport creates an empty report for the given page URL.
func NewScanReport(pageURL string) *ScanReport {
	return &ScanReport{
		PageURL:     pageURL,
		DateScanned: time.Now(),
		Items:       make([]EmailItem, 0),
	}
}

// Item returns a pointer to the item for email, or nil.
func (r *ScanReport) Item(email string) *EmailItem {
	for i := range r.Items {
		if r.Items[i].Email == email {
			return &r.Items[i]
		}
	}
	return nil
}

// AddableCount returns the number of items whose add action is offered.
func (r *ScanReport) AddableCount() int {
	n := 0
	for _, it := range r.Items {
		if it.Addable {
			n++
		}
	}
	return n
}

// CountByState returns the number of items in the given state.
func (r *ScanReport) CountByState(state CheckState) int {
	n := 0
	for _, it := range r.Items {
		if it.State == state {
			n++
		}
	}
	return n
}
