package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/leadscan/internal/domain"
	"github.com/nao1215/leadscan/internal/model"
)

// Outcome is the result of one add action.
type Outcome int

const (
	// OutcomeFailed means the save request failed. The address stays
	// addable; nothing retries automatically.
	OutcomeFailed Outcome = iota

	// OutcomeSaved means the lead service accepted the address.
	OutcomeSaved

	// OutcomeDuplicate means the click-time check found the address
	// already recorded, so nothing was sent.
	OutcomeDuplicate

	// OutcomeCheckFailed means the click-time check failed and strict
	// existence checking refused to submit.
	OutcomeCheckFailed
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeCheckFailed:
		return "check-failed"
	default:
		return "failed"
	}
}

var (
	// ErrNoCategory is returned when no category was chosen.
	ErrNoCategory = errors.New("no category selected")

	// ErrExistenceCheckFailed wraps a failed click-time check in strict mode.
	ErrExistenceCheckFailed = errors.New("existence check failed")
)

// Saver stores leads on the lead service.
type Saver interface {
	SaveEmail(ctx context.Context, domain, email, category string) error
	SaveLinkedInData(ctx context.Context, email, category string) error
}

// Settings persists the selected category.
type Settings interface {
	Set(ctx context.Context, key, value string) error
}

// History records successful submissions.
type History interface {
	RecordSubmission(ctx context.Context, sub *model.Submission) error
}

// categorySettingKey matches the key the category manager reads.
const categorySettingKey = "category"

// Submitter performs the add action for one address.
type Submitter struct {
	checker             Checker
	saver               Saver
	settings            Settings
	history             History
	extractor           *domain.Extractor
	professionalNetwork string
	strict              bool
	logger              *slog.Logger
}

// SubmitterOption configures a Submitter.
type SubmitterOption func(*Submitter)

// WithSettings remembers the category used on each submit.
func WithSettings(s Settings) SubmitterOption {
	return func(sub *Submitter) {
		sub.settings = s
	}
}

// WithHistory records successful submissions.
func WithHistory(h History) SubmitterOption {
	return func(sub *Submitter) {
		sub.history = h
	}
}

// WithProfessionalNetwork sets the domain routed to SaveLinkedInData.
func WithProfessionalNetwork(literal string) SubmitterOption {
	return func(sub *Submitter) {
		if literal != "" {
			sub.professionalNetwork = literal
		}
	}
}

// WithStrictExistence refuses to submit when the click-time check fails.
func WithStrictExistence(strict bool) SubmitterOption {
	return func(sub *Submitter) {
		sub.strict = strict
	}
}

// WithSubmitterLogger sets the logger.
func WithSubmitterLogger(logger *slog.Logger) SubmitterOption {
	return func(sub *Submitter) {
		sub.logger = logger
	}
}

// NewSubmitter returns a Submitter.
func NewSubmitter(checker Checker, saver Saver, opts ...SubmitterOption) *Submitter {
	s := &Submitter{
		checker:             checker,
		saver:               saver,
		professionalNetwork: "linkedin.com",
		logger:              slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.extractor = domain.NewExtractor(domain.WithLogger(s.logger))
	return s
}

// Submit saves email, found on pageURL, under category.
//
// The existence check is repeated first; a known address is not sent. A
// failed check lets the submit proceed unless strict checking is on. The
// page domain picks the endpoint: the professional network goes to
// SaveLinkedInData, everything else to SaveEmail.
func (s *Submitter) Submit(ctx context.Context, pageURL, email, category string) (Outcome, error) {
	if category == "" {
		return OutcomeFailed, ErrNoCategory
	}

	exists, err := s.checker.CheckEmail(ctx, email)
	switch {
	case err != nil && s.strict:
		s.logger.Error("error checking email existence", "email", email, "error", err)
		return OutcomeCheckFailed, fmt.Errorf("%w: %w", ErrExistenceCheckFailed, err)
	case err != nil:
		s.logger.Warn("error checking email existence, submitting anyway", "email", email, "error", err)
	case exists:
		s.logger.Info("email already recorded", "email", email)
		return OutcomeDuplicate, nil
	}

	if s.settings != nil {
		if err := s.settings.Set(ctx, categorySettingKey, category); err != nil {
			s.logger.Warn("failed to remember category", "category", category, "error", err)
		}
	}

	d, _ := s.extractor.Extract(pageURL)
	sub := &model.Submission{
		Email:    email,
		Domain:   d.String(),
		Category: category,
	}

	if d.IsProfessionalNetwork(s.professionalNetwork) {
		sub.Endpoint = model.EndpointLinkedIn
		err = s.saver.SaveLinkedInData(ctx, email, category)
	} else {
		sub.Endpoint = model.EndpointEmails
		err = s.saver.SaveEmail(ctx, d.String(), email, category)
	}
	if err != nil {
		s.logger.Error("failed to save email", "email", email, "endpoint", string(sub.Endpoint), "error", err)
		return OutcomeFailed, fmt.Errorf("failed to save %s: %w", email, err)
	}

	s.logger.Info("email saved", "email", email, "endpoint", string(sub.Endpoint), "category", category)

	if s.history != nil {
		if err := s.history.RecordSubmission(ctx, sub); err != nil {
			s.logger.Warn("failed to record submission", "email", email, "error", err)
		}
	}
	return OutcomeSaved, nil
}

// ApplyOutcome updates the item for email after an add action. Saved and
// duplicate addresses lose their add action; any other outcome keeps it.
func ApplyOutcome(report *model.ScanReport, email string, outcome Outcome) {
	item := report.Item(email)
	if item == nil {
		return
	}
	switch outcome {
	case OutcomeSaved:
		item.State = model.CheckSaved
		item.Addable = false
	case OutcomeDuplicate:
		item.State = model.CheckExists
		item.Addable = false
	default:
		item.Addable = true
	}
}
