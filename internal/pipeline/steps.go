package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/leadscan/internal/domain"
	"github.com/nao1215/leadscan/internal/extract"
	"github.com/nao1215/leadscan/internal/model"
)

// Step names.
const (
	StepDomain    = "domain"
	StepFetch     = "fetch"
	StepMatch     = "match"
	StepExistence = "existence"
)

// Fetcher downloads a page.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (*model.Page, error)
}

// Checker asks the lead service whether an address is known.
type Checker interface {
	CheckEmail(ctx context.Context, email string) (bool, error)
}

// Listener receives the addresses a scan will show, in presentation order.
// A failed download delivers an empty list.
type Listener func(emails []string)

// DomainStep derives report.Domain from report.PageURL.
type DomainStep struct {
	extractor *domain.Extractor
}

// NewDomainStep returns a DomainStep.
func NewDomainStep(extractor *domain.Extractor) *DomainStep {
	if extractor == nil {
		extractor = domain.NewExtractor()
	}
	return &DomainStep{extractor: extractor}
}

// Name implements Step.
func (s *DomainStep) Name() string {
	return StepDomain
}

// Do implements Step. An unparsable URL leaves the report without a domain.
func (s *DomainStep) Do(_ context.Context, report *model.ScanReport) error {
	d, ok := s.extractor.Extract(report.PageURL)
	report.Domain = d.String()
	report.HasDomain = ok
	return nil
}

// FetchStep downloads the page.
type FetchStep struct {
	fetcher  Fetcher
	listener Listener
	logger   *slog.Logger
}

// FetchStepOption configures a FetchStep.
type FetchStepOption func(*FetchStep)

// WithFetchListener sets the listener told about a failed download.
func WithFetchListener(l Listener) FetchStepOption {
	return func(s *FetchStep) {
		s.listener = l
	}
}

// WithFetchLogger sets the logger.
func WithFetchLogger(logger *slog.Logger) FetchStepOption {
	return func(s *FetchStep) {
		s.logger = logger
	}
}

// NewFetchStep returns a FetchStep.
func NewFetchStep(fetcher Fetcher, opts ...FetchStepOption) *FetchStep {
	s := &FetchStep{
		fetcher: fetcher,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements Step.
func (s *FetchStep) Name() string {
	return StepFetch
}

// Do implements Step. A failed download yields an empty result and the
// listener is told about an empty list; the step itself succeeds.
func (s *FetchStep) Do(ctx context.Context, report *model.ScanReport) error {
	page, err := s.fetcher.Fetch(ctx, report.PageURL)
	if err != nil {
		s.logger.Error("error fetching page content", "url", report.PageURL, "error", err)
		report.FetchError = err.Error()
		report.Matches = model.NewEmailSet()
		report.Emails = model.NewEmailSet()
		report.Items = make([]model.EmailItem, 0)
		report.NoneFound = true
		if s.listener != nil {
			s.listener([]string{})
		}
		return nil
	}

	report.Page = page
	return nil
}

// MatchStep extracts and narrows addresses from the downloaded page.
type MatchStep struct {
	matcher  *extract.Matcher
	listener Listener
}

// MatchStepOption configures a MatchStep.
type MatchStepOption func(*MatchStep)

// WithMatchListener sets the listener told about the matched addresses.
func WithMatchListener(l Listener) MatchStepOption {
	return func(s *MatchStep) {
		s.listener = l
	}
}

// NewMatchStep returns a MatchStep.
func NewMatchStep(matcher *extract.Matcher, opts ...MatchStepOption) *MatchStep {
	if matcher == nil {
		matcher = extract.NewMatcher()
	}
	s := &MatchStep{matcher: matcher}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name implements Step.
func (s *MatchStep) Name() string {
	return StepMatch
}

// Do implements Step. Nothing happens when no page was downloaded.
func (s *MatchStep) Do(_ context.Context, report *model.ScanReport) error {
	if report.Page == nil {
		return nil
	}

	result := s.matcher.Match(report.Page.Text(), domain.Name(report.Domain), report.HasDomain)
	report.Matches = result.Matches
	report.Emails = result.Emails
	report.NoneFound = result.NoneFound

	emails := result.Emails.Sorted()
	report.Items = make([]model.EmailItem, 0, len(emails))
	for _, e := range emails {
		report.Items = append(report.Items, model.EmailItem{
			Email:   e,
			State:   model.CheckPending,
			Addable: true,
		})
	}

	if s.listener != nil {
		s.listener(emails)
	}
	return nil
}

// ExistenceStep checks each displayed address, one call at a time, in
// presentation order.
type ExistenceStep struct {
	checker Checker
	logger  *slog.Logger
}

// NewExistenceStep returns an ExistenceStep.
func NewExistenceStep(checker Checker, logger *slog.Logger) *ExistenceStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExistenceStep{checker: checker, logger: logger}
}

// Name implements Step.
func (s *ExistenceStep) Name() string {
	return StepExistence
}

// Do implements Step. A known address loses its add action. A failed
// check marks the address unknown and keeps it addable.
func (s *ExistenceStep) Do(ctx context.Context, report *model.ScanReport) error {
	for i := range report.Items {
		if err := ctx.Err(); err != nil {
			return err
		}

		item := &report.Items[i]
		exists, err := s.checker.CheckEmail(ctx, item.Email)
		switch {
		case err != nil:
			s.logger.Warn("error checking email existence", "email", item.Email, "error", err)
			item.State = model.CheckUnknown
			item.CheckError = err.Error()
			item.Addable = true
		case exists:
			item.State = model.CheckExists
			item.Addable = false
		default:
			item.State = model.CheckNew
			item.Addable = true
		}
	}
	return nil
}
