package extract

import (
	"log/slog"
	"regexp"

	"github.com/nao1215/leadscan/internal/domain"
	"github.com/nao1215/leadscan/internal/model"
)

// emailPattern is the fixed candidate pattern. It is applied to the whole
// text, case-insensitively and across lines.
var emailPattern = regexp.MustCompile(`(?im)[\w.=-]+@[\w.-]+\.[\w]{2,3}`)

// Result is the outcome of matching one page.
type Result struct {
	// Matches is every distinct pattern match.
	Matches *model.EmailSet

	// Emails is Matches narrowed to the page domain.
	Emails *model.EmailSet

	// NoneFound reports the explicit "no emails found" state: nothing
	// matched, or nothing survived narrowing.
	NoneFound bool
}

// Matcher extracts and narrows email addresses.
type Matcher struct {
	rule   SuffixRule
	logger *slog.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithRule replaces DefaultRule.
func WithRule(rule SuffixRule) Option {
	return func(m *Matcher) {
		m.rule = rule
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) {
		m.logger = logger
	}
}

// NewMatcher returns a Matcher using DefaultRule.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		rule:   DefaultRule,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// FindAll returns the distinct pattern matches in text.
func (m *Matcher) FindAll(text string) *model.EmailSet {
	return model.NewEmailSet(emailPattern.FindAllString(text, -1)...)
}

// Match finds the addresses in text and narrows them to d. Without a domain
// (hasDomain false) every match is kept.
func (m *Matcher) Match(text string, d domain.Name, hasDomain bool) Result {
	matches := m.FindAll(text)
	if matches.IsEmpty() {
		m.logger.Debug("no email candidates in page text")
		return Result{Matches: matches, Emails: model.NewEmailSet(), NoneFound: true}
	}

	emails := matches
	if hasDomain {
		emails = matches.Filter(func(email string) bool {
			return m.rule.Keep(email, d.String())
		})
	}

	m.logger.Debug("matched email candidates",
		"domain", d.String(),
		"matches", matches.Len(),
		"kept", emails.Len(),
	)

	return Result{
		Matches:   matches,
		Emails:    emails,
		NoneFound: emails.IsEmpty(),
	}
}
