package pipeline

import (
	"log/slog"

	"github.com/nao1215/leadscan/internal/domain"
	"github.com/nao1215/leadscan/internal/extract"
)

// DefaultPipelineConfig holds the settings of the default scan pipeline.
type DefaultPipelineConfig struct {
	// Rule narrows matches to the page domain.
	Rule extract.SuffixRule

	// Listener is told which addresses the scan shows.
	Listener Listener

	// SkipExistence leaves every item pending and addable.
	SkipExistence bool

	// Logger is shared by every step.
	Logger *slog.Logger
}

// DefaultPipelineOption configures a DefaultPipelineConfig.
type DefaultPipelineOption func(*DefaultPipelineConfig)

// WithPipelineRule sets the narrowing rule.
func WithPipelineRule(rule extract.SuffixRule) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Rule = rule
	}
}

// WithPipelineListener sets the listener.
func WithPipelineListener(l Listener) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Listener = l
	}
}

// WithPipelineSkipExistence disables the existence step.
func WithPipelineSkipExistence(skip bool) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.SkipExistence = skip
	}
}

// WithPipelineLogger sets the logger.
func WithPipelineLogger(logger *slog.Logger) DefaultPipelineOption {
	return func(c *DefaultPipelineConfig) {
		c.Logger = logger
	}
}

// DefaultPipeline builds domain, fetch, match and existence steps. The
// pipeline continues after step errors so one failure never hides the
// rest of the report.
func DefaultPipeline(fetcher Fetcher, checker Checker, opts ...DefaultPipelineOption) *Pipeline {
	cfg := &DefaultPipelineConfig{
		Rule:   extract.DefaultRule,
		Logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	p := New(WithLogger(cfg.Logger), WithContinueOnError(true))
	p.AddSteps(
		NewDomainStep(domain.NewExtractor(domain.WithLogger(cfg.Logger))),
		NewFetchStep(fetcher,
			WithFetchListener(cfg.Listener),
			WithFetchLogger(cfg.Logger),
		),
		NewMatchStep(
			extract.NewMatcher(extract.WithRule(cfg.Rule), extract.WithLogger(cfg.Logger)),
			WithMatchListener(cfg.Listener),
		),
	)
	if !cfg.SkipExistence && checker != nil {
		p.AddStep(NewExistenceStep(checker, cfg.Logger))
	}
	return p
}
