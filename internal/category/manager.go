// Package category manages lead categories on the lead service and the
// locally remembered selection.
package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/leadscan/internal/leadapi"
	"github.com/nao1215/leadscan/internal/model"
)

// SettingKey is the local store key holding the selected category name.
const SettingKey = "category"

// Notices shown to the operator.
const (
	MsgCreated       = "New category added successfully!"
	MsgCreateFailed  = "Failed to add the new category. Please try again."
	MsgCreateErrored = "An error occurred while adding the category. Please try again."
	MsgListFailed    = "Failed to load categories."
	MsgAskName       = "Enter the name of the new category:"
)

var (
	// ErrEmptyCategory is returned when the new category name is empty,
	// which is how a cancelled prompt arrives.
	ErrEmptyCategory = errors.New("category name is empty")

	// ErrUnknownCategory is returned when selecting a name the lead
	// service does not know.
	ErrUnknownCategory = errors.New("unknown category")
)

// Service is the part of the lead service the manager uses.
type Service interface {
	Categories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, name string) error
}

// Settings persists the selection.
type Settings interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Alerter shows blocking notices.
type Alerter interface {
	Success(msg string)
	Failure(msg string)
}

// Asker asks for a free-text answer.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Manager lists, creates and selects categories.
type Manager struct {
	service  Service
	settings Settings
	alerter  Alerter
	logger   *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithAlerter sets where notices go. Without one, notices are only logged.
func WithAlerter(a Alerter) Option {
	return func(m *Manager) {
		m.alerter = a
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager returns a Manager. settings may be nil, in which case the
// selection is not remembered.
func NewManager(service Service, settings Settings, opts ...Option) *Manager {
	m := &Manager{
		service:  service,
		settings: settings,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// List fetches every category. A failure is logged and alerted.
func (m *Manager) List(ctx context.Context) ([]model.Category, error) {
	categories, err := m.service.Categories(ctx)
	if err != nil {
		m.logger.Error("failed to fetch categories", "error", err)
		m.failure(MsgListFailed)
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// Options renders the categories as options, marking the one whose name
// equals selected.
func (m *Manager) Options(ctx context.Context, selected string) ([]model.Option, error) {
	categories, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	return model.NewOptions(categories, selected), nil
}

// Create adds a category and returns the re-fetched list. An empty name is
// a no-op returning ErrEmptyCategory. The create request is never retried.
func (m *Manager) Create(ctx context.Context, name string) ([]model.Category, error) {
	if name == "" {
		return nil, ErrEmptyCategory
	}

	if err := m.service.CreateCategory(ctx, name); err != nil {
		m.logger.Error("failed to add category", "category", name, "error", err)
		if errors.Is(err, leadapi.ErrUnexpectedStatus) {
			m.failure(MsgCreateFailed)
		} else {
			m.failure(MsgCreateErrored)
		}
		return nil, fmt.Errorf("failed to add category %q: %w", name, err)
	}

	m.success(MsgCreated)
	m.logger.Info("category added", "category", name)
	return m.List(ctx)
}

// Prompt asks for a category name and creates it. A cancelled prompt
// returns ErrEmptyCategory without calling the lead service.
func (m *Manager) Prompt(ctx context.Context, asker Asker) ([]model.Category, error) {
	name, err := asker.Ask(ctx, MsgAskName)
	if err != nil {
		return nil, err
	}
	return m.Create(ctx, name)
}

// Select remembers name as the selected category after checking that the
// lead service knows it.
func (m *Manager) Select(ctx context.Context, name string) error {
	categories, err := m.List(ctx)
	if err != nil {
		return err
	}

	found := false
	for _, c := range categories {
		if c.Name == name {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return m.Remember(ctx, name)
}

// Remember stores name as the selection without contacting the service.
func (m *Manager) Remember(ctx context.Context, name string) error {
	if m.settings == nil {
		return nil
	}
	if err := m.settings.Set(ctx, SettingKey, name); err != nil {
		return fmt.Errorf("failed to remember category: %w", err)
	}
	return nil
}

// Selected returns the remembered category name, or "".
func (m *Manager) Selected(ctx context.Context) (string, error) {
	if m.settings == nil {
		return "", nil
	}
	name, _, err := m.settings.Get(ctx, SettingKey)
	if err != nil {
		return "", fmt.Errorf("failed to load selected category: %w", err)
	}
	return name, nil
}

func (m *Manager) success(msg string) {
	if m.alerter != nil {
		m.alerter.Success(msg)
	}
}

func (m *Manager) failure(msg string) {
	if m.alerter != nil {
		m.alerter.Failure(msg)
	}
}
