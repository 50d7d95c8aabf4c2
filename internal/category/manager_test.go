package category

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/nao1215/leadscan/internal/leadapi"
	"github.com/nao1215/leadscan/internal/model"
)

type fakeService struct {
	mu         sync.Mutex
	categories []model.Category
	listErr    error
	createErr  error
	created    []string
	listCalls  int
}

func (f *fakeService) Categories(context.Context) ([]model.Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]model.Category(nil), f.categories...), nil
}

func (f *fakeService) CreateCategory(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.created = append(f.created, name)
	if f.createErr != nil {
		return f.createErr
	}
	f.categories = append(f.categories, model.Category{ID: name + "-id", Name: name})
	return nil
}

type memSettings struct {
	values map[string]string
	setErr error
}

func newMemSettings() *memSettings {
	return &memSettings{values: make(map[string]string)}
}

func (s *memSettings) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memSettings) Set(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

type recordingAlerter struct {
	successes []string
	failures  []string
}

func (a *recordingAlerter) Success(msg string) { a.successes = append(a.successes, msg) }
func (a *recordingAlerter) Failure(msg string) { a.failures = append(a.failures, msg) }

type fixedAsker string

func (f fixedAsker) Ask(context.Context, string) (string, error) { return string(f), nil }

func seeded() *fakeService {
	return &fakeService{categories: []model.Category{
		{ID: "1", Name: "SaaS"},
		{ID: "2", Name: "Agencies"},
	}}
}

func TestManager_List(t *testing.T) {
	t.Parallel()

	t.Run("returns categories", func(t *testing.T) {
		t.Parallel()

		m := NewManager(seeded(), nil)
		got, err := m.List(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 {
			t.Errorf("expected 2 categories, got %d", len(got))
		}
	})

	t.Run("failure is alerted", func(t *testing.T) {
		t.Parallel()

		alerter := &recordingAlerter{}
		svc := &fakeService{listErr: errors.New("offline")}
		m := NewManager(svc, nil, WithAlerter(alerter))

		if _, err := m.List(context.Background()); err == nil {
			t.Fatal("expected error")
		}
		if len(alerter.failures) != 1 || alerter.failures[0] != MsgListFailed {
			t.Errorf("unexpected alerts %v", alerter.failures)
		}
	})
}

func TestManager_Options(t *testing.T) {
	t.Parallel()

	m := NewManager(seeded(), nil)
	options, err := m.Options(context.Background(), "Agencies")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	selected, ok := model.SelectedOption(options)
	if !ok || selected.Text != "Agencies" || selected.Value != "2" {
		t.Errorf("unexpected selection %+v (ok=%v)", selected, ok)
	}

	options, err = m.Options(context.Background(), "Gone")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := model.SelectedOption(options); ok {
		t.Error("no option should be selected for an unknown name")
	}
}

func TestManager_Create(t *testing.T) {
	t.Parallel()

	t.Run("alerts then re-fetches", func(t *testing.T) {
		t.Parallel()

		svc := seeded()
		alerter := &recordingAlerter{}
		m := NewManager(svc, nil, WithAlerter(alerter))

		got, err := m.Create(context.Background(), "Retail")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 || got[2].Name != "Retail" {
			t.Errorf("expected refreshed list with Retail, got %+v", got)
		}
		if svc.listCalls != 1 {
			t.Errorf("expected one re-fetch, got %d", svc.listCalls)
		}
		if len(alerter.successes) != 1 || alerter.successes[0] != MsgCreated {
			t.Errorf("unexpected alerts %v", alerter.successes)
		}
	})

	t.Run("empty name is a no-op", func(t *testing.T) {
		t.Parallel()

		svc := seeded()
		m := NewManager(svc, nil)

		if _, err := m.Create(context.Background(), ""); !errors.Is(err, ErrEmptyCategory) {
			t.Fatalf("expected ErrEmptyCategory, got %v", err)
		}
		if len(svc.created) != 0 {
			t.Error("service must not be called")
		}
	})

	t.Run("rejected create alerts failure without retry", func(t *testing.T) {
		t.Parallel()

		svc := seeded()
		svc.createErr = &leadapi.StatusError{Method: "POST", Path: "/api/categories", StatusCode: 409}
		alerter := &recordingAlerter{}
		m := NewManager(svc, nil, WithAlerter(alerter))

		if _, err := m.Create(context.Background(), "SaaS"); err == nil {
			t.Fatal("expected error")
		}
		if len(svc.created) != 1 {
			t.Errorf("expected exactly one attempt, got %d", len(svc.created))
		}
		if len(alerter.failures) != 1 || alerter.failures[0] != MsgCreateFailed {
			t.Errorf("unexpected alerts %v", alerter.failures)
		}
		if svc.listCalls != 0 {
			t.Error("list must not be re-fetched after a failed create")
		}
	})

	t.Run("transport error uses the generic notice", func(t *testing.T) {
		t.Parallel()

		svc := seeded()
		svc.createErr = errors.New("connection refused")
		alerter := &recordingAlerter{}
		m := NewManager(svc, nil, WithAlerter(alerter))

		if _, err := m.Create(context.Background(), "Retail"); err == nil {
			t.Fatal("expected error")
		}
		if len(alerter.failures) != 1 || alerter.failures[0] != MsgCreateErrored {
			t.Errorf("unexpected alerts %v", alerter.failures)
		}
	})
}

func TestManager_Prompt(t *testing.T) {
	t.Parallel()

	t.Run("answer creates category", func(t *testing.T) {
		t.Parallel()

		svc := seeded()
		m := NewManager(svc, nil)
		if _, err := m.Prompt(context.Background(), fixedAsker("Retail")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(svc.created) != 1 || svc.created[0] != "Retail" {
			t.Errorf("unexpected creates %v", svc.created)
		}
	})

	t.Run("cancelled prompt", func(t *testing.T) {
		t.Parallel()

		svc := seeded()
		m := NewManager(svc, nil)
		if _, err := m.Prompt(context.Background(), fixedAsker("")); !errors.Is(err, ErrEmptyCategory) {
			t.Fatalf("expected ErrEmptyCategory, got %v", err)
		}
		if len(svc.created) != 0 {
			t.Error("service must not be called")
		}
	})
}

func TestManager_Select(t *testing.T) {
	t.Parallel()

	t.Run("known category is remembered", func(t *testing.T) {
		t.Parallel()

		settings := newMemSettings()
		m := NewManager(seeded(), settings)

		if err := m.Select(context.Background(), "SaaS"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if settings.values[SettingKey] != "SaaS" {
			t.Errorf("expected SaaS to be stored, got %q", settings.values[SettingKey])
		}

		got, err := m.Selected(context.Background())
		if err != nil || got != "SaaS" {
			t.Errorf("Selected() = (%q, %v)", got, err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		t.Parallel()

		settings := newMemSettings()
		m := NewManager(seeded(), settings)

		err := m.Select(context.Background(), "Nope")
		if !errors.Is(err, ErrUnknownCategory) {
			t.Fatalf("expected ErrUnknownCategory, got %v", err)
		}
		if !strings.Contains(err.Error(), "Nope") {
			t.Errorf("expected name in error, got %v", err)
		}
		if _, ok := settings.values[SettingKey]; ok {
			t.Error("unknown category must not be stored")
		}
	})

	t.Run("storage failure", func(t *testing.T) {
		t.Parallel()

		settings := newMemSettings()
		settings.setErr = errors.New("disk full")
		m := NewManager(seeded(), settings)

		if err := m.Select(context.Background(), "SaaS"); err == nil {
			t.Error("expected error")
		}
	})
}

func TestManager_WithoutSettings(t *testing.T) {
	t.Parallel()

	m := NewManager(seeded(), nil)
	if err := m.Remember(context.Background(), "SaaS"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	got, err := m.Selected(context.Background())
	if err != nil || got != "" {
		t.Errorf("Selected() = (%q, %v), want empty", got, err)
	}
}
