package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/nao1215/leadscan/internal/model"
)

// fakeLeadService is an in-memory lead service.
type fakeLeadService struct {
	mu         sync.Mutex
	existing   map[string]bool
	categories []model.Category
	checkFails bool
	saveFails  bool
	checked    []string
	saved      []map[string]string
	linkedIn   []map[string]string
	created    []string
}

func newFakeLeadService(t *testing.T, existing ...string) (*fakeLeadService, *httptest.Server) {
	t.Helper()

	f := &fakeLeadService{
		existing: make(map[string]bool),
		categories: []model.Category{
			{ID: "1", Name: "Sales"},
			{ID: "2", Name: "Agencies"},
		},
	}
	for _, e := range existing {
		f.existing[e] = true
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/check-emails", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Email string `json:"email"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck // test server
		f.mu.Lock()
		defer f.mu.Unlock()
		f.checked = append(f.checked, body.Email)
		if f.checkFails {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		writeJSON(w, map[string]bool{"exists": f.existing[body.Email]})
	})
	mux.HandleFunc("POST /api/save-emails", func(w http.ResponseWriter, r *http.Request) {
		f.save(w, r, &f.saved)
	})
	mux.HandleFunc("POST /api/save-linkedin-data", func(w http.ResponseWriter, r *http.Request) {
		f.save(w, r, &f.linkedIn)
	})
	mux.HandleFunc("GET /api/categories", func(w http.ResponseWriter, _ *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		writeJSON(w, f.categories)
	})
	mux.HandleFunc("POST /api/categories", func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Category string `json:"category"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck // test server
		f.mu.Lock()
		defer f.mu.Unlock()
		f.created = append(f.created, body.Category)
		f.categories = append(f.categories, model.Category{ID: "new", Name: body.Category})
		writeJSON(w, map[string]string{"message": "ok"})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return f, server
}

func (f *fakeLeadService) save(w http.ResponseWriter, r *http.Request, into *[]map[string]string) {
	var body map[string]string
	_ = json.NewDecoder(r.Body).Decode(&body) //nolint:errcheck // test server
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveFails {
		http.Error(w, "boom", http.StatusInternalServerError)
		return
	}
	*into = append(*into, body)
	f.existing[body["Email"]] = true
	writeJSON(w, map[string]string{"message": "saved"})
}

func (f *fakeLeadService) fail(check, save bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.checkFails = check
	f.saveFails = save
}

func (f *fakeLeadService) savedEmails() []map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]string(nil), f.saved...)
}

func (f *fakeLeadService) linkedInEmails() []map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]string(nil), f.linkedIn...)
}

func (f *fakeLeadService) checkedEmails() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.checked...)
}

func (f *fakeLeadService) createdCategories() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.created...)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v) //nolint:errcheck // test server
}

// newPageServer serves body as an HTML page at every path.
func newPageServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body) //nolint:errcheck // test server
	}))
	t.Cleanup(server.Close)
	return server
}

// contactPage lists two webmail leads and one foreign address.
const contactPage = `<html><head><title>Contact</title></head><body>
<p>Sales: <a href="mailto:sales@gmail.com">sales@gmail.com</a></p>
<p>Jobs: jobs@gmail.com</p>
<p>Partner: ceo@other.org</p>
</body></html>`

// testEnv is an isolated data directory and config file.
type testEnv struct {
	dataDir    string
	configPath string
}

func newTestEnv(t *testing.T, apiURL string) testEnv {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "leadscan.yaml")
	content := "apiURL: " + apiURL + "\nallowedSuffixes:\n  - gmail.com\n"
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return testEnv{dataDir: filepath.Join(dir, "data"), configPath: configPath}
}

// run executes the root command with the environment's global flags.
func (e testEnv) run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "-c", e.configPath, "--data-dir", e.dataDir))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
