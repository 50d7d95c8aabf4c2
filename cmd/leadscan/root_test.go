package main

import (
	"testing"

	"github.com/nao1215/leadscan/internal/config"
)

// TestNewRootCmd tests the root command creation.
func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "leadscan" {
			t.Errorf("expected use 'leadscan', got %q", cmd.Use)
		}
	})

	t.Run("has version", func(t *testing.T) {
		t.Parallel()
		if cmd.Version == "" {
			t.Error("expected non-empty version")
		}
	})

	t.Run("has global flags", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name      string
			shorthand string
			def       string
		}{
			{"verbose", "v", "false"},
			{"config", "c", ""},
			{"api-url", "", config.DefaultAPIBaseURL},
			{"proxy", "", ""},
			{"timeout", "t", config.DefaultTimeout.String()},
			{"data-dir", "", ""},
		}
		for _, tt := range tests {
			flag := cmd.PersistentFlags().Lookup(tt.name)
			if flag == nil {
				t.Errorf("expected flag %q", tt.name)
				continue
			}
			if flag.Shorthand != tt.shorthand {
				t.Errorf("flag %q: expected shorthand %q, got %q", tt.name, tt.shorthand, flag.Shorthand)
			}
			if flag.DefValue != tt.def {
				t.Errorf("flag %q: expected default %q, got %q", tt.name, tt.def, flag.DefValue)
			}
		}
	})

	t.Run("has subcommands", func(t *testing.T) {
		t.Parallel()

		want := map[string]bool{
			"scan": false, "submit": false, "category": false,
			"history": false, "init": false, "version": false,
		}
		for _, sub := range cmd.Commands() {
			if _, ok := want[sub.Name()]; ok {
				want[sub.Name()] = true
			}
		}
		for name, found := range want {
			if !found {
				t.Errorf("expected %s subcommand", name)
			}
		}
	})

	t.Run("silences usage and errors", func(t *testing.T) {
		t.Parallel()
		if !cmd.SilenceUsage {
			t.Error("expected SilenceUsage to be true")
		}
		if !cmd.SilenceErrors {
			t.Error("expected SilenceErrors to be true")
		}
	})
}

func TestBuildConfig(t *testing.T) {
	t.Run("flags override the config file", func(t *testing.T) {
		env := newTestEnv(t, "https://file.example.com")

		cmd := NewRootCmd()
		if err := cmd.ParseFlags([]string{
			"-c", env.configPath,
			"--api-url", "https://flag.example.com",
			"--proxy", "127.0.0.1:9050",
			"-t", "5s",
			"--data-dir", env.dataDir,
		}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.APIBaseURL != "https://flag.example.com" {
			t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
		}
		if cfg.ProxyAddress != "127.0.0.1:9050" {
			t.Errorf("ProxyAddress = %q", cfg.ProxyAddress)
		}
		if cfg.Timeout.String() != "5s" {
			t.Errorf("Timeout = %s", cfg.Timeout)
		}
		if cfg.DBDir != env.dataDir {
			t.Errorf("DBDir = %q, want %q", cfg.DBDir, env.dataDir)
		}
	})

	t.Run("config file applies without flags", func(t *testing.T) {
		env := newTestEnv(t, "https://file.example.com")

		cmd := NewRootCmd()
		if err := cmd.ParseFlags([]string{"-c", env.configPath}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.APIBaseURL != "https://file.example.com" {
			t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
		}
		if cfg.File == nil {
			t.Error("expected loaded file")
		}
	})
}
