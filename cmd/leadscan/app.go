package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/nao1215/leadscan/internal/category"
	"github.com/nao1215/leadscan/internal/config"
	"github.com/nao1215/leadscan/internal/fetch"
	"github.com/nao1215/leadscan/internal/leadapi"
	"github.com/nao1215/leadscan/internal/log"
	"github.com/nao1215/leadscan/internal/pipeline"
	"github.com/nao1215/leadscan/internal/prompt"
	"github.com/nao1215/leadscan/internal/store"
	"github.com/nao1215/leadscan/internal/transport"
	"github.com/spf13/cobra"
)

// errNoCategory is returned when neither --category nor a remembered
// selection is available.
var errNoCategory = fmt.Errorf("%w: use --category or 'leadscan category select <name>'", pipeline.ErrNoCategory)

// buildConfig creates a Config from the configuration file and the global
// flags. Flags that were set explicitly win over the file.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	var err error
	cfg.Verbose, err = flags.GetBool("verbose")
	if err != nil {
		return nil, err
	}

	cfg.ConfigFilePath, err = flags.GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicit path must exist; otherwise a missing file means defaults.
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(file)
	case explicitConfigPath:
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if flags.Changed("api-url") {
		if cfg.APIBaseURL, err = flags.GetString("api-url"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("proxy") {
		if cfg.ProxyAddress, err = flags.GetString("proxy"); err != nil {
			return nil, err
		}
	}
	if cfg.Timeout, err = flags.GetDuration("timeout"); err != nil {
		return nil, err
	}

	dataDir, err := flags.GetString("data-dir")
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DBDir = dataDir
	}

	return cfg, nil
}

// setupLogger creates the secure structured logger for a command and makes
// it the default.
func setupLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	logger := log.NewSecureLogger(cmd.ErrOrStderr(), verbose)
	slog.SetDefault(logger)
	return logger
}

// app holds the collaborators shared by the commands.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *store.Store
	dialer *transport.Client
	api    *leadapi.Client
}

// newApp opens the local store and builds the lead service client.
// The caller must call Close.
func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	dialer, err := transport.NewClient(cfg.ProxyAddress, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP transport: %w", err)
	}

	db, err := store.Open(cfg.DBDir, store.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug("database opened", "path", db.Path())

	opts := []leadapi.Option{
		leadapi.WithHTTPClient(dialer.NewHTTPClient()),
		leadapi.WithLogger(logger),
	}
	if cfg.APIToken != "" {
		opts = append(opts, leadapi.WithToken(cfg.APIToken))
	}

	return &app{
		cfg:    cfg,
		logger: logger,
		store:  db,
		dialer: dialer,
		api:    leadapi.NewClient(cfg.APIBaseURL, opts...),
	}, nil
}

// Close releases the local store.
func (a *app) Close() error {
	return a.store.Close()
}

// pageFetcher returns a fetcher that sends the site settings configured
// for the host of pageURL.
func (a *app) pageFetcher(pageURL string) *fetch.PageFetcher {
	var site config.SiteConfig
	if u, err := url.Parse(pageURL); err == nil {
		site = a.cfg.SiteConfig(u.Hostname())
	}

	return fetch.NewPageFetcher(
		a.dialer.HTTPClientWithConfig(site.Cookie, site.Headers),
		fetch.WithUserAgent(a.cfg.UserAgent),
		fetch.WithMaxBodySize(a.cfg.MaxBodySize),
		fetch.WithLogger(a.logger),
	)
}

// submitter returns the add action wired to the lead service and the store.
func (a *app) submitter() *pipeline.Submitter {
	opts := []pipeline.SubmitterOption{
		pipeline.WithSettings(a.store),
		pipeline.WithProfessionalNetwork(a.cfg.ProfessionalNetwork),
		pipeline.WithStrictExistence(a.cfg.StrictExistence),
		pipeline.WithSubmitterLogger(a.logger),
	}
	if a.cfg.SaveToDB {
		opts = append(opts, pipeline.WithHistory(a.store))
	}
	return pipeline.NewSubmitter(a.api, a.api, opts...)
}

// categoryManager returns a manager that shows notices through alerter.
func (a *app) categoryManager(alerter prompt.Alerter) *category.Manager {
	return category.NewManager(a.api, a.store,
		category.WithAlerter(alerter),
		category.WithLogger(a.logger),
	)
}

// resolveCategory returns the --category value or the remembered selection.
func (a *app) resolveCategory(ctx context.Context) (string, error) {
	if a.cfg.Category != "" {
		return a.cfg.Category, nil
	}
	name, ok, err := a.store.Get(ctx, config.CategoryKey)
	if err != nil {
		return "", fmt.Errorf("failed to read selected category: %w", err)
	}
	if !ok || name == "" {
		return "", errNoCategory
	}
	return name, nil
}

// newPrompter asks on the command's input. A terminal gets the
// interactive printers; anything else is read line by line.
func newPrompter(cmd *cobra.Command) prompt.Prompter {
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		return prompt.New(f, cmd.ErrOrStderr())
	}
	return prompt.NewLinePrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
}

// isCancelled reports whether err came from an interrupted context.
func isCancelled(err error) bool {
	return errors.Is(err, context.Canceled)
}
