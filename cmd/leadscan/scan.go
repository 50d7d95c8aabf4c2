package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/leadscan/internal/extract"
	"github.com/nao1215/leadscan/internal/model"
	"github.com/nao1215/leadscan/internal/pipeline"
	"github.com/nao1215/leadscan/internal/prompt"
	"github.com/nao1215/leadscan/internal/report"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <page-url>",
		Short: "Extract email leads from a web page",
		Long: `Scan downloads a web page and lists the email addresses found on it.

Only addresses ending in @<page domain> or @gmail.com are kept. The page
domain is the host name with everything up to the first "www" label
removed. Each address is checked against the lead service:

  [add]      not recorded yet, can be submitted
  [exists]   already recorded
  [unknown]  the check failed, the address can still be submitted
  [saved]    submitted during this run

With --interactive you are asked for every address that can be added,
and accepted ones are submitted under the selected category.

Examples:
  # List the leads on a page
  leadscan scan https://www.example.com/contact

  # Submit new leads one by one under the remembered category
  leadscan scan -i https://www.example.com/contact

  # Use another category for this run only
  leadscan scan -i --category "Agencies" https://www.example.com/contact

  # Write a Markdown report
  leadscan scan -m -o reports/example.md https://www.example.com/contact`,
		Args: cobra.ExactArgs(1),
		RunE: runScanCmd,
	}

	cmd.Flags().String("category", "",
		"Category for submissions (default: the remembered selection)")
	cmd.Flags().BoolP("interactive", "i", false,
		"Ask for each new address and submit the accepted ones")
	cmd.Flags().Bool("strict", false,
		"Refuse to submit when the existence check fails")
	cmd.Flags().Bool("no-check", false,
		"Skip the existence check against the lead service")
	cmd.Flags().Bool("no-save", false,
		"Do not record the scan in the local history")

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// scanOptions holds the scan flags that are not part of Config.
type scanOptions struct {
	skipCheck bool
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	cfg.PageURL = args[0]
	if cfg.Category, err = flags.GetString("category"); err != nil {
		return err
	}
	if cfg.Interactive, err = flags.GetBool("interactive"); err != nil {
		return err
	}
	if cfg.StrictExistence, err = flags.GetBool("strict"); err != nil {
		return err
	}
	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return err
	}
	if cfg.ReportFile, err = flags.GetString("output"); err != nil {
		return err
	}
	noSave, err := flags.GetBool("no-save")
	if err != nil {
		return err
	}
	cfg.SaveToDB = !noSave

	var opts scanOptions
	if opts.skipCheck, err = flags.GetBool("no-check"); err != nil {
		return err
	}

	if err := cfg.ValidateScan(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return runScan(ctx, cmd, a, opts)
}

// runScan scans one page, optionally submits leads, then writes and
// records the report.
func runScan(ctx context.Context, cmd *cobra.Command, a *app, opts scanOptions) error {
	var categoryName string
	if a.cfg.Interactive {
		name, err := a.resolveCategory(ctx)
		if err != nil {
			return err
		}
		categoryName = name
	}

	a.logger.Info("starting scan", "page", a.cfg.PageURL, "api", a.api.BaseURL(), "proxied", a.dialer.Proxied())

	p := pipeline.DefaultPipeline(a.pageFetcher(a.cfg.PageURL), a.api,
		pipeline.WithPipelineRule(extract.NewSuffixRule(a.cfg.AllowedSuffixes...)),
		pipeline.WithPipelineSkipExistence(opts.skipCheck),
		pipeline.WithPipelineLogger(a.logger),
		pipeline.WithPipelineListener(func(emails []string) {
			a.logger.Debug("emails found", "page", a.cfg.PageURL, "count", len(emails))
		}),
	)

	scanReport := model.NewScanReport(a.cfg.PageURL)
	if err := p.Execute(ctx, scanReport); err != nil {
		return fmt.Errorf("scan of %s interrupted: %w", a.cfg.PageURL, err)
	}

	if a.cfg.Interactive {
		if err := addInteractively(ctx, cmd, a, scanReport, categoryName); err != nil {
			return err
		}
	}

	if err := outputReport(cmd.OutOrStdout(), a, scanReport); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if a.cfg.SaveToDB {
		id, err := a.store.SaveScan(ctx, scanReport)
		if err != nil {
			a.logger.Error("failed to save scan report", "page", a.cfg.PageURL, "error", err)
			return nil
		}
		a.logger.Debug("scan report saved to database", "id", id)
	}
	return nil
}

// addInteractively asks for every addable address and submits the
// accepted ones. Declined addresses stay addable.
func addInteractively(ctx context.Context, cmd *cobra.Command, a *app, scanReport *model.ScanReport, categoryName string) error {
	if scanReport.AddableCount() == 0 {
		return nil
	}

	asker := newPrompter(cmd)
	alerter := prompt.NewAlerter(cmd.ErrOrStderr())
	sub := a.submitter()

	for _, item := range scanReport.Items {
		if !item.Addable {
			continue
		}

		question := fmt.Sprintf("Add %s to %q?", item.Email, categoryName)
		if item.State == model.CheckUnknown {
			question = fmt.Sprintf("Add %s to %q? (existence unknown)", item.Email, categoryName)
		}
		ok, err := asker.Confirm(ctx, question, false)
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}
		if !ok {
			continue
		}

		outcome, err := sub.Submit(ctx, scanReport.PageURL, item.Email, categoryName)
		pipeline.ApplyOutcome(scanReport, item.Email, outcome)
		announceOutcome(alerter, item.Email, outcome, err)
		if isCancelled(err) {
			return err
		}
	}
	return nil
}

// announceOutcome tells the operator what happened to one add action.
func announceOutcome(alerter prompt.Alerter, email string, outcome pipeline.Outcome, err error) {
	switch outcome {
	case pipeline.OutcomeSaved:
		alerter.Success(fmt.Sprintf("%s saved successfully to the database!", email))
	case pipeline.OutcomeDuplicate:
		alerter.Failure(fmt.Sprintf("%s is already recorded.", email))
	default:
		if err != nil {
			alerter.Failure(fmt.Sprintf("Failed to save %s: %v", email, err))
			return
		}
		alerter.Failure(fmt.Sprintf("Failed to save %s.", email))
	}
}

// outputReport writes the report in the requested format to the report
// file, or to stdout when no file is set. With a report file the terminal
// still gets the plain text report.
func outputReport(stdout io.Writer, a *app, scanReport *model.ScanReport) error {
	output := stdout
	if a.cfg.ReportFile != "" {
		dir := filepath.Dir(a.cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Reports list personal addresses, keep them owner-only.
		f, err := os.OpenFile(a.cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	var w report.Writer
	switch {
	case a.cfg.JSONReport:
		w = report.NewJSONWriter(output, report.WithPrettyPrint(), report.WithVersion(getVersion()))
	case a.cfg.MarkdownReport:
		w = report.NewMarkdownWriter(output)
	default:
		w = report.NewSimpleWriter(output, report.WithVerbose(a.cfg.Verbose))
	}

	if output != stdout {
		w = report.NewMultiWriter(w, report.NewSimpleWriter(stdout, report.WithVerbose(a.cfg.Verbose)))
	}

	_, err := w.Write(scanReport)
	return err
}
