package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/leadscan/internal/pipeline"
	"github.com/nao1215/leadscan/internal/prompt"
	"github.com/spf13/cobra"
)

// NewSubmitCmd creates the submit command.
func NewSubmitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit <page-url> <email>",
		Short: "Submit one email lead found on a page",
		Long: `Submit saves one email address to the lead service.

The address is checked again first and is not sent when it is already
recorded. Leads found on linkedin.com go to the LinkedIn endpoint, all
others are saved together with the page domain. The category used is
remembered for the next run.

Examples:
  # Submit under the remembered category
  leadscan submit https://www.example.com/contact sales@example.com

  # Submit under another category
  leadscan submit --category "Agencies" https://www.example.com/contact sales@example.com`,
		Args: cobra.ExactArgs(2),
		RunE: runSubmitCmd,
	}

	cmd.Flags().String("category", "",
		"Category for the submission (default: the remembered selection)")
	cmd.Flags().Bool("strict", false,
		"Refuse to submit when the existence check fails")

	return cmd
}

// runSubmitCmd executes the submit command.
func runSubmitCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	cfg.PageURL = args[0]
	if cfg.Category, err = cmd.Flags().GetString("category"); err != nil {
		return err
	}
	if cfg.StrictExistence, err = cmd.Flags().GetBool("strict"); err != nil {
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

	categoryName, err := a.resolveCategory(ctx)
	if err != nil {
		return err
	}

	email := args[1]
	outcome, err := a.submitter().Submit(ctx, cfg.PageURL, email, categoryName)
	announceOutcome(prompt.NewAlerter(cmd.ErrOrStderr()), email, outcome, err)

	switch outcome {
	case pipeline.OutcomeSaved, pipeline.OutcomeDuplicate:
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", outcome, email, categoryName)
		return nil
	default:
		if err == nil {
			err = fmt.Errorf("submission of %s failed", email)
		}
		return err
	}
}
