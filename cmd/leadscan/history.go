package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/leadscan/internal/report"
	"github.com/spf13/cobra"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show local scan and submission history",
		Long: `History lists the scans and submissions recorded in the local database.

Examples:
  # List recent scans
  leadscan history

  # List submitted leads
  leadscan history --submissions

  # Show a stored scan report again
  leadscan history --scan-id 3`,
		Args: cobra.NoArgs,
		RunE: runHistoryCmd,
	}

	cmd.Flags().BoolP("submissions", "s", false, "List submitted leads instead of scans")
	cmd.Flags().IntP("limit", "n", 20, "Maximum number of entries (0 for all)")
	cmd.Flags().Int64("scan-id", 0, "Print the stored report of a scan")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	submissions, err := cmd.Flags().GetBool("submissions")
	if err != nil {
		return err
	}
	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	scanID, err := cmd.Flags().GetInt64("scan-id")
	if err != nil {
		return err
	}

	logger := setupLogger(cmd, cfg.Verbose)
	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	switch {
	case scanID > 0:
		return showScan(cmd, a, scanID)
	case submissions:
		return listSubmissions(cmd, a, out, limit)
	default:
		return listScans(cmd, a, out, limit)
	}
}

func listScans(cmd *cobra.Command, a *app, out io.Writer, limit int) error {
	scans, err := a.store.ListScans(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to get scan history: %w", err)
	}

	if len(scans) == 0 {
		fmt.Fprintln(out, "No scan history found.")
		fmt.Fprintln(out, "\nUse 'leadscan scan <page-url>' to scan a page.")
		return nil
	}

	fmt.Fprintf(out, "Scan history (%d scans):\n\n", len(scans))
	fmt.Fprintf(out, "  %-6s  %-20s  %-6s  %-24s  %s\n", "ID", "Date", "Emails", "Domain", "Page")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 80))
	for _, s := range scans {
		domain := s.Domain
		if domain == "" {
			domain = "-"
		}
		fmt.Fprintf(out, "  %-6d  %-20s  %-6d  %-24s  %s\n",
			s.ID,
			s.Timestamp.Local().Format("2006-01-02 15:04:05"),
			s.EmailCount,
			domain,
			s.PageURL,
		)
	}

	fmt.Fprintln(out, "\nUse 'leadscan history --scan-id <id>' to show a stored report.")
	return nil
}

func listSubmissions(cmd *cobra.Command, a *app, out io.Writer, limit int) error {
	subs, err := a.store.ListSubmissions(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("failed to get submission history: %w", err)
	}

	if len(subs) == 0 {
		fmt.Fprintln(out, "No submissions found.")
		return nil
	}

	fmt.Fprintf(out, "Submissions (%d):\n\n", len(subs))
	fmt.Fprintf(out, "  %-20s  %-32s  %-20s  %s\n", "Date", "Email", "Category", "Endpoint")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 80))
	for _, s := range subs {
		fmt.Fprintf(out, "  %-20s  %-32s  %-20s  %s\n",
			s.Timestamp.Local().Format("2006-01-02 15:04:05"),
			s.Email,
			s.Category,
			s.Endpoint,
		)
	}
	return nil
}

func showScan(cmd *cobra.Command, a *app, id int64) error {
	scanReport, err := a.store.GetScanByID(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get scan %d: %w", id, err)
	}
	if scanReport == nil {
		return fmt.Errorf("scan %d not found", id)
	}

	_, err = report.NewSimpleWriter(cmd.OutOrStdout(), report.WithVerbose(a.cfg.Verbose)).Write(scanReport)
	return err
}
