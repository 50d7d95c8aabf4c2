package main

import (
	"fmt"
	"os"

	"github.com/nao1215/leadscan/internal/config"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for leadscan.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "leadscan",
		Short: "Collect email leads from web pages",
		Long: `leadscan collects email leads from a web page.

It downloads the page, extracts the email addresses that belong to the
page's domain (plus gmail.com), asks the lead service which of them are
already recorded and lets you submit the new ones under a category.

The last selected category is remembered in a local database under the
XDG data directory.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	flags := cmd.PersistentFlags()
	flags.BoolP("verbose", "v", false, "Enable verbose logging")
	flags.StringP("config", "c", "",
		"Configuration file path (default: .leadscan in current or home directory)")
	flags.String("api-url", config.DefaultAPIBaseURL, "Base URL of the lead service")
	flags.String("proxy", "", "SOCKS5 proxy address for all requests (e.g., 127.0.0.1:9050)")
	flags.DurationP("timeout", "t", config.DefaultTimeout, "Timeout for each HTTP request")
	flags.String("data-dir", "", "Directory of the local database (default: XDG data directory)")

	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewSubmitCmd())
	cmd.AddCommand(NewCategoryCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
