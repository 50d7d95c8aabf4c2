package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/leadscan/internal/category"
	"github.com/nao1215/leadscan/internal/config"
	"github.com/nao1215/leadscan/internal/model"
	"github.com/nao1215/leadscan/internal/prompt"
	"github.com/spf13/cobra"
)

// NewCategoryCmd creates the category command and its subcommands.
func NewCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage lead categories",
		Long: `Category lists and creates the categories stored on the lead service
and selects the one used for submissions.

Examples:
  # List categories, the selected one is marked with *
  leadscan category list

  # Create a category (asks for the name when omitted)
  leadscan category add "Agencies"

  # Select the category used by scan -i and submit
  leadscan category select "Agencies"`,
	}

	cmd.AddCommand(newCategoryListCmd())
	cmd.AddCommand(newCategoryAddCmd())
	cmd.AddCommand(newCategorySelectCmd())

	return cmd
}

func newCategoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE:  runCategoryListCmd,
	}
}

func newCategoryAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [name]",
		Short: "Create a category",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCategoryAddCmd,
	}
}

func newCategorySelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select <name>",
		Short: "Select the category used for submissions",
		Args:  cobra.ExactArgs(1),
		RunE:  runCategorySelectCmd,
	}
}

// withCategoryManager builds the app and a manager, and runs fn.
func withCategoryManager(cmd *cobra.Command, fn func(a *app, m *category.Manager) error) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(a, a.categoryManager(prompt.NewAlerter(cmd.ErrOrStderr())))
}

func runCategoryListCmd(cmd *cobra.Command, _ []string) error {
	return withCategoryManager(cmd, func(_ *app, m *category.Manager) error {
		ctx := cmd.Context()
		selected, err := m.Selected(ctx)
		if err != nil {
			return err
		}
		options, err := m.Options(ctx, selected)
		if err != nil {
			return err
		}
		printOptions(cmd.OutOrStdout(), options)
		return nil
	})
}

func runCategoryAddCmd(cmd *cobra.Command, args []string) error {
	return withCategoryManager(cmd, func(a *app, m *category.Manager) error {
		ctx := cmd.Context()

		var (
			categories []model.Category
			err        error
		)
		if len(args) == 1 {
			categories, err = m.Create(ctx, strings.TrimSpace(args[0]))
		} else {
			categories, err = m.Prompt(ctx, newPrompter(cmd))
		}
		if errors.Is(err, category.ErrEmptyCategory) {
			a.logger.Debug("category creation cancelled")
			return nil
		}
		if err != nil {
			return err
		}

		selected, err := m.Selected(ctx)
		if err != nil {
			return err
		}
		printOptions(cmd.OutOrStdout(), model.NewOptions(categories, selected))
		return nil
	})
}

func runCategorySelectCmd(cmd *cobra.Command, args []string) error {
	return withCategoryManager(cmd, func(_ *app, m *category.Manager) error {
		name := strings.TrimSpace(args[0])
		if err := m.Select(cmd.Context(), name); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Selected category: %s (stored under %q)\n", name, config.CategoryKey)
		return nil
	})
}

// printOptions prints one category per line, marking the selected one.
func printOptions(w io.Writer, options []model.Option) {
	if len(options) == 0 {
		fmt.Fprintln(w, "No categories found.")
		fmt.Fprintln(w, "\nUse 'leadscan category add <name>' to create one.")
		return
	}
	for _, o := range options {
		marker := " "
		if o.Selected {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %s\t%s\n", marker, o.Text, o.Value)
	}
}
