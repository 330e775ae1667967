// Package init provides the init command for shortcode.
package init

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/api"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/internal/config"
	"github.com/open-cli-collective/shortcode-cli/internal/view"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

// answers holds the values collected by the init form.
type answers struct {
	storeURL     string
	storeToken   string
	outputFormat string
	acceptedTags string
}

// NewCmdInit creates the init command.
func NewCmdInit() *cobra.Command {
	var (
		storeURL string
		noVerify bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize shortcode configuration",
		Long: `Initialize shortcode configuration.

This command will guide you through choosing the default output format, the
tags the parser recognizes and, optionally, the page store used by the
'page' commands. The configuration will be saved to
~/.config/shortcode/config.yml.`,
		Example: `  # Interactive setup
  shortcode init

  # Pre-populate the page store URL
  shortcode init --store-url https://pages.example.com`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.GlobalsFrom(cmd)
			return runInit(cmd.Context(), g.Path(), storeURL, noVerify, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&storeURL, "store-url", "", "Page store URL (e.g., https://pages.example.com)")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "Skip connection verification")

	return cmd
}

func runInit(ctx context.Context, configPath, prefillURL string, noVerify bool, out io.Writer) error {
	// Check if config already exists
	if _, err := os.Stat(configPath); err == nil {
		var overwrite bool
		err := huh.NewConfirm().
			Title("Configuration already exists").
			Description(fmt.Sprintf("Overwrite %s?", configPath)).
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Fprintln(out, "Initialization cancelled.")
			return nil
		}
	}

	a := &answers{storeURL: prefillURL, outputFormat: string(view.FormatTable)}

	formatOptions := make([]huh.Option[string], 0, len(view.ValidFormats()))
	for _, f := range view.ValidFormats() {
		formatOptions = append(formatOptions, huh.NewOption(f, f))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output format").
				Description("Default for commands that print tables or trees").
				Options(formatOptions...).
				Value(&a.outputFormat),

			huh.NewInput().
				Title("Accepted tags (optional)").
				Description("Comma-separated tags to recognize; empty means every registered tag").
				Placeholder("box,circle,triangle").
				Value(&a.acceptedTags).
				Validate(validateTagList),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Page store URL (optional)").
				Description("Needed for the page commands").
				Placeholder("https://pages.example.com").
				Value(&a.storeURL),

			huh.NewInput().
				Title("Page store token (optional)").
				Description("Sent as a bearer token").
				EchoMode(huh.EchoModePassword).
				Value(&a.storeToken),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	cfg, err := a.config()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// Verify connection unless skipped or no store configured
	if !noVerify && cfg.StoreURL != "" {
		fmt.Fprint(out, "Verifying connection... ")
		if err := verifyConnection(ctx, cfg); err != nil {
			fmt.Fprintln(out, "failed!")
			return fmt.Errorf("connection verification failed: %w", err)
		}
		fmt.Fprintln(out, "success!")
	}

	if err := cfg.Save(configPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nConfiguration saved to %s\n", configPath)
	fmt.Fprintln(out, "\nYou're all set! Try running:")
	fmt.Fprintln(out, "  shortcode tags")
	fmt.Fprintln(out, "  shortcode check <file>")
	if cfg.StoreURL != "" {
		fmt.Fprintln(out, "  shortcode page list")
	}

	return nil
}

// config converts form answers into a validated config.
func (a *answers) config() (*config.Config, error) {
	cfg := &config.Config{
		OutputFormat: a.outputFormat,
		StoreURL:     strings.TrimSuffix(strings.TrimSpace(a.storeURL), "/"),
		StoreToken:   strings.TrimSpace(a.storeToken),
	}
	for _, tag := range strings.Split(a.acceptedTags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			cfg.AcceptedTags = append(cfg.AcceptedTags, tag)
		}
	}
	if err := validateTagList(a.acceptedTags); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateTagList(s string) error {
	for _, tag := range strings.Split(s, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" && !shortcode.ValidTagName(tag) {
			return fmt.Errorf("invalid tag name: %q", tag)
		}
	}
	return nil
}

func verifyConnection(ctx context.Context, cfg *config.Config) error {
	client := api.NewClient(cfg.StoreURL, cfg.StoreToken)

	_, err := client.ListPages(ctx, &api.ListPagesOptions{Limit: 1})
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, api.ErrUnauthorized):
		return fmt.Errorf("authentication failed - check your store token")
	case errors.Is(err, api.ErrForbidden):
		return fmt.Errorf("access denied - check your permissions")
	}
	return err
}
