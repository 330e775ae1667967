package configcmd

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/api"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/internal/config"
)

// NewCmdTest creates the config test command.
func NewCmdTest() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test connectivity with the configured page store",
		Long:  `Test that shortcode can reach the page store with the current configuration.`,
		Example: `  # Test connection
  shortcode config test`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.GlobalsFrom(cmd)
			if g.NoColor {
				color.NoColor = true
			}
			cfg, err := g.LoadConfig()
			if err != nil {
				return err
			}
			return runTest(cmd.Context(), cfg, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runTest(ctx context.Context, cfg *config.Config, out io.Writer) error {
	client, err := cmdutil.Client(cfg)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Fprintf(out, "Testing connection to %s...\n", cfg.StoreURL)

	result, err := client.ListPages(ctx, &api.ListPagesOptions{Limit: 1})
	if err != nil {
		switch {
		case errors.Is(err, api.ErrUnauthorized):
			_, _ = red.Fprintln(out, "✗ Authentication failed: 401 Unauthorized")
			fmt.Fprintln(out, "\nCheck your token with: shortcode config show")
			fmt.Fprintln(out, "Reconfigure with: shortcode init")
			return fmt.Errorf("authentication failed")
		case errors.Is(err, api.ErrForbidden):
			_, _ = red.Fprintln(out, "✗ Access denied: 403 Forbidden")
			fmt.Fprintln(out, "\nCheck your permissions.")
			return fmt.Errorf("access denied")
		}
		_, _ = red.Fprintln(out, "✗ Connection failed:", err)
		fmt.Fprintln(out, "\nCheck your store URL with: shortcode config show")
		return fmt.Errorf("connection failed: %w", err)
	}

	_, _ = green.Fprintln(out, "✓ Page store reachable")
	if cfg.StoreToken != "" {
		_, _ = green.Fprintln(out, "✓ Token accepted")
	}
	if len(result.Results) == 0 {
		fmt.Fprintln(out, "\nThe store has no pages yet.")
	}

	return nil
}
