package page

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/api"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/pkg/page"
)

type pullOptions struct {
	outPath  string
	registry *page.Registry
	out      io.Writer
}

// NewCmdPull creates the page pull command.
func NewCmdPull() *cobra.Command {
	opts := &pullOptions{}

	cmd := &cobra.Command{
		Use:   "pull <page-id>",
		Short: "Download a page",
		Long: `Download a page's shortcode markup.

When --out ends in .json, .yml or .yaml the page is saved as a page document
instead of raw markup.`,
		Example: `  # Print a page
  shortcode page pull p1

  # Save for editing
  shortcode page pull p1 --out landing.sc

  # Save as a page document
  shortcode page pull p1 --out landing.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, _, err := setup(cmd)
			if err != nil {
				return err
			}
			opts.registry = cfg.Registry()
			opts.out = cmd.OutOrStdout()
			return runPull(cmd.Context(), args[0], opts, client)
		},
	}

	cmd.Flags().StringVar(&opts.outPath, "out", "", "Write to a file instead of stdout")

	return cmd
}

func runPull(ctx context.Context, pageID string, opts *pullOptions, client *api.Client) error {
	p, err := client.GetPage(ctx, pageID)
	if err != nil {
		if api.IsNotFound(err) {
			return fmt.Errorf("page %s not found", pageID)
		}
		return fmt.Errorf("failed to get page: %w", err)
	}

	switch strings.ToLower(filepath.Ext(opts.outPath)) {
	case ".json", ".yml", ".yaml":
		doc, err := page.FromShortcode(p.Title, p.Content, opts.registry)
		if err != nil {
			return fmt.Errorf("failed to build page: %w", err)
		}
		return doc.Save(opts.outPath)
	default:
		return cmdutil.WriteOutput(opts.outPath, opts.out, p.Content)
	}
}
