// Package export provides the export command.
package export

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/pkg/page"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

type exportOptions struct {
	file     string
	to       string
	title    string
	outPath  string
	fragment bool
	registry *page.Registry
	stdin    io.Reader
	out      io.Writer
	logger   *slog.Logger
}

// NewCmdExport creates the export command.
func NewCmdExport() *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Convert shortcode markup to HTML or a page document",
		Long: `Convert shortcode markup to another representation.

  html  standalone HTML page; text is rendered as markdown and each
        element becomes a <div data-sc-tag> that 'shortcode import' can read
  json  page document with component ids and default attributes
  yaml  same document as YAML

Only registered tags are treated as components.`,
		Example: `  # Render a page as HTML
  shortcode export landing.sc --to html > landing.html

  # Save a page document
  shortcode export landing.sc --to yaml --out landing.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := cmdutil.GlobalsFrom(cmd)
			cfg, err := g.LoadConfig()
			if err != nil {
				return err
			}

			if len(args) > 0 {
				opts.file = args[0]
			}
			opts.registry = cfg.Registry()
			opts.stdin = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			if opts.logger, err = g.Logger(cmd.ErrOrStderr()); err != nil {
				return err
			}
			return runExport(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.to, "to", "t", "html", "Target format: html, json, yaml")
	cmd.Flags().StringVar(&opts.title, "title", "", "Page title (default: file name)")
	cmd.Flags().StringVar(&opts.outPath, "out", "", "Write to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.fragment, "fragment", false, "Emit an HTML fragment without the page wrapper")

	return cmd
}

func runExport(opts *exportOptions) error {
	input, err := cmdutil.ReadInput(opts.file, opts.stdin)
	if err != nil {
		return err
	}

	title := opts.title
	if title == "" {
		title = cmdutil.TitleFromPath(opts.file)
	}

	var output string
	switch opts.to {
	case "html":
		result := shortcode.ParseWithOptions(input, shortcode.Options{
			AcceptedTags: opts.registry.AcceptedTags(),
			Logger:       opts.logger.With("file", cmdutil.DisplayName(opts.file)),
		})
		if opts.fragment {
			output, err = page.ExportHTML(result.Nodes)
		} else {
			output, err = page.ExportHTMLPage(title, result.Nodes)
		}
		if err != nil {
			return fmt.Errorf("failed to render HTML: %w", err)
		}

	case string(page.FormatJSON), string(page.FormatYAML):
		doc, err := page.FromShortcode(title, input, opts.registry)
		if err != nil {
			return fmt.Errorf("failed to build page: %w", err)
		}
		data, err := doc.Encode(page.Format(opts.to))
		if err != nil {
			return err
		}
		output = string(data)

	default:
		return fmt.Errorf("invalid export format %q (valid: html, json, yaml)", opts.to)
	}

	if err := cmdutil.WriteOutput(opts.outPath, opts.out, output); err != nil {
		return err
	}
	if opts.outPath != "" {
		opts.logger.Info("exported", "file", opts.outPath, "format", opts.to)
	}
	return nil
}
