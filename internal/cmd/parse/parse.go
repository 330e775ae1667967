// Package parse provides the parse command.
package parse

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/internal/view"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

type parseOptions struct {
	file     string
	accepted []string
	stdin    io.Reader
	renderer *view.Renderer
	logger   *slog.Logger
}

// NewCmdParse creates the parse command.
func NewCmdParse() *cobra.Command {
	var (
		accept    []string
		acceptAll bool
	)

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Print the node tree of shortcode markup",
		Long: `Parse shortcode markup and print the resulting node tree.

Only registered tags are recognized unless --accept or --accept-all is given;
anything else is kept as text. Reads stdin when no file is given.
Warnings about malformed or unbalanced tags are logged to stderr.`,
		Example: `  # Show the tree of a page
  shortcode parse landing.sc

  # Recognize only box and circle
  shortcode parse landing.sc --accept box,circle

  # Emit the tree as JSON
  echo '[box]hi[/box]' | shortcode parse -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g := cmdutil.GlobalsFrom(cmd)
			cfg, err := g.LoadConfig()
			if err != nil {
				return err
			}

			opts := &parseOptions{stdin: cmd.InOrStdin()}
			if len(args) > 0 {
				opts.file = args[0]
			}
			if opts.accepted, err = cmdutil.Accepted(cfg, accept, acceptAll); err != nil {
				return err
			}
			if opts.renderer, err = g.Renderer(cfg, cmd.OutOrStdout()); err != nil {
				return err
			}
			if opts.logger, err = g.Logger(cmd.ErrOrStderr()); err != nil {
				return err
			}
			return runParse(opts)
		},
	}

	cmdutil.AddAcceptFlags(cmd, &accept, &acceptAll)

	return cmd
}

func runParse(opts *parseOptions) error {
	input, err := cmdutil.ReadInput(opts.file, opts.stdin)
	if err != nil {
		return err
	}

	result := shortcode.ParseWithOptions(input, shortcode.Options{
		AcceptedTags: opts.accepted,
		Logger:       opts.logger.With("file", cmdutil.DisplayName(opts.file)),
	})

	return opts.renderer.RenderTree(result.Nodes)
}
