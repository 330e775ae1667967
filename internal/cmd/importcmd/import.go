// Package importcmd provides the import command.
package importcmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/pkg/page"
)

type importOptions struct {
	file    string
	outPath string
	stdin   io.Reader
	out     io.Writer
}

// NewCmdImport creates the import command.
func NewCmdImport() *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Convert HTML or a page document back to shortcode markup",
		Long: `Convert exported content back to shortcode markup.

HTML input has its <div data-sc-tag> elements turned back into tags and the
remaining HTML converted to markdown. Files ending in .json, .yml or .yaml are
read as page documents. Use - to read HTML from stdin.`,
		Example: `  # Recover shortcode from exported HTML
  shortcode import landing.html > landing.sc

  # Render a saved page document
  shortcode import landing.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.file = args[0]
			opts.stdin = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			return runImport(opts)
		},
	}

	cmd.Flags().StringVar(&opts.outPath, "out", "", "Write to a file instead of stdout")

	return cmd
}

func runImport(opts *importOptions) error {
	var markup string

	switch strings.ToLower(filepath.Ext(opts.file)) {
	case ".json", ".yml", ".yaml":
		doc, err := page.Load(opts.file)
		if err != nil {
			return err
		}
		markup = doc.Shortcode()

	default:
		input, err := cmdutil.ReadInput(opts.file, opts.stdin)
		if err != nil {
			return err
		}
		markup, err = page.ImportHTML(input)
		if err != nil {
			return fmt.Errorf("failed to convert HTML: %w", err)
		}
	}

	return cmdutil.WriteOutput(opts.outPath, opts.out, markup)
}
