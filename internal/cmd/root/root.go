// Package root provides the root command for the shortcode CLI.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/internal/cmd/check"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/completion"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/configcmd"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/export"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/format"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/importcmd"
	initcmd "github.com/open-cli-collective/shortcode-cli/internal/cmd/init"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/page"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/parse"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/tags"
	"github.com/open-cli-collective/shortcode-cli/internal/version"
)

// NewCmdRoot creates the root command for shortcode.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shortcode",
		Short: "Parse, check and convert [tag]...[/tag] shortcode markup",
		Long: `shortcode is a CLI for page-builder content written in shortcode markup:

  [box width="100"]Hello [circle radius="5"/][/box]

It parses markup into a node tree, rewrites it in canonical form, reports
unbalanced or malformed tags, converts pages to and from HTML, JSON and
YAML, and syncs pages with a page store.

Get started by running: shortcode init`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/shortcode/config.yml)")
	cmd.PersistentFlags().StringP("output", "o", "table", "output format: table, json, plain")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn, error")
	cmd.PersistentFlags().String("log-format", "text", "log format: text, json")

	// Set version template
	cmd.SetVersionTemplate("shortcode version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(initcmd.NewCmdInit())
	cmd.AddCommand(configcmd.NewCmdConfig())
	cmd.AddCommand(parse.NewCmdParse())
	cmd.AddCommand(format.NewCmdFormat())
	cmd.AddCommand(check.NewCmdCheck())
	cmd.AddCommand(export.NewCmdExport())
	cmd.AddCommand(importcmd.NewCmdImport())
	cmd.AddCommand(tags.NewCmdTags())
	cmd.AddCommand(page.NewCmdPage())
	cmd.AddCommand(completion.NewCmdCompletion())

	return cmd
}
