// Package page provides commands for pages kept in the page store.
package page

import (
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/api"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/internal/config"
	"github.com/open-cli-collective/shortcode-cli/internal/view"
)

// NewCmdPage creates the page command.
func NewCmdPage() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "page",
		Aliases: []string{"pages"},
		Short:   "Manage pages in the page store",
		Long: `Commands for listing, downloading, uploading and deleting pages kept in
the page store configured by store_url.`,
	}

	cmd.AddCommand(NewCmdList())
	cmd.AddCommand(NewCmdPull())
	cmd.AddCommand(NewCmdPush())
	cmd.AddCommand(NewCmdDelete())

	return cmd
}

// setup loads config and builds the client and renderer shared by page commands.
func setup(cmd *cobra.Command) (*config.Config, *api.Client, *view.Renderer, error) {
	g := cmdutil.GlobalsFrom(cmd)
	cfg, err := g.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	client, err := cmdutil.Client(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	renderer, err := g.Renderer(cfg, cmd.OutOrStdout())
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, client, renderer, nil
}
