// Package tags provides the tags command.
package tags

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/internal/view"
	"github.com/open-cli-collective/shortcode-cli/pkg/page"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

// NewCmdTags creates the tags command.
func NewCmdTags() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List registered component tags",
		Long: `List the component tags known to shortcode, including custom tags from
the config file, with their default attributes.`,
		Example: `  shortcode tags
  shortcode tags -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.GlobalsFrom(cmd)
			cfg, err := g.LoadConfig()
			if err != nil {
				return err
			}
			renderer, err := g.Renderer(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return runTags(renderer, cfg.Registry())
		},
	}

	return cmd
}

func runTags(renderer *view.Renderer, reg *page.Registry) error {
	headers := []string{"NAME", "CONTAINER", "DEFAULTS", "DESCRIPTION"}
	var rows [][]string

	for _, t := range reg.Types() {
		rows = append(rows, []string{
			t.Name,
			fmt.Sprint(t.Container),
			formatDefaults(t.Defaults),
			t.Description,
		})
	}

	renderer.RenderTable(headers, rows)
	return nil
}

func formatDefaults(attrs shortcode.Attributes) string {
	if len(attrs) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(attrs))
	for _, a := range attrs {
		parts = append(parts, fmt.Sprintf("%s=%s", a.Name, a.Value))
	}
	return strings.Join(parts, " ")
}
