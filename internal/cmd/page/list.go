package page

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/api"
	"github.com/open-cli-collective/shortcode-cli/internal/view"
)

type listOptions struct {
	limit    int
	cursor   string
	title    string
	renderer *view.Renderer
}

// NewCmdList creates the page list command.
func NewCmdList() *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List pages",
		Long:    `List pages in the page store.`,
		Example: `  # List pages
  shortcode page list

  # Filter by title
  shortcode page list --title landing

  # Output as JSON
  shortcode page list -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, client, renderer, err := setup(cmd)
			if err != nil {
				return err
			}
			opts.renderer = renderer
			return runList(cmd.Context(), opts, client)
		},
	}

	cmd.Flags().IntVarP(&opts.limit, "limit", "l", 25, "Maximum number of pages to return")
	cmd.Flags().StringVar(&opts.cursor, "cursor", "", "Continue from a previous listing")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Only pages whose title contains this text")

	return cmd
}

func runList(ctx context.Context, opts *listOptions, client *api.Client) error {
	if opts.limit <= 0 {
		return fmt.Errorf("invalid limit: %d", opts.limit)
	}

	result, err := client.ListPages(ctx, &api.ListPagesOptions{
		Limit:  opts.limit,
		Cursor: opts.cursor,
		Title:  opts.title,
	})
	if err != nil {
		return fmt.Errorf("failed to list pages: %w", err)
	}

	if opts.renderer.Format() == view.FormatJSON {
		return opts.renderer.RenderJSON(result)
	}

	if len(result.Results) == 0 {
		opts.renderer.RenderText("No pages found.")
		return nil
	}

	headers := []string{"ID", "TITLE", "VERSION", "UPDATED"}
	var rows [][]string

	for _, p := range result.Results {
		updated := "-"
		if !p.UpdatedAt.IsZero() {
			updated = p.UpdatedAt.Format("2006-01-02 15:04")
		}
		rows = append(rows, []string{
			p.ID,
			view.Truncate(p.Title, 60),
			fmt.Sprintf("v%d", p.Version),
			updated,
		})
	}

	opts.renderer.RenderTable(headers, rows)

	if result.HasMore() && opts.renderer.Format() == view.FormatTable {
		opts.renderer.RenderText(fmt.Sprintf("\n(more pages available, use --cursor %s)", result.NextCursor))
	}

	return nil
}
