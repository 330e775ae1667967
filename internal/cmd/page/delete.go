package page

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/api"
	"github.com/open-cli-collective/shortcode-cli/internal/view"
)

type deleteOptions struct {
	force    bool
	stdin    io.Reader // injectable for testing
	out      io.Writer
	renderer *view.Renderer
}

// NewCmdDelete creates the page delete command.
func NewCmdDelete() *cobra.Command {
	opts := &deleteOptions{}

	cmd := &cobra.Command{
		Use:   "delete <page-id>",
		Short: "Delete a page",
		Long:  `Delete a page from the page store by its ID.`,
		Example: `  # Delete a page
  shortcode page delete p1

  # Delete without confirmation
  shortcode page delete p1 --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, client, renderer, err := setup(cmd)
			if err != nil {
				return err
			}
			opts.stdin = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			opts.renderer = renderer
			return runDelete(cmd.Context(), args[0], opts, client)
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runDelete(ctx context.Context, pageID string, opts *deleteOptions, client *api.Client) error {
	// Get page info first to show what we're deleting
	p, err := client.GetPage(ctx, pageID)
	if err != nil {
		return fmt.Errorf("failed to get page: %w", err)
	}

	if !opts.force {
		fmt.Fprintf(opts.out, "About to delete page: %s (ID: %s)\n", p.Title, p.ID)
		fmt.Fprint(opts.out, "Are you sure? [y/N]: ")

		scanner := bufio.NewScanner(opts.stdin)
		var confirm string
		if scanner.Scan() {
			confirm = scanner.Text()
		}

		if confirm != "y" && confirm != "Y" {
			fmt.Fprintln(opts.out, "Deletion cancelled.")
			return nil
		}
	}

	if err := client.DeletePage(ctx, pageID); err != nil {
		return fmt.Errorf("failed to delete page: %w", err)
	}

	if opts.renderer.Format() == view.FormatJSON {
		return opts.renderer.RenderJSON(map[string]string{
			"status":  "deleted",
			"page_id": pageID,
			"title":   p.Title,
		})
	}

	opts.renderer.Success(fmt.Sprintf("Deleted page: %s (ID: %s)", p.Title, pageID))

	return nil
}
