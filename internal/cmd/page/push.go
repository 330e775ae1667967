package page

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/api"
	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/internal/view"
	"github.com/open-cli-collective/shortcode-cli/pkg/page"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

type pushOptions struct {
	file     string
	pageID   string
	title    string
	force    bool
	accepted []string
	stdin    io.Reader
	renderer *view.Renderer
}

// NewCmdPush creates the page push command.
func NewCmdPush() *cobra.Command {
	opts := &pushOptions{}

	cmd := &cobra.Command{
		Use:   "push <file>",
		Short: "Upload a page",
		Long: `Upload shortcode markup or a page document to the page store.

The markup is checked first and uploaded in canonical form. Markup with
warnings is refused unless --force is given. With --id the existing page is
updated, otherwise a new page is created.`,
		Example: `  # Create a page titled after the file
  shortcode page push landing.sc

  # Update an existing page
  shortcode page push landing.sc --id p1

  # Upload a page document
  shortcode page push landing.yaml --id p1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, client, renderer, err := setup(cmd)
			if err != nil {
				return err
			}
			opts.file = args[0]
			opts.accepted = cfg.Accepted()
			opts.stdin = cmd.InOrStdin()
			opts.renderer = renderer
			return runPush(cmd.Context(), opts, client)
		},
	}

	cmd.Flags().StringVar(&opts.pageID, "id", "", "Page ID to update")
	cmd.Flags().StringVarP(&opts.title, "title", "t", "", "Page title (default: document title or file name)")
	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Upload even if the markup has warnings")

	return cmd
}

func runPush(ctx context.Context, opts *pushOptions, client *api.Client) error {
	markup, title, err := readPushInput(opts.file, opts.stdin)
	if err != nil {
		return err
	}
	if opts.title != "" {
		title = opts.title
	}

	result := shortcode.ParseWithOptions(markup, shortcode.Options{AcceptedTags: opts.accepted})
	if len(result.Warnings) > 0 && !opts.force {
		for _, w := range result.Warnings {
			opts.renderer.Warning(fmt.Sprintf("%s:%s", cmdutil.DisplayName(opts.file), w))
		}
		return fmt.Errorf("refusing to push %d warning(s); fix the markup or use --force", len(result.Warnings))
	}
	content := shortcode.Stringify(result.Nodes)

	var p *api.Page
	var action string
	if opts.pageID != "" {
		current, err := client.GetPage(ctx, opts.pageID)
		if err != nil {
			return fmt.Errorf("failed to get page: %w", err)
		}
		if opts.title == "" {
			title = current.Title
		}
		p, err = client.UpdatePage(ctx, opts.pageID, &api.UpdatePageRequest{
			Title:   title,
			Content: content,
			Version: current.Version + 1,
		})
		if errors.Is(err, api.ErrConflict) {
			return fmt.Errorf("page %s changed since version %d; pull it again before pushing: %w", opts.pageID, current.Version, err)
		}
		if err != nil {
			return fmt.Errorf("failed to update page: %w", err)
		}
		action = "Updated"
	} else {
		p, err = client.CreatePage(ctx, &api.CreatePageRequest{
			Title:   title,
			Content: content,
		})
		if err != nil {
			return fmt.Errorf("failed to create page: %w", err)
		}
		action = "Created"
	}

	if opts.renderer.Format() == view.FormatJSON {
		return opts.renderer.RenderJSON(p)
	}

	opts.renderer.Success(fmt.Sprintf("%s page: %s", action, p.Title))
	opts.renderer.RenderKeyValue("ID", p.ID)
	opts.renderer.RenderKeyValue("Version", fmt.Sprint(p.Version))

	return nil
}

// readPushInput returns the markup and default title for file.
func readPushInput(file string, stdin io.Reader) (string, string, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json", ".yml", ".yaml":
		doc, err := page.Load(file)
		if err != nil {
			return "", "", err
		}
		title := doc.Title
		if title == "" {
			title = cmdutil.TitleFromPath(file)
		}
		return doc.Shortcode(), title, nil
	default:
		markup, err := cmdutil.ReadInput(file, stdin)
		if err != nil {
			return "", "", err
		}
		return markup, cmdutil.TitleFromPath(file), nil
	}
}
