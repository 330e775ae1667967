// Package check provides the check command.
package check

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sort"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/internal/view"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

// ErrWarnings is returned when any checked input produced warnings.
var ErrWarnings = errors.New("shortcode warnings found")

type checkOptions struct {
	files    []string
	accepted []string
	watch    bool
	stdin    io.Reader
	renderer *view.Renderer
	logger   *slog.Logger
}

// Finding is a warning attributed to an input file.
type Finding struct {
	File     string `json:"file"`
	Position int    `json:"position"`
	Kind     string `json:"kind"`
	Tag      string `json:"tag,omitempty"`
	Message  string `json:"message"`
}

// NewCmdCheck creates the check command.
func NewCmdCheck() *cobra.Command {
	opts := &checkOptions{}
	var (
		accept    []string
		acceptAll bool
	)

	cmd := &cobra.Command{
		Use:     "check [files...]",
		Aliases: []string{"lint"},
		Short:   "Report malformed or unbalanced shortcode markup",
		Long: `Check shortcode files for markup the parser had to recover from:
rejected tags, close tags without an opener, unclosed tags and malformed tags.

Exits non-zero when any warning is found. With --watch, the files are
re-checked whenever they change until interrupted.`,
		Example: `  # Check every page
  shortcode check pages/*.sc

  # Keep checking while editing
  shortcode check landing.sc --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := cmdutil.GlobalsFrom(cmd)
			cfg, err := g.LoadConfig()
			if err != nil {
				return err
			}

			opts.files = args
			opts.stdin = cmd.InOrStdin()
			if opts.accepted, err = cmdutil.Accepted(cfg, accept, acceptAll); err != nil {
				return err
			}
			if opts.renderer, err = g.Renderer(cfg, cmd.OutOrStdout()); err != nil {
				return err
			}
			if opts.logger, err = g.Logger(cmd.ErrOrStderr()); err != nil {
				return err
			}

			if opts.watch {
				if len(opts.files) == 0 {
					return errors.New("--watch requires at least one file")
				}
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
				defer stop()
				return runWatch(ctx, opts)
			}
			return runCheck(opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-check files when they change")
	cmdutil.AddAcceptFlags(cmd, &accept, &acceptAll)

	return cmd
}

func runCheck(opts *checkOptions) error {
	files := opts.files
	if len(files) == 0 {
		files = []string{"-"}
	}

	var findings []Finding
	for _, file := range files {
		found, err := checkFile(opts, file)
		if err != nil {
			return err
		}
		findings = append(findings, found...)
	}

	if err := report(opts.renderer, findings, len(files)); err != nil {
		return err
	}

	if len(findings) > 0 {
		return fmt.Errorf("%w: %d", ErrWarnings, len(findings))
	}
	return nil
}

func checkFile(opts *checkOptions, file string) ([]Finding, error) {
	input, err := cmdutil.ReadInput(file, opts.stdin)
	if err != nil {
		return nil, err
	}

	name := cmdutil.DisplayName(file)
	result := shortcode.ParseWithOptions(input, shortcode.Options{AcceptedTags: opts.accepted})
	opts.logger.Debug("checked", "file", name, "warnings", len(result.Warnings))

	findings := make([]Finding, 0, len(result.Warnings))
	for _, w := range result.Warnings {
		findings = append(findings, Finding{
			File:     name,
			Position: w.Position,
			Kind:     string(w.Kind),
			Tag:      w.Tag,
			Message:  w.Message,
		})
	}
	return findings, nil
}

func report(r *view.Renderer, findings []Finding, files int) error {
	switch r.Format() {
	case view.FormatJSON:
		if findings == nil {
			findings = []Finding{}
		}
		return r.RenderJSON(findings)
	case view.FormatPlain:
		rows := make([][]string, 0, len(findings))
		for _, f := range findings {
			rows = append(rows, []string{f.File, fmt.Sprint(f.Position), f.Kind, f.Message})
		}
		r.RenderTable(nil, rows)
	default:
		for _, f := range findings {
			r.Warning(fmt.Sprintf("%s:%d: %s", f.File, f.Position, f.Message))
		}
		if len(findings) == 0 {
			r.Success(fmt.Sprintf("%d %s OK", files, plural(files, "file", "files")))
		}
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// sortedKeys returns the keys of set in order.
func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
