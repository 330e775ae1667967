// Package format provides the format command.
package format

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

type formatOptions struct {
	file     string
	write    bool
	accepted []string
	stdin    io.Reader
	out      io.Writer
	logger   *slog.Logger
}

// NewCmdFormat creates the format command.
func NewCmdFormat() *cobra.Command {
	opts := &formatOptions{}
	var (
		accept    []string
		acceptAll bool
	)

	cmd := &cobra.Command{
		Use:     "format [file]",
		Aliases: []string{"fmt"},
		Short:   "Rewrite shortcode markup in canonical form",
		Long: `Parse shortcode markup and print it back in canonical form.

Attributes are double-quoted, childless elements become self-closing and
text between tags is trimmed. Reads stdin when no file is given.`,
		Example: `  # Print the canonical form
  shortcode format landing.sc

  # Rewrite the file in place
  shortcode format landing.sc --write`,
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
			opts.stdin = cmd.InOrStdin()
			opts.out = cmd.OutOrStdout()
			if opts.accepted, err = cmdutil.Accepted(cfg, accept, acceptAll); err != nil {
				return err
			}
			if opts.logger, err = g.Logger(cmd.ErrOrStderr()); err != nil {
				return err
			}
			return runFormat(opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Write the result back to the file")
	cmdutil.AddAcceptFlags(cmd, &accept, &acceptAll)

	return cmd
}

func runFormat(opts *formatOptions) error {
	if opts.write && (opts.file == "" || opts.file == "-") {
		return errors.New("--write requires a file argument")
	}

	input, err := cmdutil.ReadInput(opts.file, opts.stdin)
	if err != nil {
		return err
	}

	result := shortcode.ParseWithOptions(input, shortcode.Options{
		AcceptedTags: opts.accepted,
		Logger:       opts.logger.With("file", cmdutil.DisplayName(opts.file)),
	})
	formatted := shortcode.Stringify(result.Nodes)

	if !opts.write {
		_, err := fmt.Fprintln(opts.out, formatted)
		return err
	}

	if formatted == input {
		opts.logger.Debug("already formatted", "file", opts.file)
		return nil
	}

	info, err := os.Stat(opts.file)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}
	if err := os.WriteFile(opts.file, []byte(formatted), info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	opts.logger.Info("formatted", "file", opts.file)

	return nil
}
