// Package cmdutil holds helpers shared by shortcode subcommands.
package cmdutil

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/api"
	"github.com/open-cli-collective/shortcode-cli/internal/config"
	"github.com/open-cli-collective/shortcode-cli/internal/logging"
	"github.com/open-cli-collective/shortcode-cli/internal/view"
	"github.com/open-cli-collective/shortcode-cli/pkg/shortcode"
)

// Globals holds the root persistent flags.
type Globals struct {
	ConfigPath string
	Output     string
	OutputSet  bool
	NoColor    bool
	LogLevel   string
	LogFormat  string
}

// GlobalsFrom reads the persistent flags visible to cmd.
func GlobalsFrom(cmd *cobra.Command) *Globals {
	g := &Globals{}
	flags := cmd.Flags()
	g.ConfigPath, _ = flags.GetString("config")
	g.Output, _ = flags.GetString("output")
	g.OutputSet = flags.Changed("output")
	g.NoColor, _ = flags.GetBool("no-color")
	g.LogLevel, _ = flags.GetString("log-level")
	g.LogFormat, _ = flags.GetString("log-format")
	return g
}

// Path returns the config file path, honoring --config.
func (g *Globals) Path() string {
	if g.ConfigPath != "" {
		return g.ConfigPath
	}
	return config.DefaultConfigPath()
}

// LoadConfig loads and validates the config file with environment overrides.
func (g *Globals) LoadConfig() (*config.Config, error) {
	cfg, err := config.LoadWithEnv(g.Path())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w (run 'shortcode init' to configure)", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w (run 'shortcode init' to configure)", err)
	}

	return cfg, nil
}

// Renderer returns a renderer writing to w. An explicit --output wins over
// the configured output_format.
func (g *Globals) Renderer(cfg *config.Config, w io.Writer) (*view.Renderer, error) {
	format := g.Output
	if !g.OutputSet && cfg != nil && cfg.OutputFormat != "" {
		format = cfg.OutputFormat
	}
	if err := view.ValidateFormat(format); err != nil {
		return nil, err
	}

	r := view.NewRenderer(view.Format(format), g.NoColor)
	r.SetWriter(w)
	return r, nil
}

// Logger builds the slog logger from --log-level and --log-format.
func (g *Globals) Logger(w io.Writer) (*slog.Logger, error) {
	return logging.New(logging.Config{Level: g.LogLevel, Format: g.LogFormat, Output: w})
}

// Client returns a page store client for cfg.
func Client(cfg *config.Config) (*api.Client, error) {
	if err := cfg.RequireStore(); err != nil {
		return nil, fmt.Errorf("%w (run 'shortcode init' or set SHORTCODE_STORE_URL)", err)
	}
	return api.NewClient(cfg.StoreURL, cfg.StoreToken), nil
}

// Accepted resolves the parse allow-list. acceptAll disables filtering,
// explicit names override the configured list.
func Accepted(cfg *config.Config, names []string, acceptAll bool) ([]string, error) {
	if acceptAll {
		return nil, nil
	}
	if len(names) > 0 {
		for _, name := range names {
			if !shortcode.ValidTagName(name) {
				return nil, fmt.Errorf("invalid tag name: %q", name)
			}
		}
		return names, nil
	}
	return cfg.Accepted(), nil
}

// AddAcceptFlags registers --accept and --accept-all on cmd.
func AddAcceptFlags(cmd *cobra.Command, names *[]string, acceptAll *bool) {
	cmd.Flags().StringSliceVarP(names, "accept", "a", nil, "Tags to recognize (default: registered tags)")
	cmd.Flags().BoolVar(acceptAll, "accept-all", false, "Recognize every well-formed tag")
	cmd.MarkFlagsMutuallyExclusive("accept", "accept-all")
}

// ReadInput reads path, or stdin when path is empty or "-".
func ReadInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

// WriteOutput writes data to path, or to w when path is empty or "-".
func WriteOutput(path string, w io.Writer, data string) error {
	if path == "" || path == "-" {
		_, err := fmt.Fprintln(w, strings.TrimRight(data, "\n"))
		return err
	}

	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// DisplayName names an input for messages.
func DisplayName(path string) string {
	if path == "" || path == "-" {
		return "<stdin>"
	}
	return path
}

// TitleFromPath derives a page title from a file name.
func TitleFromPath(path string) string {
	if path == "" || path == "-" {
		return "Untitled"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
