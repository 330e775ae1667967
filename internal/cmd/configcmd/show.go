package configcmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/open-cli-collective/shortcode-cli/internal/cmd/cmdutil"
	"github.com/open-cli-collective/shortcode-cli/internal/config"
)

// NewCmdShow creates the config show command.
func NewCmdShow() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display current configuration",
		Long:  `Display the current shortcode configuration with value source indicators.`,
		Example: `  # Show current config
  shortcode config show`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := cmdutil.GlobalsFrom(cmd)
			return runShow(g.Path(), g.NoColor, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runShow(configPath string, noColor bool, out io.Writer) error {
	if noColor {
		color.NoColor = true
	}

	// Load file config (may not exist)
	fileCfg, fileErr := config.Load(configPath)
	if fileErr != nil {
		fileCfg = &config.Config{}
	}

	cfg, err := config.LoadWithEnv(configPath)
	if err != nil {
		return err
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	printField := func(label, value, fileValue, envVar string) {
		_, _ = bold.Fprintf(out, "%-14s", label+":")
		if value == "" {
			_, _ = dim.Fprintln(out, "-")
			return
		}

		fmt.Fprint(out, maskToken(label, value))

		source := "-"
		switch {
		case envVar != "" && os.Getenv(envVar) != "" && value != fileValue:
			source = envVar
		case fileErr == nil && fileValue == value:
			source = "config"
		}

		_, _ = dim.Fprintf(out, "  (source: %s)\n", source)
	}

	printField("Accepted tags", strings.Join(cfg.AcceptedTags, ","), strings.Join(fileCfg.AcceptedTags, ","), "SHORTCODE_ACCEPTED_TAGS")
	printField("Output", cfg.OutputFormat, fileCfg.OutputFormat, "SHORTCODE_OUTPUT")
	printField("Store URL", cfg.StoreURL, fileCfg.StoreURL, "SHORTCODE_STORE_URL")
	printField("Store token", cfg.StoreToken, fileCfg.StoreToken, "SHORTCODE_STORE_TOKEN")

	names := make([]string, 0, len(cfg.Tags))
	for _, t := range cfg.Tags {
		names = append(names, t.Name)
	}
	printField("Custom tags", strings.Join(names, ","), strings.Join(names, ","), "")

	fmt.Fprintln(out)
	_, _ = dim.Fprintf(out, "Config file: %s\n", configPath)
	if fileErr != nil {
		_, _ = dim.Fprintln(out, "(file not found)")
	}

	return nil
}

// maskToken hides the middle of credential values.
func maskToken(label, value string) string {
	if !strings.Contains(strings.ToLower(label), "token") {
		return value
	}
	if len(value) <= 8 {
		return strings.Repeat("*", len(value))
	}
	return value[:4] + strings.Repeat("*", len(value)-8) + value[len(value)-4:]
}
