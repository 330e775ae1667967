package cmdutil

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/open-cli-collective/shortcode-cli/internal/config"
	"github.com/open-cli-collective/shortcode-cli/internal/view"
)

func newFlagCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().StringP("output", "o", "table", "")
	cmd.Flags().Bool("no-color", false, "")
	cmd.Flags().String("log-level", "warn", "")
	cmd.Flags().String("log-format", "text", "")
	return cmd
}

func TestGlobalsFrom(t *testing.T) {
	cmd := newFlagCmd()
	require.NoError(t, cmd.Flags().Parse([]string{"-c", "/tmp/c.yml", "-o", "json", "--no-color", "--log-level", "debug"}))

	g := GlobalsFrom(cmd)
	assert.Equal(t, "/tmp/c.yml", g.ConfigPath)
	assert.Equal(t, "json", g.Output)
	assert.True(t, g.OutputSet)
	assert.True(t, g.NoColor)
	assert.Equal(t, "debug", g.LogLevel)
	assert.Equal(t, "text", g.LogFormat)
	assert.Equal(t, "/tmp/c.yml", g.Path())
}

func TestGlobals_PathDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	g := &Globals{}
	assert.Equal(t, filepath.Join(dir, "shortcode", "config.yml"), g.Path())
}

func TestGlobals_LoadConfig(t *testing.T) {
	t.Setenv("SHORTCODE_OUTPUT", "")
	t.Setenv("SHORTCODE_STORE_URL", "")

	path := filepath.Join(t.TempDir(), "config.yml")

	g := &Globals{ConfigPath: path}
	cfg, err := g.LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.StoreURL)

	require.NoError(t, os.WriteFile(path, []byte("output_format: xml\n"), 0600))
	_, err = g.LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
	assert.Contains(t, err.Error(), "shortcode init")
}

func TestGlobals_Renderer(t *testing.T) {
	tests := []struct {
		name    string
		globals Globals
		cfg     *config.Config
		want    view.Format
		wantErr bool
	}{
		{"flag default", Globals{Output: "table"}, &config.Config{}, view.FormatTable, false},
		{"config wins over default", Globals{Output: "table"}, &config.Config{OutputFormat: "plain"}, view.FormatPlain, false},
		{"explicit flag wins", Globals{Output: "json", OutputSet: true}, &config.Config{OutputFormat: "plain"}, view.FormatJSON, false},
		{"nil config", Globals{Output: "plain"}, nil, view.FormatPlain, false},
		{"invalid", Globals{Output: "xml", OutputSet: true}, nil, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.globals.NoColor = true
			r, err := tt.globals.Renderer(tt.cfg, &bytes.Buffer{})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Format())
		})
	}
}

func TestGlobals_Logger(t *testing.T) {
	var buf bytes.Buffer
	g := &Globals{LogLevel: "info", LogFormat: "text"}

	logger, err := g.Logger(&buf)
	require.NoError(t, err)
	logger.Info("hello")
	assert.Contains(t, buf.String(), "msg=hello")

	_, err = (&Globals{LogLevel: "nope"}).Logger(&buf)
	assert.Error(t, err)
}

func TestClient(t *testing.T) {
	_, err := Client(&config.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "store_url is required")

	client, err := Client(&config.Config{StoreURL: "https://pages.example.com"})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestAccepted(t *testing.T) {
	cfg := &config.Config{AcceptedTags: []string{"box"}}

	got, err := Accepted(cfg, nil, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"box"}, got)

	got, err = Accepted(cfg, []string{"circle", "triangle"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"circle", "triangle"}, got)

	got, err = Accepted(cfg, []string{"circle"}, true)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = Accepted(cfg, []string{"9x"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tag name")
}

func TestAddAcceptFlags(t *testing.T) {
	var names []string
	var all bool
	cmd := &cobra.Command{Use: "x", RunE: func(*cobra.Command, []string) error { return nil }}
	AddAcceptFlags(cmd, &names, &all)

	cmd.SetArgs([]string{"--accept", "box,circle", "-a", "triangle"})
	require.NoError(t, cmd.Execute())
	assert.Equal(t, []string{"box", "circle", "triangle"}, names)
	assert.False(t, all)
}

func TestReadInput(t *testing.T) {
	got, err := ReadInput("", strings.NewReader("[box/]"))
	require.NoError(t, err)
	assert.Equal(t, "[box/]", got)

	got, err = ReadInput("-", strings.NewReader("stdin"))
	require.NoError(t, err)
	assert.Equal(t, "stdin", got)

	path := filepath.Join(t.TempDir(), "in.sc")
	require.NoError(t, os.WriteFile(path, []byte("file"), 0644))
	got, err = ReadInput(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "file", got)

	_, err = ReadInput(filepath.Join(t.TempDir(), "missing"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestWriteOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOutput("", &buf, "hello\n\n"))
	assert.Equal(t, "hello\n", buf.String())

	path := filepath.Join(t.TempDir(), "out.sc")
	require.NoError(t, WriteOutput(path, nil, "data"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestNames(t *testing.T) {
	assert.Equal(t, "<stdin>", DisplayName(""))
	assert.Equal(t, "a.sc", DisplayName("a.sc"))
	assert.Equal(t, "Untitled", TitleFromPath("-"))
	assert.Equal(t, "landing", TitleFromPath("/tmp/pages/landing.sc"))
}
