package completion

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoot() *cobra.Command {
	root := &cobra.Command{Use: "shortcode", Short: "Test CLI"}
	root.AddCommand(NewCmdCompletion())
	return root
}

func TestNewCmdCompletion(t *testing.T) {
	cmd := NewCmdCompletion()

	assert.Equal(t, "completion", cmd.Use)
	assert.NotEmpty(t, cmd.Long)
	require.Len(t, cmd.Commands(), 4)

	for _, sub := range cmd.Commands() {
		assert.Contains(t, sub.Long, "shortcode completion "+sub.Name())
		assert.NotEmpty(t, sub.Example)
	}
}

func TestCompletionScripts(t *testing.T) {
	tests := []struct {
		shell  string
		marker string
	}{
		{"bash", "bash completion"},
		{"zsh", "compdef"},
		{"fish", "complete -c shortcode"},
		{"powershell", "Register-ArgumentCompleter"},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			root := newRoot()
			buf := new(bytes.Buffer)
			root.SetOut(buf)
			root.SetArgs([]string{"completion", tt.shell})

			require.NoError(t, root.Execute())
			assert.Contains(t, buf.String(), tt.marker)
		})
	}
}

func TestCompletionRejectsExtraArgs(t *testing.T) {
	for _, s := range shells {
		t.Run(s.name, func(t *testing.T) {
			root := newRoot()
			root.SetOut(new(bytes.Buffer))
			root.SetErr(new(bytes.Buffer))
			root.SetArgs([]string{"completion", s.name, "unexpected-arg"})

			err := root.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "unknown command")
		})
	}
}
