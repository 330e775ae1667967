// Package completion provides shell completion generation commands.
package completion

import (
	"io"

	"github.com/spf13/cobra"
)

// shell describes one completion target.
type shell struct {
	name    string
	install string
	example string
	gen     func(root *cobra.Command, w io.Writer) error
}

var shells = []shell{
	{
		name: "bash",
		install: `To load completions in your current shell session:

  source <(shortcode completion bash)

To load completions for every new session:

  # Linux
  shortcode completion bash > /etc/bash_completion.d/shortcode

  # macOS (requires bash-completion)
  shortcode completion bash > $(brew --prefix)/etc/bash_completion.d/shortcode`,
		example: `  # Load in current session
  source <(shortcode completion bash)`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenBashCompletion(w)
		},
	},
	{
		name: "zsh",
		install: `To load completions in your current shell session:

  source <(shortcode completion zsh)

To load completions for every new session, make sure compinit runs in
~/.zshrc and write the script to a directory on your fpath:

  shortcode completion zsh > "${fpath[1]}/_shortcode"`,
		example: `  # Install permanently
  mkdir -p ~/.zsh/completions
  shortcode completion zsh > ~/.zsh/completions/_shortcode`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenZshCompletion(w)
		},
	},
	{
		name: "fish",
		install: `To load completions in your current shell session:

  shortcode completion fish | source

To load completions for every new session:

  shortcode completion fish > ~/.config/fish/completions/shortcode.fish`,
		example: `  shortcode completion fish | source`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenFishCompletion(w, true)
		},
	},
	{
		name: "powershell",
		install: `To load completions in your current shell session:

  shortcode completion powershell | Out-String | Invoke-Expression

To load completions for every new session, add the output to your profile:

  shortcode completion powershell >> $PROFILE`,
		example: `  shortcode completion powershell | Out-String | Invoke-Expression`,
		gen: func(root *cobra.Command, w io.Writer) error {
			return root.GenPowerShellCompletionWithDesc(w)
		},
	},
}

// NewCmdCompletion creates the completion command.
func NewCmdCompletion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for shortcode.

These scripts enable tab-completion for commands, flags, and arguments.
See each sub-command's help for installation instructions.`,
	}

	for _, s := range shells {
		cmd.AddCommand(newShellCmd(s))
	}

	return cmd
}

func newShellCmd(s shell) *cobra.Command {
	return &cobra.Command{
		Use:                   s.name,
		Short:                 "Generate " + s.name + " completion script",
		Long:                  "Generate " + s.name + " completion script for shortcode.\n\n" + s.install,
		Example:               s.example,
		Args:                  cobra.NoArgs,
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
}
