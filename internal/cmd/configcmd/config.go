// Package configcmd provides config management commands.
package configcmd

import (
	"github.com/spf13/cobra"
)

// NewCmdConfig creates the config command.
func NewCmdConfig() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage shortcode configuration",
		Long:  `Commands for viewing, testing, and clearing shortcode configuration.`,
	}

	cmd.AddCommand(NewCmdShow())
	cmd.AddCommand(NewCmdTest())
	cmd.AddCommand(NewCmdClear())

	return cmd
}

// envVars lists the environment variables that override the config file.
var envVars = []string{
	"SHORTCODE_ACCEPTED_TAGS",
	"SHORTCODE_OUTPUT",
	"SHORTCODE_STORE_URL",
	"SHORTCODE_STORE_TOKEN",
}
