// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument
// parsing, flag binding, and validation. Command execution is delegated to
// handler functions in the handlers package.
package commands

import "github.com/spf13/cobra"

// Root returns the root command for the hcpconf CLI.
func Root() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hcpconf",
		Short: "Manage deployment configuration for hosted clusters on bare metal",
	}

	cmd.AddCommand(Init())
	cmd.AddCommand(Validate())
	cmd.AddCommand(Show())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
