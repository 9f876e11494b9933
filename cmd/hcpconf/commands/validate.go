package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/hcpconf/cmd/hcpconf/handlers"
)

// Validate returns the command for validating a deployment configuration.
//
// Flags:
//
//	--strict: treat warnings as failures
//	--json: machine-readable output
func Validate() *cobra.Command {
	var (
		strict     bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate a deployment configuration",
		Long: `Validate a deployment configuration file.

Loads the document, applies documented defaults, and checks every
cross-field rule, reporting all findings in one pass. Without an argument
the file is discovered by searching for ` + "`hcpconf.yaml`" + ` upward from the
current directory.

The command exits non-zero when the document cannot be loaded or any
error-severity issue is found. With --strict, warnings fail the run too.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path, err := handlers.ResolveConfigPath(args)
			if err != nil {
				return err
			}
			return handlers.Validate(path, strict, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as failures")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")

	return cmd
}
