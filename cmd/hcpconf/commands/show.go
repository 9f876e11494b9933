package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/hcpconf/cmd/hcpconf/handlers"
)

// Show returns the command for printing the effective configuration.
//
// Flags:
//
//	--output, -o: output format, yaml or json (default yaml)
func Show() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show [config-file]",
		Short: "Print the effective configuration with defaults applied",
		Long: `Print the effective configuration.

Loads the document, applies documented defaults (availability policies,
unlimited storage quota), and renders the result. This is what a
deployment run would actually consume.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path, err := handlers.ResolveConfigPath(args)
			if err != nil {
				return err
			}
			return handlers.Show(path, format)
		},
	}

	cmd.Flags().StringVarP(&format, "output", "o", "yaml", "Output format (yaml or json)")

	return cmd
}
