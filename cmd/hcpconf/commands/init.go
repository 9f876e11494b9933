package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/hcpconf/cmd/hcpconf/handlers"
)

// Init returns the command for creating a starter deployment configuration.
//
// Flags:
//
//	--output, -o: path to the output file (default "hcpconf.yaml")
//	--defaults: write the annotated template without prompting
func Init() *cobra.Command {
	var (
		outputPath  string
		useDefaults bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a deployment configuration",
		Long: `Create a deployment configuration file.

This command guides you through configuring the hub cluster and an
optional first hosted cluster step by step. It will ask about:

  - Hub operators (virtualization, MetalLB, local storage)
  - ACM hub deployment and versions
  - Hosted-cluster identity, node resources, and worker replicas
  - Storage-client setup and quota
  - Availability policies

Use --defaults to skip the prompts and write the annotated starter
template instead. The template is also written when stdout is not a
terminal.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath, useDefaults)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "hcpconf.yaml", "Output file path")
	cmd.Flags().BoolVar(&useDefaults, "defaults", false, "Write the annotated template without prompting")

	return cmd
}
