package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/imamik/hcpconf/internal/config"
	"github.com/imamik/hcpconf/internal/config/wizard"
)

// Factory function variables for init - can be replaced in tests.
var (
	// fileExists checks if a file exists.
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	// runWizard runs the interactive configuration wizard.
	runWizard = wizard.Run

	// buildConfig turns wizard answers into a configuration.
	buildConfig = wizard.BuildConfig

	// writeConfig writes the config to a file.
	writeConfig = config.Save

	// writeTemplate writes the annotated starter template.
	writeTemplate = func(path string) error {
		return os.WriteFile(path, []byte(config.Template()), 0o600)
	}

	// stdoutIsTTY reports whether prompts can be shown.
	stdoutIsTTY = isInteractiveTTY
)

// Init creates a deployment configuration at outputPath. With useDefaults
// set, or when stdout is not a terminal, it writes the annotated starter
// template; otherwise it runs the interactive wizard.
func Init(ctx context.Context, outputPath string, useDefaults bool) error {
	if fileExists(outputPath) {
		fmt.Printf("Warning: %s already exists and will be overwritten.\n\n", outputPath)
	}

	if useDefaults || !stdoutIsTTY() {
		if err := writeTemplate(outputPath); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		fmt.Printf("Starter configuration written to %s\n", outputPath)
		fmt.Println("Review the annotated fields, then run: hcpconf validate")
		return nil
	}

	printWelcome()

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	cfg := buildConfig(result)

	if err := writeConfig(cfg, outputPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	printInitSuccess(outputPath, cfg)

	return nil
}

// printWelcome prints the welcome message.
func printWelcome() {
	fmt.Println()
	fmt.Println("hcpconf - Hosted Clusters on Bare Metal")
	fmt.Println("=======================================")
	fmt.Println()
	fmt.Println("This wizard creates a deployment configuration for a hub cluster")
	fmt.Println("and an optional first hosted cluster.")
	fmt.Println("The generated YAML is fully expanded and explicit.")
	fmt.Println()
}

// printInitSuccess prints the success message with summary and next steps.
func printInitSuccess(outputPath string, cfg *config.Config) {
	fmt.Println()
	fmt.Println("Configuration saved!")
	fmt.Println()
	fmt.Printf("  File: %s\n", outputPath)
	fmt.Println()

	// Summary
	fmt.Println("Hub Summary")
	fmt.Println("-----------")
	fmt.Printf("  Platform:       %s\n", cfg.EnvData.Platform)
	fmt.Printf("  ACM hub:        %v\n", cfg.EnvData.DeployACMHub)
	if cfg.EnvData.DeployACMHub {
		fmt.Printf("  ACM version:    %s (%s)\n", cfg.EnvData.ACMVersion, cfg.EnvData.ACMHubChannel)
	}
	if cfg.EnvData.HCPVersion != "" {
		fmt.Printf("  HCP version:    %s\n", cfg.EnvData.HCPVersion)
	}
	fmt.Printf("  Virtualization: %v\n", cfg.Deployment.CNVDeployment)
	fmt.Printf("  MetalLB:        %v\n", cfg.Deployment.MetalLBOperator)
	fmt.Printf("  Local storage:  %v\n", cfg.Deployment.LocalStorage)
	fmt.Println()

	if cfg.HasClusters() {
		fmt.Println("Hosted Clusters")
		fmt.Println("---------------")
		for _, name := range cfg.ClusterNames() {
			hc := cfg.EnvData.Clusters[name]
			fmt.Printf("  %s:\n", name)
			fmt.Printf("    OCP version:  %s\n", hc.OCPVersion)
			fmt.Printf("    Resources:    %d cores, %s memory\n", hc.CPUCores, hc.Memory)
			fmt.Printf("    Workers:      %d\n", hc.NodepoolReplicas)
			if hc.SetupStorageClient {
				quota := "unlimited"
				if !hc.StorageQuotaUnlimited() {
					quota = fmt.Sprintf("%dGi", *hc.StorageQuota)
				}
				fmt.Printf("    Storage:      client enabled, quota %s\n", quota)
			}
		}
		fmt.Println()
	}

	// Next steps
	fmt.Println("Next Steps")
	fmt.Println("----------")
	fmt.Printf("  1. Review %s if needed\n", outputPath)
	fmt.Println()
	fmt.Println("  2. Check the configuration:")
	fmt.Printf("     hcpconf validate %s\n", outputPath)
	fmt.Println()
}
