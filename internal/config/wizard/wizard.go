package wizard

import (
	"context"
	"fmt"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	// Hub cluster
	EnabledToggles []string
	DeployACMHub   bool
	ACMVersion     string
	HCPVersion     string

	// Hosted cluster (only meaningful when AddCluster is true)
	AddCluster  bool
	ClusterName string
	ClusterPath string
	OCPVersion  string

	CPUCores         int
	Memory           string
	NodepoolReplicas int

	SetupStorageClient bool
	ODFRegistry        string
	ODFVersion         string
	StorageQuota       string // empty means unlimited

	CPAvailabilityPolicy    string
	InfraAvailabilityPolicy string
}

// Run runs the interactive configuration wizard.
// The context is used for cancellation support (e.g., Ctrl+C).
func Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	if err := runHubGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("hub cluster: %w", err)
	}

	if err := runHostedClusterGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("hosted cluster: %w", err)
	}

	if !result.AddCluster {
		return result, nil
	}

	if err := runResourcesGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("node resources: %w", err)
	}

	if err := runStorageGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("storage: %w", err)
	}

	if err := runAvailabilityGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("availability: %w", err)
	}

	return result, nil
}

// containsToggle checks if a toggle key is in the enabled list.
func containsToggle(toggles []string, key string) bool {
	for _, t := range toggles {
		if t == key {
			return true
		}
	}
	return false
}
