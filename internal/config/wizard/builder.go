package wizard

import (
	"strconv"

	"github.com/imamik/hcpconf/internal/config"
)

// BuildConfig creates a Config from the wizard result.
func BuildConfig(result *Result) *config.Config {
	cfg := &config.Config{
		Deployment: config.Deployment{
			CNVDeployment:        containsToggle(result.EnabledToggles, ToggleCNV),
			MetalLBOperator:      containsToggle(result.EnabledToggles, ToggleMetalLB),
			CNVLatestStable:      containsToggle(result.EnabledToggles, ToggleCNVLatest),
			LocalStorage:         containsToggle(result.EnabledToggles, ToggleLocalStorage),
			DeployHyperconverged: containsToggle(result.EnabledToggles, ToggleHyperconverged),
		},
		EnvData: config.EnvData{
			Platform:     config.PlatformHCIBareMetal,
			DeployACMHub: result.DeployACMHub,
			ACMVersion:   result.ACMVersion,
			// Subscription channel tracks the selected release.
			ACMHubChannel:  "release-" + result.ACMVersion,
			HCPVersion:     result.HCPVersion,
			MetalLBVersion: DefaultMetalLBVersion,
		},
	}

	if !result.AddCluster {
		return cfg
	}

	// Hosting client clusters requires a provider-mode hub.
	cfg.EnvData.ClusterType = config.ClusterTypeProvider

	hc := config.HostedCluster{
		Path:                    result.ClusterPath,
		OCPVersion:              result.OCPVersion,
		CPUCores:                result.CPUCores,
		Memory:                  result.Memory,
		ODFRegistry:             result.ODFRegistry,
		ODFVersion:              result.ODFVersion,
		SetupStorageClient:      result.SetupStorageClient,
		NodepoolReplicas:        result.NodepoolReplicas,
		CPAvailabilityPolicy:    config.AvailabilityPolicy(result.CPAvailabilityPolicy),
		InfraAvailabilityPolicy: config.AvailabilityPolicy(result.InfraAvailabilityPolicy),
	}

	if result.StorageQuota != "" {
		if quota, err := strconv.Atoi(result.StorageQuota); err == nil {
			hc.StorageQuota = &quota
		}
	}

	cfg.EnvData.Clusters = map[string]config.HostedCluster{
		result.ClusterName: hc,
	}

	return cfg
}
