package wizard

import (
	"testing"

	"github.com/imamik/hcpconf/internal/config"
)

func TestBuildConfig_HubOnly(t *testing.T) {
	t.Parallel()
	result := &Result{
		EnabledToggles: []string{ToggleCNV, ToggleMetalLB, ToggleLocalStorage},
		DeployACMHub:   true,
		ACMVersion:     "2.12",
		HCPVersion:     "4.19",
	}

	cfg := BuildConfig(result)

	if !cfg.Deployment.CNVDeployment {
		t.Error("CNVDeployment = false, want true")
	}
	if cfg.Deployment.DeployHyperconverged {
		t.Error("DeployHyperconverged = true, want false")
	}
	if cfg.EnvData.ACMHubChannel != "release-2.12" {
		t.Errorf("ACMHubChannel = %q, want release-2.12", cfg.EnvData.ACMHubChannel)
	}
	if cfg.HasClusters() {
		t.Error("HasClusters() = true, want false without a hosted cluster")
	}
	if issues := cfg.WithDefaults().Validate(); len(issues) != 0 {
		t.Errorf("built config has validation issues: %v", issues)
	}
}

func TestBuildConfig_WithHostedCluster(t *testing.T) {
	t.Parallel()
	result := &Result{
		EnabledToggles:          []string{ToggleCNV, ToggleMetalLB},
		DeployACMHub:            true,
		ACMVersion:              "2.12",
		HCPVersion:              "4.19",
		AddCluster:              true,
		ClusterName:             "hcp-cluster-1",
		ClusterPath:             "~/clusters/hcp-cluster-1",
		OCPVersion:              "4.19.0",
		CPUCores:                8,
		Memory:                  "12Gi",
		NodepoolReplicas:        2,
		SetupStorageClient:      true,
		ODFRegistry:             "quay.io/rhceph-dev/ocs-registry",
		ODFVersion:              "4.19.0-rhodf",
		StorageQuota:            "100",
		CPAvailabilityPolicy:    string(config.HighlyAvailable),
		InfraAvailabilityPolicy: string(config.SingleReplica),
	}

	cfg := BuildConfig(result)

	if cfg.EnvData.ClusterType != config.ClusterTypeProvider {
		t.Errorf("ClusterType = %q, want provider", cfg.EnvData.ClusterType)
	}

	hc, ok := cfg.EnvData.Clusters["hcp-cluster-1"]
	if !ok {
		t.Fatal("hosted cluster not present in built config")
	}
	if hc.CPUCores != 8 || hc.Memory != "12Gi" || hc.NodepoolReplicas != 2 {
		t.Errorf("node resources = %d/%s/%d, want 8/12Gi/2", hc.CPUCores, hc.Memory, hc.NodepoolReplicas)
	}
	if hc.StorageQuota == nil || *hc.StorageQuota != 100 {
		t.Errorf("StorageQuota = %v, want 100", hc.StorageQuota)
	}
	if hc.InfraAvailabilityPolicy != config.SingleReplica {
		t.Errorf("InfraAvailabilityPolicy = %q, want SingleReplica", hc.InfraAvailabilityPolicy)
	}

	if issues := cfg.Validate(); len(issues) != 0 {
		t.Errorf("built config has validation issues: %v", issues)
	}
}

func TestBuildConfig_EmptyQuotaMeansUnlimited(t *testing.T) {
	t.Parallel()
	result := &Result{
		AddCluster:       true,
		ClusterName:      "dev",
		ClusterPath:      "~/clusters/dev",
		OCPVersion:       "4.19.0",
		CPUCores:         4,
		Memory:           "8Gi",
		NodepoolReplicas: 0,
		StorageQuota:     "",
	}

	cfg := BuildConfig(result)

	hc := cfg.EnvData.Clusters["dev"]
	if !hc.StorageQuotaUnlimited() {
		t.Error("StorageQuotaUnlimited() = false for empty quota answer")
	}
}
