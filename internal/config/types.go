package config

import (
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
	"k8s.io/apimachinery/pkg/api/resource"
)

// Config holds the full deployment configuration document.
type Config struct {
	// Deployment contains the operator and feature toggles for the hub cluster.
	Deployment Deployment `mapstructure:"DEPLOYMENT" yaml:"DEPLOYMENT"`

	// EnvData describes the target environment and the hosted clusters to create.
	EnvData EnvData `mapstructure:"ENV_DATA" yaml:"ENV_DATA"`
}

// Deployment holds the feature toggles for the hub-cluster deployment.
type Deployment struct {
	// CNVDeployment installs the virtualization operator so hosted worker
	// nodes can be backed by VMs on the bare-metal hub.
	CNVDeployment bool `mapstructure:"cnv_deployment" yaml:"cnv_deployment"`

	// MetalLBOperator installs the MetalLB operator for load-balancer
	// services on bare metal.
	MetalLBOperator bool `mapstructure:"metallb_operator" yaml:"metallb_operator"`

	// CNVLatestStable selects the latest stable virtualization release
	// instead of a pinned version.
	CNVLatestStable bool `mapstructure:"cnv_latest_stable" yaml:"cnv_latest_stable"`

	// LocalStorage installs the local storage operator and storage class.
	LocalStorage bool `mapstructure:"local_storage" yaml:"local_storage"`

	// DeployHyperconverged deploys the hyperconverged resource alongside
	// the virtualization operator.
	DeployHyperconverged bool `mapstructure:"deploy_hyperconverged" yaml:"deploy_hyperconverged"`
}

// EnvData describes the environment the hub cluster runs in and the hosted
// clusters it should carry.
type EnvData struct {
	// Platform is the infrastructure platform of the hub cluster,
	// e.g. "hci_baremetal".
	Platform string `mapstructure:"platform" yaml:"platform"`

	// ClusterType selects the hub's role. Hosting client clusters requires
	// a provider-mode hub.
	ClusterType ClusterType `mapstructure:"cluster_type" yaml:"cluster_type"`

	// DeployACMHub installs the ACM hub operator on the cluster.
	DeployACMHub bool `mapstructure:"deploy_acm_hub_cluster" yaml:"deploy_acm_hub_cluster"`

	// ACMVersion is the ACM release to install (e.g. "2.12").
	ACMVersion string `mapstructure:"acm_version" yaml:"acm_version"`

	// ACMHubChannel is the subscription channel for the ACM hub
	// (e.g. "release-2.12").
	ACMHubChannel string `mapstructure:"acm_hub_channel" yaml:"acm_hub_channel"`

	// HCPVersion is the hosted control planes release used for the
	// hcp client binary.
	HCPVersion string `mapstructure:"hcp_version" yaml:"hcp_version"`

	// MetalLBVersion is the MetalLB operator version to install.
	MetalLBVersion string `mapstructure:"metallb_version" yaml:"metallb_version"`

	// DeployMCE installs standalone multicluster engine instead of full ACM.
	DeployMCE bool `mapstructure:"deploy_mce" yaml:"deploy_mce"`

	// Clusters maps hosted-cluster names to their definitions. Absent or
	// empty means hosted-cluster installation is skipped.
	Clusters map[string]HostedCluster `mapstructure:"clusters" yaml:"clusters,omitempty"`
}

// HostedCluster defines one hosted client cluster, keyed by its name in
// EnvData.Clusters.
type HostedCluster struct {
	// Path is the filesystem directory for the hosted cluster's artifacts
	// (kubeconfig, manifests, logs).
	Path string `mapstructure:"hosted_cluster_path" yaml:"hosted_cluster_path"`

	// OCPVersion is the OpenShift release for the hosted cluster (semver).
	OCPVersion string `mapstructure:"ocp_version" yaml:"ocp_version"`

	// CPUCores is the CPU core count for each hosted worker node. Must be
	// positive.
	CPUCores int `mapstructure:"cpu_cores_per_hosted_cluster" yaml:"cpu_cores_per_hosted_cluster"`

	// Memory is the memory size for each hosted worker node, as a
	// Kubernetes quantity string (e.g. "12Gi").
	Memory string `mapstructure:"memory_per_hosted_cluster" yaml:"memory_per_hosted_cluster"`

	// ODFRegistry is the image registry reference for the storage add-on
	// catalog. Required when SetupStorageClient is true.
	ODFRegistry string `mapstructure:"hosted_odf_registry" yaml:"hosted_odf_registry"`

	// ODFVersion is the storage add-on version tag. Required when
	// SetupStorageClient is true.
	ODFVersion string `mapstructure:"hosted_odf_version" yaml:"hosted_odf_version"`

	// SetupStorageClient enables storage-client setup and verification on
	// the hosted cluster.
	SetupStorageClient bool `mapstructure:"setup_storage_client" yaml:"setup_storage_client"`

	// NodepoolReplicas is the worker-node replica count. Zero is valid and
	// means no workers.
	NodepoolReplicas int `mapstructure:"nodepool_replicas" yaml:"nodepool_replicas"`

	// CPAvailabilityPolicy is the availability policy for control-plane
	// components. Defaults to HighlyAvailable when absent.
	CPAvailabilityPolicy AvailabilityPolicy `mapstructure:"cp_availability_policy" yaml:"cp_availability_policy,omitempty"`

	// InfraAvailabilityPolicy is the availability policy for infrastructure
	// components. Defaults to HighlyAvailable when absent.
	InfraAvailabilityPolicy AvailabilityPolicy `mapstructure:"infra_availability_policy" yaml:"infra_availability_policy,omitempty"`

	// StorageQuota is the storage-client quota in Gi. Nil means unlimited.
	StorageQuota *int `mapstructure:"storage_quota" yaml:"storage_quota,omitempty"`
}

// ClusterType is the role of the hub cluster.
type ClusterType string

const (
	// ClusterTypeProvider configures the hub to host control planes for
	// client clusters.
	ClusterTypeProvider ClusterType = "provider"
	// ClusterTypeClient marks a cluster consuming storage from a provider.
	ClusterTypeClient ClusterType = "client"
)

// ValidClusterTypes returns all known cluster types.
func ValidClusterTypes() []ClusterType {
	return []ClusterType{ClusterTypeProvider, ClusterTypeClient}
}

// IsValid returns true if the cluster type is a known value.
func (t ClusterType) IsValid() bool {
	switch t {
	case ClusterTypeProvider, ClusterTypeClient:
		return true
	default:
		return false
	}
}

// String returns a human-readable description of the cluster type.
func (t ClusterType) String() string {
	switch t {
	case ClusterTypeProvider:
		return "provider (hosts control planes for client clusters)"
	case ClusterTypeClient:
		return "client (consumes storage from a provider)"
	default:
		return string(t)
	}
}

// PlatformHCIBareMetal is the bare-metal platform with virtualization-backed
// worker nodes.
const PlatformHCIBareMetal = "hci_baremetal"

// AvailabilityPolicy is the redundancy setting for hosted control-plane and
// infrastructure components.
type AvailabilityPolicy string

const (
	// HighlyAvailable runs redundant replicas spread across nodes.
	HighlyAvailable AvailabilityPolicy = "HighlyAvailable"
	// SingleReplica runs a single replica of each component.
	SingleReplica AvailabilityPolicy = "SingleReplica"
)

// ValidAvailabilityPolicies returns all valid availability policies.
func ValidAvailabilityPolicies() []AvailabilityPolicy {
	return []AvailabilityPolicy{HighlyAvailable, SingleReplica}
}

// IsValid returns true if the policy is a valid value.
func (p AvailabilityPolicy) IsValid() bool {
	switch p {
	case HighlyAvailable, SingleReplica:
		return true
	default:
		return false
	}
}

// String returns a human-readable description of the policy.
func (p AvailabilityPolicy) String() string {
	switch p {
	case HighlyAvailable:
		return "HighlyAvailable (redundant replicas)"
	case SingleReplica:
		return "SingleReplica (no redundancy)"
	default:
		return string(p)
	}
}

// HasClusters returns true if any hosted clusters are declared.
func (c *Config) HasClusters() bool {
	return len(c.EnvData.Clusters) > 0
}

// ClusterNames returns the hosted-cluster names in stable sorted order.
func (c *Config) ClusterNames() []string {
	names := make([]string, 0, len(c.EnvData.Clusters))
	for name := range c.EnvData.Clusters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MemoryQuantity parses the per-node memory size as a Kubernetes quantity.
func (h *HostedCluster) MemoryQuantity() (resource.Quantity, error) {
	q, err := resource.ParseQuantity(h.Memory)
	if err != nil {
		return resource.Quantity{}, fmt.Errorf("invalid memory %q: %w", h.Memory, err)
	}
	return q, nil
}

// OCPSemver parses the hosted cluster's OpenShift version.
func (h *HostedCluster) OCPSemver() (*semver.Version, error) {
	v, err := semver.NewVersion(h.OCPVersion)
	if err != nil {
		return nil, fmt.Errorf("invalid ocp_version %q: %w", h.OCPVersion, err)
	}
	return v, nil
}

// StorageQuotaUnlimited returns true when no storage quota is set.
func (h *HostedCluster) StorageQuotaUnlimited() bool {
	return h.StorageQuota == nil
}

// StorageQuotaQuantity returns the storage quota as a Kubernetes quantity,
// or nil when the quota is unlimited.
func (h *HostedCluster) StorageQuotaQuantity() *resource.Quantity {
	if h.StorageQuota == nil {
		return nil
	}
	q := resource.MustParse(fmt.Sprintf("%dGi", *h.StorageQuota))
	return &q
}
