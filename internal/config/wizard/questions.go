package wizard

import (
	"context"
	"regexp"
	"strconv"

	"github.com/charmbracelet/huh"
	"k8s.io/apimachinery/pkg/api/resource"
)

// clusterNameRegex validates hosted-cluster names: 1-32 lowercase
// alphanumeric with hyphens.
var clusterNameRegex = regexp.MustCompile(`^[a-z0-9](?:[a-z0-9-]{0,30}[a-z0-9])?$`)

// runHubGroup prompts for the hub-cluster environment and toggles.
func runHubGroup(ctx context.Context, result *Result) error {
	options := make([]huh.Option[string], len(DeploymentToggles))
	defaultSelected := []string{}

	for i, toggle := range DeploymentToggles {
		options[i] = huh.NewOption(toggle.Label+" - "+toggle.Description, toggle.Key)
		if toggle.Default {
			defaultSelected = append(defaultSelected, toggle.Key)
		}
	}

	result.EnabledToggles = defaultSelected
	result.ACMVersion = ACMVersions[0].Value
	result.HCPVersion = HCPVersions[0].Value

	return huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Hub Operators").
				Description("Select the operators to install on the hub cluster").
				Options(options...).
				Value(&result.EnabledToggles),
			huh.NewConfirm().
				Title("Deploy ACM Hub?").
				Description("Install the ACM hub operator on the cluster").
				Value(&result.DeployACMHub),
			huh.NewSelect[string]().
				Title("ACM Version").
				Options(VersionsToOptions(ACMVersions)...).
				Value(&result.ACMVersion),
			huh.NewSelect[string]().
				Title("HCP Version").
				Description("Hosted control planes release").
				Options(VersionsToOptions(HCPVersions)...).
				Value(&result.HCPVersion),
		).Title("Hub Cluster"),
	).RunWithContext(ctx)
}

// runHostedClusterGroup prompts whether to declare a hosted cluster and, if
// so, for its identity.
func runHostedClusterGroup(ctx context.Context, result *Result) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Add a Hosted Cluster?").
				Description("Declare a client cluster hosted on this hub. Skipping leaves hosted-cluster installation off.").
				Value(&result.AddCluster),
		).Title("Hosted Clusters"),
	).RunWithContext(ctx)

	if err != nil || !result.AddCluster {
		return err
	}

	result.OCPVersion = OCPVersions[0].Value

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Cluster Name").
				Description("1-32 lowercase alphanumeric characters or hyphens").
				Placeholder("hcp-cluster-1").
				Value(&result.ClusterName).
				Validate(validateClusterName),
			huh.NewInput().
				Title("Artifacts Path").
				Description("Directory for the hosted cluster's kubeconfig and artifacts").
				Placeholder("~/clusters/hcp-cluster-1").
				Value(&result.ClusterPath).
				Validate(validatePath),
			huh.NewSelect[string]().
				Title("OpenShift Version").
				Options(VersionsToOptions(OCPVersions)...).
				Value(&result.OCPVersion),
		).Title("Cluster Identity"),
	).RunWithContext(ctx)
}

// runResourcesGroup prompts for per-node resources and the worker count.
func runResourcesGroup(ctx context.Context, result *Result) error {
	result.CPUCores = 8
	result.Memory = "12Gi"
	result.NodepoolReplicas = 2

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("CPU Cores per Node").
				Options(CPUCountOptions...).
				Value(&result.CPUCores),
			huh.NewInput().
				Title("Memory per Node").
				Description("Kubernetes quantity, e.g. 12Gi").
				Placeholder("12Gi").
				Value(&result.Memory).
				Validate(validateMemory),
			huh.NewSelect[int]().
				Title("Worker Replicas").
				Description("Number of worker nodes in the node pool").
				Options(ReplicaCountOptions...).
				Value(&result.NodepoolReplicas),
		).Title("Node Resources"),
	).RunWithContext(ctx)
}

// runStorageGroup prompts for the storage-client setup.
func runStorageGroup(ctx context.Context, result *Result) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Set Up Storage Client?").
				Description("Deploy and verify the storage client on the hosted cluster").
				Value(&result.SetupStorageClient),
		).Title("Storage"),
	).RunWithContext(ctx)

	if err != nil {
		return err
	}

	if result.SetupStorageClient {
		err = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Storage Add-on Registry").
					Description("Catalog image registry reference").
					Placeholder("quay.io/rhceph-dev/ocs-registry").
					Value(&result.ODFRegistry).
					Validate(validateRegistry),
				huh.NewInput().
					Title("Storage Add-on Version").
					Placeholder("4.19.0-rhodf").
					Value(&result.ODFVersion).
					Validate(validateRequiredVersion),
			).Title("Storage Add-on"),
		).RunWithContext(ctx)

		if err != nil {
			return err
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Storage Quota (Gi, Optional)").
				Description("Upper bound for the storage client. Leave empty for unlimited.").
				Value(&result.StorageQuota).
				Validate(validateQuota),
		).Title("Storage Quota"),
	).RunWithContext(ctx)
}

// runAvailabilityGroup prompts for the availability policies.
func runAvailabilityGroup(ctx context.Context, result *Result) error {
	result.CPAvailabilityPolicy = PolicyOptions()[0].Value
	result.InfraAvailabilityPolicy = PolicyOptions()[0].Value

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Control Plane Availability").
				Options(PolicyOptions()...).
				Value(&result.CPAvailabilityPolicy),
			huh.NewSelect[string]().
				Title("Infrastructure Availability").
				Options(PolicyOptions()...).
				Value(&result.InfraAvailabilityPolicy),
		).Title("Availability"),
	).RunWithContext(ctx)
}

// validateClusterName validates the hosted-cluster name format.
func validateClusterName(s string) error {
	if s == "" {
		return errClusterNameRequired
	}
	if !clusterNameRegex.MatchString(s) {
		return errClusterNameInvalid
	}
	return nil
}

// validatePath requires a non-empty artifacts path.
func validatePath(s string) error {
	if s == "" {
		return errPathRequired
	}
	return nil
}

// validateRegistry requires a non-empty registry reference.
func validateRegistry(s string) error {
	if s == "" {
		return errRegistryRequired
	}
	return nil
}

// validateRequiredVersion requires a non-empty version tag.
func validateRequiredVersion(s string) error {
	if s == "" {
		return errVersionRequired
	}
	return nil
}

// validateMemory validates a Kubernetes quantity string.
func validateMemory(s string) error {
	q, err := resource.ParseQuantity(s)
	if err != nil || q.Sign() <= 0 {
		return errMemoryInvalid
	}
	return nil
}

// validateQuota accepts an empty value (unlimited) or a positive integer.
func validateQuota(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return errQuotaInvalid
	}
	return nil
}
