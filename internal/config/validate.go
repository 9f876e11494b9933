package config

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"k8s.io/apimachinery/pkg/api/resource"
)

// Severity classifies a validation issue.
type Severity string

const (
	// SeverityError marks a rule violation that makes the document unusable
	// for a deployment run.
	SeverityError Severity = "error"
	// SeverityWarning marks a suspicious value that a deployment run may
	// still proceed with.
	SeverityWarning Severity = "warning"
)

// Issue is one validation finding. Issues are data, not errors: callers
// decide whether to abort or proceed.
type Issue struct {
	Field    string   `json:"field"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// String returns the issue in "field: message" form.
func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Message)
}

// HasErrors returns true if any issue in the list has error severity.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Validate checks cross-field rules and returns every finding in one pass.
// An empty slice means the configuration is valid. Scalar type and range
// violations are caught earlier, by Load.
func (c *Config) Validate() []Issue {
	var issues []Issue

	issues = append(issues, c.validateEnv()...)
	for _, name := range c.ClusterNames() {
		hc := c.EnvData.Clusters[name]
		issues = append(issues, validateHostedCluster(name, &hc)...)
	}

	return issues
}

// validateEnv checks the ENV_DATA section.
func (c *Config) validateEnv() []Issue {
	var issues []Issue
	env := &c.EnvData

	if env.Platform == "" {
		issues = append(issues, Issue{
			Field:    "ENV_DATA.platform",
			Message:  "platform is required",
			Severity: SeverityError,
		})
	}

	if env.ClusterType != "" && !env.ClusterType.IsValid() {
		issues = append(issues, Issue{
			Field:    "ENV_DATA.cluster_type",
			Message:  fmt.Sprintf("unknown cluster type %q, expected one of %v", string(env.ClusterType), ValidClusterTypes()),
			Severity: SeverityWarning,
		})
	}

	// Hosted clusters can only be carried by a provider-mode hub.
	if c.HasClusters() && env.ClusterType != ClusterTypeProvider {
		issues = append(issues, Issue{
			Field:    "ENV_DATA.cluster_type",
			Message:  `cluster_type must be "provider" when hosted clusters are declared`,
			Severity: SeverityError,
		})
	}

	versionFields := []struct {
		field string
		value string
	}{
		{"ENV_DATA.acm_version", env.ACMVersion},
		{"ENV_DATA.hcp_version", env.HCPVersion},
		{"ENV_DATA.metallb_version", env.MetalLBVersion},
	}
	for _, vf := range versionFields {
		field, value := vf.field, vf.value
		if value == "" {
			continue
		}
		if _, err := semver.NewVersion(value); err != nil {
			issues = append(issues, Issue{
				Field:    field,
				Message:  fmt.Sprintf("%q is not a valid version", value),
				Severity: SeverityWarning,
			})
		}
	}

	return issues
}

// validateHostedCluster checks one hosted-cluster entry.
func validateHostedCluster(name string, hc *HostedCluster) []Issue {
	var issues []Issue
	prefix := fmt.Sprintf("ENV_DATA.clusters[%s]", name)

	if hc.Path == "" {
		issues = append(issues, Issue{
			Field:    prefix + ".hosted_cluster_path",
			Message:  "hosted_cluster_path is required",
			Severity: SeverityError,
		})
	}

	if hc.OCPVersion == "" {
		issues = append(issues, Issue{
			Field:    prefix + ".ocp_version",
			Message:  "ocp_version is required",
			Severity: SeverityError,
		})
	} else if _, err := hc.OCPSemver(); err != nil {
		issues = append(issues, Issue{
			Field:    prefix + ".ocp_version",
			Message:  fmt.Sprintf("%q is not a valid semantic version", hc.OCPVersion),
			Severity: SeverityError,
		})
	}

	if hc.Memory == "" {
		issues = append(issues, Issue{
			Field:    prefix + ".memory_per_hosted_cluster",
			Message:  "memory_per_hosted_cluster is required",
			Severity: SeverityError,
		})
	} else if q, err := resource.ParseQuantity(hc.Memory); err != nil {
		issues = append(issues, Issue{
			Field:    prefix + ".memory_per_hosted_cluster",
			Message:  fmt.Sprintf("%q is not a valid quantity (expected e.g. \"12Gi\")", hc.Memory),
			Severity: SeverityError,
		})
	} else if q.Sign() <= 0 {
		issues = append(issues, Issue{
			Field:    prefix + ".memory_per_hosted_cluster",
			Message:  fmt.Sprintf("memory must be positive, got %q", hc.Memory),
			Severity: SeverityError,
		})
	}

	// Storage-client setup needs the add-on catalog coordinates.
	if hc.SetupStorageClient {
		if hc.ODFRegistry == "" {
			issues = append(issues, Issue{
				Field:    prefix + ".hosted_odf_registry",
				Message:  "hosted_odf_registry is required when setup_storage_client is true",
				Severity: SeverityError,
			})
		}
		if hc.ODFVersion == "" {
			issues = append(issues, Issue{
				Field:    prefix + ".hosted_odf_version",
				Message:  "hosted_odf_version is required when setup_storage_client is true",
				Severity: SeverityError,
			})
		}
	}

	if hc.CPAvailabilityPolicy != "" && !hc.CPAvailabilityPolicy.IsValid() {
		issues = append(issues, Issue{
			Field:    prefix + ".cp_availability_policy",
			Message:  fmt.Sprintf("must be one of %v, got %q", ValidAvailabilityPolicies(), string(hc.CPAvailabilityPolicy)),
			Severity: SeverityError,
		})
	}
	if hc.InfraAvailabilityPolicy != "" && !hc.InfraAvailabilityPolicy.IsValid() {
		issues = append(issues, Issue{
			Field:    prefix + ".infra_availability_policy",
			Message:  fmt.Sprintf("must be one of %v, got %q", ValidAvailabilityPolicies(), string(hc.InfraAvailabilityPolicy)),
			Severity: SeverityError,
		})
	}

	if hc.StorageQuota != nil && *hc.StorageQuota <= 0 {
		issues = append(issues, Issue{
			Field:    prefix + ".storage_quota",
			Message:  fmt.Sprintf("storage quota must be positive, got %d", *hc.StorageQuota),
			Severity: SeverityError,
		})
	}

	return issues
}
