package wizard

import (
	"github.com/charmbracelet/huh"

	"github.com/imamik/hcpconf/internal/config"
)

// ToggleOption represents one DEPLOYMENT feature toggle.
type ToggleOption struct {
	Key         string
	Label       string
	Description string
	Default     bool
}

// VersionOption represents a selectable product version.
type VersionOption struct {
	Value       string
	Label       string
	Description string
}

// Toggle keys used by the deployment multi-select.
const (
	ToggleCNV            = "cnv_deployment"
	ToggleMetalLB        = "metallb_operator"
	ToggleCNVLatest      = "cnv_latest_stable"
	ToggleLocalStorage   = "local_storage"
	ToggleHyperconverged = "deploy_hyperconverged"
)

// DeploymentToggles contains the hub-cluster feature toggles.
var DeploymentToggles = []ToggleOption{
	{Key: ToggleCNV, Label: "Virtualization", Description: "VM-backed hosted worker nodes", Default: true},
	{Key: ToggleMetalLB, Label: "MetalLB", Description: "Load-balancer services on bare metal", Default: true},
	{Key: ToggleCNVLatest, Label: "Latest stable virtualization", Description: "Track the latest stable release", Default: true},
	{Key: ToggleLocalStorage, Label: "Local storage", Description: "Local storage operator and storage class", Default: true},
	{Key: ToggleHyperconverged, Label: "Hyperconverged", Description: "Deploy the hyperconverged resource", Default: false},
}

// ACMVersions contains selectable ACM hub releases.
var ACMVersions = []VersionOption{
	{Value: "2.12", Label: "2.12", Description: "Latest stable"},
	{Value: "2.11", Label: "2.11", Description: "Previous stable"},
}

// HCPVersions contains selectable hosted control plane releases.
var HCPVersions = []VersionOption{
	{Value: "4.19", Label: "4.19", Description: "Latest stable"},
	{Value: "4.18", Label: "4.18", Description: "Previous stable"},
}

// OCPVersions contains selectable OpenShift releases for hosted clusters.
var OCPVersions = []VersionOption{
	{Value: "4.19.0", Label: "4.19.0", Description: "Latest stable"},
	{Value: "4.18.9", Label: "4.18.9", Description: "Previous stable"},
}

// DefaultMetalLBVersion is the MetalLB operator version written by the wizard.
const DefaultMetalLBVersion = "4.16"

// CPUCountOptions contains common per-node CPU core counts.
var CPUCountOptions = []huh.Option[int]{
	huh.NewOption("4 cores", 4),
	huh.NewOption("6 cores", 6),
	huh.NewOption("8 cores (recommended)", 8),
	huh.NewOption("12 cores", 12),
}

// ReplicaCountOptions contains common worker replica counts.
var ReplicaCountOptions = []huh.Option[int]{
	huh.NewOption("0 (no workers)", 0),
	huh.NewOption("2 (recommended)", 2),
	huh.NewOption("3", 3),
}

// PolicyOptions returns the availability policy choices.
func PolicyOptions() []huh.Option[string] {
	return []huh.Option[string]{
		huh.NewOption("HighlyAvailable (redundant replicas)", string(config.HighlyAvailable)),
		huh.NewOption("SingleReplica (no redundancy)", string(config.SingleReplica)),
	}
}

// VersionsToOptions converts version options to huh select options.
func VersionsToOptions(versions []VersionOption) []huh.Option[string] {
	options := make([]huh.Option[string], len(versions))
	for i, v := range versions {
		options[i] = huh.NewOption(v.Label+" - "+v.Description, v.Value)
	}
	return options
}
