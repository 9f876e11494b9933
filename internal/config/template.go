package config

// configTemplate is the annotated starter document written by `hcpconf init
// --defaults`. It deploys a provider-mode hub on bare metal with one hosted
// client cluster.
const configTemplate = `# Deployment configuration for a hub cluster with hosted client clusters on
# bare metal. Worker nodes of hosted clusters are backed by VMs on the hub.
DEPLOYMENT:
  # Install the virtualization operator so hosted workers can run as VMs.
  cnv_deployment: true
  # Install the MetalLB operator for load-balancer services on bare metal.
  metallb_operator: true
  # Use the latest stable virtualization release instead of a pinned one.
  cnv_latest_stable: true
  # Install the local storage operator and storage class.
  local_storage: true
  # Deploy the hyperconverged resource alongside the virtualization operator.
  deploy_hyperconverged: false
ENV_DATA:
  platform: "hci_baremetal"
  # Hosting client clusters requires a provider-mode hub.
  cluster_type: "provider"
  deploy_acm_hub_cluster: true
  acm_version: "2.12"
  acm_hub_channel: "release-2.12"
  hcp_version: "4.19"
  metallb_version: "4.16"
  # Install standalone multicluster engine instead of full ACM.
  deploy_mce: false
  # Remove the clusters section to skip hosted-cluster installation.
  clusters:
    hcp-cluster-1:
      # Directory for the hosted cluster's kubeconfig and artifacts.
      hosted_cluster_path: "~/clusters/hcp-cluster-1"
      ocp_version: "4.19.0"
      cpu_cores_per_hosted_cluster: 8
      memory_per_hosted_cluster: "12Gi"
      # Catalog registry and version for the storage add-on.
      hosted_odf_registry: "quay.io/rhceph-dev/ocs-registry"
      hosted_odf_version: "4.19.0-rhodf"
      # Set up and verify the storage client on the hosted cluster.
      setup_storage_client: true
      nodepool_replicas: 2
      # Optional; defaults to HighlyAvailable.
      cp_availability_policy: "HighlyAvailable"
      infra_availability_policy: "HighlyAvailable"
      # Optional storage quota in Gi; omit for unlimited.
      storage_quota: 100
`

// Template returns the annotated starter configuration document.
func Template() string {
	return configTemplate
}
