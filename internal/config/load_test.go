package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

const validDoc = `
DEPLOYMENT:
  cnv_deployment: true
  metallb_operator: true
  cnv_latest_stable: true
  local_storage: true
  deploy_hyperconverged: false
ENV_DATA:
  platform: "hci_baremetal"
  cluster_type: "provider"
  deploy_acm_hub_cluster: true
  acm_version: "2.12"
  acm_hub_channel: "release-2.12"
  hcp_version: "4.19"
  metallb_version: "4.16"
  deploy_mce: false
  clusters:
    hcp-cluster-1:
      hosted_cluster_path: "~/clusters/hcp-cluster-1"
      ocp_version: "4.19.0"
      cpu_cores_per_hosted_cluster: 8
      memory_per_hosted_cluster: "12Gi"
      hosted_odf_registry: "quay.io/rhceph-dev/ocs-registry"
      hosted_odf_version: "4.19.0-rhodf"
      setup_storage_client: true
      nodepool_replicas: 2
      storage_quota: 100
`

func TestLoad_ValidConfig(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, DefaultConfigFilename)
	if err := os.WriteFile(configPath, []byte(validDoc), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if !cfg.Deployment.CNVDeployment {
		t.Error("Deployment.CNVDeployment = false, want true")
	}
	if cfg.EnvData.Platform != PlatformHCIBareMetal {
		t.Errorf("EnvData.Platform = %q, want %q", cfg.EnvData.Platform, PlatformHCIBareMetal)
	}
	if cfg.EnvData.ClusterType != ClusterTypeProvider {
		t.Errorf("EnvData.ClusterType = %q, want %q", cfg.EnvData.ClusterType, ClusterTypeProvider)
	}

	hc, ok := cfg.EnvData.Clusters["hcp-cluster-1"]
	if !ok {
		t.Fatal("cluster hcp-cluster-1 not found")
	}
	if hc.CPUCores != 8 {
		t.Errorf("CPUCores = %d, want 8", hc.CPUCores)
	}
	if hc.Memory != "12Gi" {
		t.Errorf("Memory = %q, want %q", hc.Memory, "12Gi")
	}
	if hc.NodepoolReplicas != 2 {
		t.Errorf("NodepoolReplicas = %d, want 2", hc.NodepoolReplicas)
	}
	if hc.StorageQuota == nil || *hc.StorageQuota != 100 {
		t.Errorf("StorageQuota = %v, want 100", hc.StorageQuota)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	t.Parallel()
	_, err := Load("/nonexistent/path/hcpconf.yaml")
	if err == nil {
		t.Error("Load() expected error for nonexistent file")
	}
}

func TestLoadFromBytes_InvalidYAML(t *testing.T) {
	t.Parallel()
	_, err := LoadFromBytes([]byte("{{{{not valid yaml"))
	if err == nil {
		t.Fatal("LoadFromBytes() expected error for invalid YAML")
	}
}

func TestLoadFromBytes_EmptyDocument(t *testing.T) {
	t.Parallel()
	_, err := LoadFromBytes([]byte(""))

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("LoadFromBytes() error = %v, want *SchemaError", err)
	}
}

func TestLoadFromBytes_MissingEnvData(t *testing.T) {
	t.Parallel()
	content := []byte(`
DEPLOYMENT:
  cnv_deployment: true
`)
	_, err := LoadFromBytes(content)

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("LoadFromBytes() error = %v, want *SchemaError", err)
	}
	if schemaErr.Section != "ENV_DATA" {
		t.Errorf("Section = %q, want %q", schemaErr.Section, "ENV_DATA")
	}
}

func TestLoadFromBytes_SectionWrongShape(t *testing.T) {
	t.Parallel()
	content := []byte(`
DEPLOYMENT: yes
ENV_DATA:
  platform: "hci_baremetal"
`)
	_, err := LoadFromBytes(content)

	var schemaErr *SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("LoadFromBytes() error = %v, want *SchemaError", err)
	}
	if schemaErr.Section != "DEPLOYMENT" {
		t.Errorf("Section = %q, want %q", schemaErr.Section, "DEPLOYMENT")
	}
}

func TestLoadFromBytes_WrongFieldType(t *testing.T) {
	t.Parallel()
	content := []byte(`
DEPLOYMENT:
  cnv_deployment: true
ENV_DATA:
  platform: "hci_baremetal"
  cluster_type: "provider"
  clusters:
    bad:
      hosted_cluster_path: "~/clusters/bad"
      ocp_version: "4.19.0"
      cpu_cores_per_hosted_cluster: "six"
      memory_per_hosted_cluster: "12Gi"
      nodepool_replicas: 2
`)
	_, err := LoadFromBytes(content)
	if err == nil {
		t.Fatal("LoadFromBytes() expected error for non-integer cpu count")
	}

	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("LoadFromBytes() error = %v, want *FieldError", err)
	}
	if !strings.Contains(err.Error(), "cpu_cores_per_hosted_cluster") {
		t.Errorf("error %q does not reference the offending field", err.Error())
	}
}

func TestLoadFromBytes_NegativeCPUCores(t *testing.T) {
	t.Parallel()
	content := []byte(`
DEPLOYMENT:
  cnv_deployment: true
ENV_DATA:
  platform: "hci_baremetal"
  cluster_type: "provider"
  clusters:
    bad:
      hosted_cluster_path: "~/clusters/bad"
      ocp_version: "4.19.0"
      cpu_cores_per_hosted_cluster: -1
      memory_per_hosted_cluster: "12Gi"
      nodepool_replicas: 2
`)
	_, err := LoadFromBytes(content)

	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("LoadFromBytes() error = %v, want *FieldError", err)
	}
	if !strings.Contains(fieldErr.Path, "cpu_cores_per_hosted_cluster") {
		t.Errorf("Path = %q, want cpu_cores_per_hosted_cluster reference", fieldErr.Path)
	}
}

func TestLoadFromBytes_NegativeReplicas(t *testing.T) {
	t.Parallel()
	content := []byte(`
DEPLOYMENT:
  cnv_deployment: true
ENV_DATA:
  platform: "hci_baremetal"
  cluster_type: "provider"
  clusters:
    bad:
      hosted_cluster_path: "~/clusters/bad"
      ocp_version: "4.19.0"
      cpu_cores_per_hosted_cluster: 4
      memory_per_hosted_cluster: "12Gi"
      nodepool_replicas: -3
`)
	_, err := LoadFromBytes(content)

	var fieldErr *FieldError
	if !errors.As(err, &fieldErr) {
		t.Fatalf("LoadFromBytes() error = %v, want *FieldError", err)
	}
	if !strings.Contains(fieldErr.Path, "nodepool_replicas") {
		t.Errorf("Path = %q, want nodepool_replicas reference", fieldErr.Path)
	}
}

func TestLoadFromBytes_NoClusters(t *testing.T) {
	t.Parallel()
	content := []byte(`
DEPLOYMENT:
  cnv_deployment: true
  metallb_operator: false
ENV_DATA:
  platform: "hci_baremetal"
  cluster_type: "provider"
  deploy_acm_hub_cluster: true
`)
	cfg, err := LoadFromBytes(content)
	if err != nil {
		t.Fatalf("LoadFromBytes() error = %v", err)
	}

	if cfg.HasClusters() {
		t.Error("HasClusters() = true, want false for absent clusters section")
	}
	if issues := cfg.Validate(); len(issues) != 0 {
		t.Errorf("Validate() = %v, want no issues", issues)
	}
}

func TestLoadFromBytes_ZeroReplicasIsValid(t *testing.T) {
	t.Parallel()
	content := []byte(`
DEPLOYMENT:
  cnv_deployment: true
ENV_DATA:
  platform: "hci_baremetal"
  cluster_type: "provider"
  clusters:
    empty-pool:
      hosted_cluster_path: "~/clusters/empty-pool"
      ocp_version: "4.19.0"
      cpu_cores_per_hosted_cluster: 4
      memory_per_hosted_cluster: "8Gi"
      nodepool_replicas: 0
`)
	cfg, err := LoadFromBytes(content)
	if err != nil {
		t.Fatalf("LoadFromBytes() error = %v", err)
	}
	if cfg.EnvData.Clusters["empty-pool"].NodepoolReplicas != 0 {
		t.Error("NodepoolReplicas should be 0")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()
	cfg, err := LoadFromBytes([]byte(validDoc))
	if err != nil {
		t.Fatalf("LoadFromBytes() error = %v", err)
	}
	cfg = cfg.WithDefaults()

	tmpDir := t.TempDir()
	savePath := filepath.Join(tmpDir, "roundtrip.yaml")
	if err := Save(cfg, savePath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(savePath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	loaded = loaded.WithDefaults()

	if !reflect.DeepEqual(cfg, loaded) {
		t.Errorf("round-tripped config differs:\n got %+v\nwant %+v", loaded, cfg)
	}
}

func TestSave_InvalidPath(t *testing.T) {
	t.Parallel()
	cfg := &Config{}
	if err := Save(cfg, "/nonexistent/directory/hcpconf.yaml"); err == nil {
		t.Error("Save() expected error for invalid path")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	t.Parallel()
	path := DefaultConfigPath()
	if path == "" {
		t.Error("DefaultConfigPath() returned empty string")
	}
	if filepath.Base(path) != DefaultConfigFilename {
		t.Errorf("DefaultConfigPath() = %q, want filename %q", path, DefaultConfigFilename)
	}
}

func TestFindConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, DefaultConfigFilename)
	if err := os.WriteFile(configPath, []byte(validDoc), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get cwd: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to chdir: %v", err)
	}
	defer os.Chdir(originalDir)

	found, err := FindConfigFile()
	if err != nil {
		t.Fatalf("FindConfigFile() error = %v", err)
	}
	if found != configPath {
		t.Errorf("FindConfigFile() = %q, want %q", found, configPath)
	}
}

func TestFindConfigFile_InParentDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	childDir := filepath.Join(tmpDir, "child")
	if err := os.Mkdir(childDir, 0755); err != nil {
		t.Fatalf("Failed to create child dir: %v", err)
	}

	configPath := filepath.Join(tmpDir, DefaultConfigFilename)
	if err := os.WriteFile(configPath, []byte(validDoc), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get cwd: %v", err)
	}
	if err := os.Chdir(childDir); err != nil {
		t.Fatalf("Failed to chdir: %v", err)
	}
	defer os.Chdir(originalDir)

	found, err := FindConfigFile()
	if err != nil {
		t.Fatalf("FindConfigFile() error = %v", err)
	}
	if found != configPath {
		t.Errorf("FindConfigFile() = %q, want %q", found, configPath)
	}
}

func TestFindConfigFile_NotFound(t *testing.T) {
	tmpDir := t.TempDir()

	originalDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get cwd: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to chdir: %v", err)
	}
	defer os.Chdir(originalDir)

	if _, err := FindConfigFile(); err == nil {
		t.Error("FindConfigFile() expected error when no config file exists")
	}
}
