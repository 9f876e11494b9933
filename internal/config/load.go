package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFilename is the default configuration filename.
const DefaultConfigFilename = "hcpconf.yaml"

// Load reads and decodes the deployment configuration from a YAML file.
// The returned error is a *SchemaError for mis-shaped documents, or joined
// *FieldError values for per-field type and range violations.
func Load(path string) (*Config, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes decodes the deployment configuration from raw YAML bytes.
func LoadFromBytes(data []byte) (*Config, error) {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := checkSections(raw); err != nil {
		return nil, err
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{Result: &cfg})
	if err != nil {
		return nil, fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, decodeFieldErrors(err)
	}

	if err := checkRanges(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// checkSections verifies the document has both top-level sections and that
// each is a mapping.
func checkSections(raw map[string]interface{}) error {
	if len(raw) == 0 {
		return &SchemaError{Section: "DEPLOYMENT", Reason: "document is empty"}
	}

	for _, section := range []string{"DEPLOYMENT", "ENV_DATA"} {
		value, ok := raw[section]
		if !ok {
			return &SchemaError{Section: section, Reason: "required section is missing"}
		}
		if _, ok := value.(map[string]interface{}); !ok {
			return &SchemaError{Section: section, Reason: fmt.Sprintf("expected a mapping, got %T", value)}
		}
	}

	return nil
}

// decodeFieldErrors converts a mapstructure decode failure into joined
// *FieldError values, one per offending field.
func decodeFieldErrors(err error) error {
	var decodeErr *mapstructure.Error
	if !errors.As(err, &decodeErr) {
		return fmt.Errorf("failed to decode config: %w", err)
	}

	fieldErrs := make([]error, 0, len(decodeErr.Errors))
	for _, wrapped := range decodeErr.WrappedErrors() {
		msg := wrapped.Error()
		fieldErrs = append(fieldErrs, &FieldError{
			Path:   fieldPathFromDecodeError(msg),
			Reason: msg,
		})
	}
	return errors.Join(fieldErrs...)
}

// checkRanges enforces scalar bounds that make a document unusable:
// non-positive CPU counts and negative replica counts.
func checkRanges(cfg *Config) error {
	names := make([]string, 0, len(cfg.EnvData.Clusters))
	for name := range cfg.EnvData.Clusters {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		hc := cfg.EnvData.Clusters[name]
		if hc.CPUCores <= 0 {
			errs = append(errs, &FieldError{
				Path:   fmt.Sprintf("ENV_DATA.clusters[%s].cpu_cores_per_hosted_cluster", name),
				Reason: fmt.Sprintf("must be a positive integer, got %d", hc.CPUCores),
			})
		}
		if hc.NodepoolReplicas < 0 {
			errs = append(errs, &FieldError{
				Path:   fmt.Sprintf("ENV_DATA.clusters[%s].nodepool_replicas", name),
				Reason: fmt.Sprintf("cannot be negative, got %d", hc.NodepoolReplicas),
			})
		}
	}
	return errors.Join(errs...)
}

// Save writes a configuration to a YAML file.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default path for the config file.
// It looks in the current working directory.
func DefaultConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return DefaultConfigFilename
	}
	return filepath.Join(cwd, DefaultConfigFilename)
}

// FindConfigFile searches for a config file in common locations.
// It checks the current directory, then walks up to find hcpconf.yaml.
func FindConfigFile() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	path := filepath.Join(cwd, DefaultConfigFilename)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	// Walk up the directory tree
	dir := cwd
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent

		path := filepath.Join(dir, DefaultConfigFilename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", fmt.Errorf("config file %s not found", DefaultConfigFilename)
}
