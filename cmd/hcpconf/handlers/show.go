package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"

	"github.com/imamik/hcpconf/internal/config"
)

// Factory function variables for show - can be replaced in tests.
var (
	showLoad = config.Load
)

// Show loads the configuration at path, applies defaults, and prints the
// effective document in the requested format.
func Show(path, format string) error {
	cfg, err := showLoad(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}

	effective := cfg.WithDefaults()

	out, err := yaml.Marshal(effective)
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}

	switch format {
	case "yaml":
		fmt.Print(string(out))
	case "json":
		jsonBytes, err := sigsyaml.YAMLToJSON(out)
		if err != nil {
			return fmt.Errorf("failed to convert to JSON: %w", err)
		}
		var indented bytes.Buffer
		if err := json.Indent(&indented, jsonBytes, "", "  "); err != nil {
			return fmt.Errorf("failed to indent JSON: %w", err)
		}
		indented.WriteByte('\n')
		if _, err := indented.WriteTo(os.Stdout); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format %q (expected yaml or json)", format)
	}

	return nil
}
