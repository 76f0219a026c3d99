package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Plugin describes one registered plugin binary.
type Plugin struct {
	Name        string   `yaml:"name" json:"name"`
	Command     string   `yaml:"command" json:"command"`
	Args        []string `yaml:"args" json:"args"`
	Description string   `yaml:"description" json:"description"`
}

// File represents the structure of plugins.yaml
type File struct {
	Plugins []Plugin `yaml:"plugins" json:"plugins"`
}

// Load reads a registry file (YAML or JSON) and returns a map of plugin
// names to entries. A missing file is treated as an empty registry.
func Load(path string) (map[string]Plugin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]Plugin{}, nil
		}
		return nil, fmt.Errorf("failed to read plugin registry: %w", err)
	}

	var cfg File
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse plugins.json: %w", err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse plugins.yaml: %w", err)
		}
	}

	plugins := make(map[string]Plugin)
	for _, p := range cfg.Plugins {
		if p.Name == "" {
			continue
		}
		plugins[p.Name] = p
	}

	return plugins, nil
}
