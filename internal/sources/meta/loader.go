package meta

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"biofinder/internal/domain"
)

// Load reads and maps the tool metadata YAML file. The file is a flat
// list of entries; entries without an id are skipped by the mapper.
func Load(path string) ([]*domain.Tool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata file: %w", err)
	}
	return Parse(data)
}

// Parse decodes raw YAML bytes into domain tools.
func Parse(data []byte) ([]*domain.Tool, error) {
	var entries []ToolEntry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse metadata yaml: %w", err)
	}
	return MapTools(entries), nil
}
