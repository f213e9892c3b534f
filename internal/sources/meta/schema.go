package meta

// ToolEntry mirrors one record of the curated metadata YAML file.
// Field names follow the file format, not the domain model; mapping
// happens in mapper.go.
type ToolEntry struct {
	ID            string   `yaml:"id"`
	Name          string   `yaml:"name"`
	Description   string   `yaml:"description"`
	Homepage      string   `yaml:"homepage"`
	License       string   `yaml:"license"`
	Biotools      string   `yaml:"biotools"`
	Biocontainers string   `yaml:"biocontainers"`
	Operations    []string `yaml:"edam-operations"`
	Topics        []string `yaml:"edam-topics"`
}
