package meta

import "biofinder/internal/domain"

// MapTools converts file entries to domain tools. Entries without an id
// cannot be indexed and are dropped; every other field is optional.
func MapTools(entries []ToolEntry) []*domain.Tool {
	tools := make([]*domain.Tool, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			continue
		}

		var external []string
		if e.Biotools != "" {
			external = append(external, e.Biotools)
		}
		if e.Biocontainers != "" {
			external = append(external, e.Biocontainers)
		}

		tools = append(tools, &domain.Tool{
			ID:          e.ID,
			Name:        e.Name,
			ExternalIDs: external,
			Description: e.Description,
			Operations:  e.Operations,
			Topics:      e.Topics,
			Homepage:    e.Homepage,
			License:     e.License,
		})
	}
	return tools
}
