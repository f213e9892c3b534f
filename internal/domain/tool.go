package domain

// Tool represents the canonical metadata of a named bioinformatics tool.
//
// It is NOT tied to the metadata file format or any transport.
// A Tool is uniquely identified by its ID; containers are associated
// to it through key normalization, not stored on the struct.
type Tool struct {
	// ─────────────────────────────
	// Identity (immutable)
	// ─────────────────────────────

	// ID is the canonical unique identifier, lowercase.
	// Example: fastqc
	ID string `json:"id"`

	// Name is the display name and may differ from ID in case
	// or punctuation. Example: FastQC
	Name string `json:"name,omitempty"`

	// ExternalIDs are auxiliary identifiers from other registries
	// (bio.tools, BioContainers) usable for exact lookup.
	ExternalIDs []string `json:"external_ids,omitempty"`

	// ─────────────────────────────
	// Functional description
	// (any of these may be absent)
	// ─────────────────────────────

	// Description is free text about what the tool does.
	Description string `json:"description,omitempty"`

	// Operations are EDAM operation tags (what the tool does).
	// Example: "Sequence alignment"
	Operations []string `json:"operations,omitempty"`

	// Topics are EDAM topic tags (scientific domain).
	// Example: "Genomics"
	Topics []string `json:"topics,omitempty"`

	// ─────────────────────────────
	// Display-only metadata
	// ─────────────────────────────

	Homepage string `json:"homepage,omitempty"`
	License  string `json:"license,omitempty"`
}

// Key returns the normalized index key of the tool's primary ID.
func (t *Tool) Key() string {
	return NormalizeKey(t.ID)
}
