package presenter

import (
	"fmt"
	"strings"

	"biofinder/internal/domain"
)

// Presenters render query results as plain text for the MCP tools and
// the interactive CLI. JSON surfaces serialize the domain structs
// directly and do not come through here.

// RenderToolResult formats a resolved tool with its newest build and
// version count.
func RenderToolResult(res *domain.ToolResult) string {
	var b strings.Builder

	if res.Tool != nil {
		fmt.Fprintf(&b, "%s", res.Tool.ID)
		if res.Tool.Name != "" && !strings.EqualFold(res.Tool.Name, res.Tool.ID) {
			fmt.Fprintf(&b, " (%s)", res.Tool.Name)
		}
		b.WriteString("\n")
		if res.Tool.Description != "" {
			fmt.Fprintf(&b, "  %s\n", res.Tool.Description)
		}
		if len(res.Tool.Operations) > 0 {
			fmt.Fprintf(&b, "  Operations: %s\n", strings.Join(res.Tool.Operations, ", "))
		}
		if len(res.Tool.Topics) > 0 {
			fmt.Fprintf(&b, "  Topics: %s\n", strings.Join(res.Tool.Topics, ", "))
		}
		if res.Tool.Homepage != "" {
			fmt.Fprintf(&b, "  Homepage: %s\n", res.Tool.Homepage)
		}
		if res.Tool.License != "" {
			fmt.Fprintf(&b, "  License: %s\n", res.Tool.License)
		}
	} else {
		fmt.Fprintf(&b, "%s (no metadata record, containers only)\n", res.Key)
	}

	if res.Newest != nil {
		fmt.Fprintf(&b, "  Newest container: %s\n", res.Newest.Tag)
		fmt.Fprintf(&b, "  Path: %s\n", res.Newest.Path)
		fmt.Fprintf(&b, "  Available versions: %d\n", len(res.Containers))
	} else {
		b.WriteString("  No container builds found.\n")
	}

	return b.String()
}

// RenderSearchHits formats ranked functional search results.
func RenderSearchHits(query string, hits []*domain.SearchHit) string {
	if len(hits) == 0 {
		return fmt.Sprintf("No tools matched %q.\n", query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d tool(s) for %q:\n", len(hits), query)
	for i, h := range hits {
		fmt.Fprintf(&b, "%2d. %s (score %d)", i+1, h.Tool.ID, h.Score)
		if h.Newest != nil {
			fmt.Fprintf(&b, " - newest %s, %d version(s)", h.Newest.Tag, h.ContainerCount)
		} else {
			b.WriteString(" - no containers")
		}
		b.WriteString("\n")
		if h.Tool.Description != "" {
			fmt.Fprintf(&b, "    %s\n", truncate(h.Tool.Description, 120))
		}
	}
	return b.String()
}

// RenderVersionListing formats the full container history of a tool.
func RenderVersionListing(listing *domain.VersionListing) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Container versions for %s", listing.Key)
	if listing.Tool != nil && listing.Tool.Name != "" {
		fmt.Fprintf(&b, " (%s)", listing.Tool.Name)
	}
	fmt.Fprintf(&b, ": %d\n", len(listing.Containers))

	for _, c := range listing.Containers {
		fmt.Fprintf(&b, "  %-30s %s", c.Tag, c.Path)
		if c.SizeBytes > 0 {
			fmt.Fprintf(&b, " (%s)", humanSize(c.SizeBytes))
		}
		b.WriteString("\n")
	}
	if len(listing.Containers) == 0 {
		b.WriteString("  No container builds found.\n")
	}
	return b.String()
}

// RenderToolList formats the alphabetical ID listing.
func RenderToolList(ids []string, total int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tools (%d of %d):\n", len(ids), total)
	for _, id := range ids {
		fmt.Fprintf(&b, "  %s\n", id)
	}
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
