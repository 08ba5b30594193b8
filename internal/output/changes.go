package output

import (
	"strconv"
	"strings"
)

// ChangeItem is one changed file for rendering. It mirrors the detector's
// change record without importing it.
type ChangeItem struct {
	Status string
	Path   string
	Diff   string
}

// RenderChanges renders the changes found for one variant, grouped by
// status, followed by a summary line.
func RenderChanges(variant string, items []ChangeItem) string {
	var sb strings.Builder

	sb.WriteString(StyleSummary.Render("Changes for " + variant + " module:"))
	sb.WriteString("\n")

	if len(items) == 0 {
		sb.WriteString("  No changes detected.\n")
		return sb.String()
	}

	counts := map[string]int{}
	for _, status := range []string{StatusAdded, StatusModified, StatusDeleted} {
		for _, item := range items {
			if item.Status != status {
				continue
			}
			counts[status]++

			sb.WriteString("  ")
			sb.WriteString(StatusStyle(status).Render(statusLabel(status) + ":"))
			sb.WriteString(" ")
			sb.WriteString(StyleNoun.Render(item.Path))
			sb.WriteString("\n")

			if item.Diff != "" {
				sb.WriteString("    Diff:\n")
				sb.WriteString(ColorizeDiff(item.Diff, "      "))
			}
		}
	}

	sb.WriteString("Summary: ")
	sb.WriteString(changeSummary(counts[StatusAdded], counts[StatusModified], counts[StatusDeleted]))
	sb.WriteString("\n")

	return sb.String()
}

// ColorizeDiff indents every non-empty diff line and colors it by marker.
func ColorizeDiff(diff string, indent string) string {
	var sb strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		if line == "" {
			continue
		}
		sb.WriteString(indent)
		switch line[0] {
		case '+':
			sb.WriteString(StatusStyle(StatusAdded).Render(line))
		case '-':
			sb.WriteString(StatusStyle(StatusDeleted).Render(line))
		default:
			sb.WriteString(line)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func statusLabel(status string) string {
	if status == "" {
		return ""
	}
	return strings.ToUpper(status[:1]) + status[1:]
}

// changeSummary returns e.g. "1 added, 2 modified".
func changeSummary(added, modified, deleted int) string {
	if added == 0 && modified == 0 && deleted == 0 {
		return "No changes"
	}

	parts := make([]string, 0, 3)
	if added > 0 {
		parts = append(parts, strconv.Itoa(added)+" added")
	}
	if modified > 0 {
		parts = append(parts, strconv.Itoa(modified)+" modified")
	}
	if deleted > 0 {
		parts = append(parts, strconv.Itoa(deleted)+" deleted")
	}
	return strings.Join(parts, ", ")
}
