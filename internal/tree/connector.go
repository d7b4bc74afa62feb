package tree

import "strings"

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "
)

// BuildConnector returns the line prefix for an entry at depth, where
// isLastStack holds one element per level from depth 1 down to the entry.
// Depth 0 is the root and has no prefix.
func BuildConnector(depth int, isLastStack []bool) string {
	if depth <= 0 || len(isLastStack) == 0 {
		return ""
	}
	var builder strings.Builder
	for _, ancestorIsLast := range isLastStack[:min(depth, len(isLastStack))-1] {
		if ancestorIsLast {
			builder.WriteString(treeLastPadding)
		} else {
			builder.WriteString(treeBranchPadding)
		}
	}
	if isLastStack[len(isLastStack)-1] {
		builder.WriteString(treeLastConnector)
	} else {
		builder.WriteString(treeBranchConnector)
	}
	return builder.String()
}
