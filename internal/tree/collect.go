package tree

import (
	"github.com/temirov/dirtree/internal/types"
)

// Collect builds the tree rooted at rootPath in the same order Render prints it.
// No partial tree is returned on failure.
func (walker *Walker) Collect(rootPath string) (*types.TreeNode, error) {
	rootNode := &types.TreeNode{
		Path: rootPath,
		Name: RootDisplayName(rootPath),
		Type: types.NodeTypeDirectory,
	}
	children, collectError := walker.collectChildren(rootPath)
	if collectError != nil {
		return nil, collectError
	}
	rootNode.Children = children
	return rootNode, nil
}

func (walker *Walker) collectChildren(directoryPath string) ([]*types.TreeNode, error) {
	entries, listError := walker.lister.List(directoryPath)
	if listError != nil {
		return nil, listError
	}

	var nodes []*types.TreeNode
	for _, entry := range entries {
		node := &types.TreeNode{
			Path: entry.Path,
			Name: entry.Name,
			Type: entry.NodeType(),
		}
		if entry.IsDirectory {
			children, collectError := walker.collectChildren(entry.Path)
			if collectError != nil {
				return nil, collectError
			}
			node.Children = children
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}
