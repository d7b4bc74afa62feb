// Package types defines every cross‑package data structure used by the dirtree CLI.
package types

import "encoding/xml"

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"

	FormatRaw  = "raw"
	FormatJSON = "json"
	FormatXML  = "xml"

	// DirectorySuffix is appended to directory names in raw output.
	DirectorySuffix = "/"
)

// DirectoryEntry is one child of a listed directory.
type DirectoryEntry struct {
	Path        string
	Name        string
	IsDirectory bool
}

// DisplayName returns the name as printed in raw output.
func (entry DirectoryEntry) DisplayName() string {
	if entry.IsDirectory {
		return entry.Name + DirectorySuffix
	}
	return entry.Name
}

// NodeType returns the node type constant describing the entry.
func (entry DirectoryEntry) NodeType() string {
	if entry.IsDirectory {
		return NodeTypeDirectory
	}
	return NodeTypeFile
}

// TreeNode represents a node of a collected directory tree used by the structured formats.
type TreeNode struct {
	XMLName  xml.Name    `json:"-" xml:"node"`
	Path     string      `json:"path" xml:"path"`
	Name     string      `json:"name" xml:"name"`
	Type     string      `json:"type" xml:"type"`
	Children []*TreeNode `json:"children,omitempty" xml:"children>node,omitempty"`
}
