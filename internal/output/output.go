// Package output renders collected directory trees in structured formats.
package output

import (
	"encoding/json"
	"encoding/xml"
	"fmt"

	"github.com/temirov/dirtree/internal/types"
)

const (
	indentPrefix = ""
	indentSpacer = "  "

	xmlHeader = xml.Header

	// errorUnsupportedFormat is used when no renderer exists for a format.
	errorUnsupportedFormat = "unsupported structured format '%s'"
	// errorEncodeFormat is used when encoding the tree fails.
	errorEncodeFormat = "encoding %s output: %w"
)

// RenderJSON marshals the tree as indented JSON.
func RenderJSON(node *types.TreeNode) (string, error) {
	encoded, jsonEncodeError := json.MarshalIndent(node, indentPrefix, indentSpacer)
	if jsonEncodeError != nil {
		return "", fmt.Errorf(errorEncodeFormat, types.FormatJSON, jsonEncodeError)
	}
	return string(encoded), nil
}

// RenderXML marshals the tree as an indented XML document.
func RenderXML(node *types.TreeNode) (string, error) {
	encoded, xmlMarshalError := xml.MarshalIndent(node, indentPrefix, indentSpacer)
	if xmlMarshalError != nil {
		return "", fmt.Errorf(errorEncodeFormat, types.FormatXML, xmlMarshalError)
	}
	return xmlHeader + string(encoded), nil
}

// RenderStructured dispatches to the renderer registered for format.
func RenderStructured(format string, node *types.TreeNode) (string, error) {
	switch format {
	case types.FormatJSON:
		return RenderJSON(node)
	case types.FormatXML:
		return RenderXML(node)
	default:
		return "", fmt.Errorf(errorUnsupportedFormat, format)
	}
}
