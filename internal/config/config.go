// Package config resolves dirtree settings from built-in defaults, an optional
// configuration file and command-line flags, in increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/temirov/dirtree/internal/types"
	"github.com/temirov/dirtree/internal/utils"
)

const (
	// DefaultFormat is the output format used when none is configured.
	DefaultFormat = types.FormatRaw

	// errorInvalidFormat is used when the requested format is not supported.
	errorInvalidFormat = "invalid format value '%s'"
)

var supportedFormats = []string{types.FormatRaw, types.FormatJSON, types.FormatXML}

// DefaultExcludedNames returns the built-in exclusion list.
func DefaultExcludedNames() []string {
	return []string{
		"target",
		"node_modules",
		utils.GitDirectoryName,
		"dist",
		"build",
		"out",
		"pkg",
	}
}

// Overrides carries values supplied on the command line. A field only takes
// effect when its matching Set flag is true.
type Overrides struct {
	Exclude    []string
	ExcludeSet bool
	Format     string
	FormatSet  bool
	Copy       bool
	CopySet    bool
}

// Settings is the fully resolved configuration of one run.
type Settings struct {
	Exclusions types.ExclusionSet
	Format     string
	Copy       bool
}

// Resolve layers fileConfiguration and overrides over the defaults.
// Any exclusion list supplied replaces the lower layer instead of extending it.
func Resolve(fileConfiguration FileConfiguration, overrides Overrides) (Settings, error) {
	excludedNames := DefaultExcludedNames()
	if len(fileConfiguration.Exclude) > 0 {
		excludedNames = fileConfiguration.Exclude
	}
	if overrides.ExcludeSet {
		excludedNames = overrides.Exclude
	}

	format := DefaultFormat
	if fileConfiguration.Format != "" {
		format = fileConfiguration.Format
	}
	if overrides.FormatSet {
		format = overrides.Format
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if !utils.ContainsString(supportedFormats, format) {
		return Settings{}, fmt.Errorf(errorInvalidFormat, format)
	}

	copyEnabled := false
	if fileConfiguration.Copy != nil {
		copyEnabled = *fileConfiguration.Copy
	}
	if overrides.CopySet {
		copyEnabled = overrides.Copy
	}

	return Settings{
		Exclusions: types.NewExclusionSet(utils.DeduplicatePatterns(excludedNames)),
		Format:     format,
		Copy:       copyEnabled,
	}, nil
}
