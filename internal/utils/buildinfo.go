package utils

import (
	"runtime/debug"
)

const (
	unknownVersion         = "unknown"
	developmentVersion     = "(devel)"
	revisionSettingKey     = "vcs.revision"
	modifiedSettingKey     = "vcs.modified"
	shortRevisionLength    = 12
	modifiedRevisionSuffix = "-dirty"
)

// Version is injected at build time with -ldflags "-X".
var Version = EmptyString

// GetApplicationVersion returns the injected version, the module version recorded
// in the build info, or the VCS revision the binary was built from.
func GetApplicationVersion() string {
	if Version != EmptyString {
		return Version
	}
	buildInfo, buildInfoAvailable := debug.ReadBuildInfo()
	if !buildInfoAvailable {
		return unknownVersion
	}
	return versionFromBuildInfo(buildInfo)
}

func versionFromBuildInfo(buildInfo *debug.BuildInfo) string {
	if buildInfo.Main.Version != EmptyString && buildInfo.Main.Version != developmentVersion {
		return buildInfo.Main.Version
	}
	var revision string
	var modified bool
	for _, setting := range buildInfo.Settings {
		switch setting.Key {
		case revisionSettingKey:
			revision = setting.Value
		case modifiedSettingKey:
			modified = setting.Value == "true"
		}
	}
	if revision == EmptyString {
		return unknownVersion
	}
	if len(revision) > shortRevisionLength {
		revision = revision[:shortRevisionLength]
	}
	if modified {
		revision += modifiedRevisionSuffix
	}
	return revision
}
