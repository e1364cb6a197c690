// Package misc provides build identification helpers.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "styl"

// GetAppName returns the program name used in logs and file names.
func GetAppName() string {
	return appName
}

var buildInfo = sync.OnceValue(func() *debug.BuildInfo {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return bi
})

// GetVersion returns the module version recorded in build info.
func GetVersion() string {
	bi := buildInfo()
	if bi == nil || bi.Main.Version == "" {
		return "unknown"
	}
	return bi.Main.Version
}

// GetGitHash returns the VCS revision recorded in build info.
func GetGitHash() string {
	bi := buildInfo()
	if bi == nil {
		return "unknown"
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return "unknown"
}
