// Package misc keeps program identity helpers used across commands.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "ucss"

// set by the build system via -ldflags, fall back to module info otherwise
var (
	version = ""
	gitHash = ""
)

var readBuildInfo = sync.OnceValue(func() *debug.BuildInfo {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return bi
})

// GetAppName returns the short program name used in logs, reports and
// temporary file names.
func GetAppName() string {
	return appName
}

// GetVersion returns program version.
func GetVersion() string {
	if version != "" {
		return version
	}
	if bi := readBuildInfo(); bi != nil && bi.Main.Version != "" {
		return bi.Main.Version
	}
	return "(devel)"
}

// GetGitHash returns VCS revision the program was built from.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	if bi := readBuildInfo(); bi != nil {
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
