/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package samplekit

import (
	"runtime"
	"runtime/debug"
)

const unknown = "unknown"

// Version information set by build flags
var (
	// Version is the semantic version of samplekit
	Version = "0.1.0"
	
	// GitCommit is the git commit hash (set by build flags)
	GitCommit = unknown
	
	// BuildDate is the build date (set by build flags)
	BuildDate = unknown
	
	// GoVersion is the Go version used to build
	GoVersion = unknown
)

// VersionInfo contains version information
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// GetVersionInfo returns the version information. Fields the build flags left
// unset are taken from the binary's embedded build info when present.
func GetVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: GoVersion,
	}
	if info.GoVersion == unknown {
		info.GoVersion = runtime.Version()
	}
	
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.GitCommit == unknown:
			info.GitCommit = s.Value
		case s.Key == "vcs.time" && info.BuildDate == unknown:
			info.BuildDate = s.Value
		}
	}
	return info
}
