// ============================================================================
// pyutils - Scripting-style convenience utilities for Go
// ============================================================================
//
// Package:     version
// Description: Central version information for the library and the CLI
// Author:      msto63
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Library is the version of the utility packages
	Library = "0.1.0"

	// CLI is the version of the pyutils command
	CLI = "0.1.0"
)

// Build metadata, overridden via -ldflags "-X ..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes the running binary
type Info struct {
	Library   string `json:"library"`
	CLI       string `json:"cli"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get collects the version information of the running binary
func Get() Info {
	return Info{
		Library:   Library,
		CLI:       CLI,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one-line summary
func (i Info) String() string {
	return fmt.Sprintf("pyutils v%s (library v%s, commit %s, %s, %s)",
		i.CLI, i.Library, i.GitCommit, i.GoVersion, i.Platform)
}
