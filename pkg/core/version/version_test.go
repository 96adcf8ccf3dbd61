package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Library", Library},
		{"CLI", CLI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestGet(t *testing.T) {
	info := Get()

	if info.Library != Library || info.CLI != CLI {
		t.Errorf("Get() versions = %q, %q", info.Library, info.CLI)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("Get().GoVersion = %q", info.GoVersion)
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Get().Platform = %q", info.Platform)
	}
}

func TestInfoString(t *testing.T) {
	s := Get().String()
	for _, want := range []string{"pyutils v" + CLI, GitCommit, runtime.Version()} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}
