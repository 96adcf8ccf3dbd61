// File: config_test.go
// Title: Settings Loading Tests
// Description: Tests for TOML and YAML loading, defaults, discovery and
//              validation failures.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"testing"

	pyerror "github.com/msto63/pyutils/core/error"
)

const tomlDoc = `
[console]
separator = ", "
terminator = ";\n"

[strip]
chars = "-_"

[log]
level = "debug"
format = "json"

[demo]
keep_files = true
`

const yamlDoc = `
console:
  separator: " | "
strip:
  chars: "*"
log:
  level: info
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	s := Default()

	if s.Console.Separator != " " || s.Console.Terminator != "\n" {
		t.Errorf("console defaults = %+v", s.Console)
	}
	if s.Strip.Chars != " \t\n\r" {
		t.Errorf("strip default = %q", s.Strip.Chars)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("Default().Validate() error = %v", err)
	}
}

func TestLoad_TOML(t *testing.T) {
	s, err := Load(writeFile(t, "pyutils.toml", tomlDoc))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if s.Console.Separator != ", " || s.Console.Terminator != ";\n" {
		t.Errorf("console = %+v", s.Console)
	}
	if s.Strip.Chars != "-_" {
		t.Errorf("strip.chars = %q", s.Strip.Chars)
	}
	if s.Log.Level != "debug" || s.Log.Format != "json" {
		t.Errorf("log = %+v", s.Log)
	}
	if !s.Demo.KeepFiles {
		t.Error("demo.keep_files = false")
	}

	opts := s.ConsoleOptions()
	if opts.Separator != ", " {
		t.Errorf("ConsoleOptions() = %+v", opts)
	}
}

func TestLoad_YAML(t *testing.T) {
	for _, name := range []string{"pyutils.yaml", "pyutils.yml"} {
		t.Run(name, func(t *testing.T) {
			s, err := Load(writeFile(t, name, yamlDoc))
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}

			if s.Console.Separator != " | " {
				t.Errorf("console.separator = %q", s.Console.Separator)
			}
			if s.Console.Terminator != "\n" {
				t.Errorf("console.terminator = %q, want default", s.Console.Terminator)
			}
			if s.Strip.Chars != "*" || s.Log.Level != "info" || s.Log.Format != "text" {
				t.Errorf("settings = %+v", s)
			}
		})
	}
}

func TestLoadWithFormat_OverridesExtension(t *testing.T) {
	s, err := LoadWithFormat(writeFile(t, "settings.conf", yamlDoc), FormatYAML)
	if err != nil {
		t.Fatalf("LoadWithFormat() error = %v", err)
	}
	if s.Strip.Chars != "*" {
		t.Errorf("strip.chars = %q", s.Strip.Chars)
	}
}

func TestLoadFromString(t *testing.T) {
	t.Run("toml", func(t *testing.T) {
		s, err := LoadFromString(tomlDoc, FormatAuto)
		if err != nil {
			t.Fatalf("LoadFromString() error = %v", err)
		}
		if s.Log.Level != "debug" {
			t.Errorf("log.level = %q", s.Log.Level)
		}
	})

	t.Run("empty yaml keeps defaults", func(t *testing.T) {
		s, err := LoadFromString("", FormatYAML)
		if err != nil {
			t.Fatalf("LoadFromString() error = %v", err)
		}
		if *s != *Default() {
			t.Errorf("settings = %+v, want defaults", s)
		}
	})
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name     string
		path     func(t *testing.T) string
		wantCode pyerror.Code
	}{
		{
			name:     "missing file",
			path:     func(t *testing.T) string { return filepath.Join(t.TempDir(), "none.toml") },
			wantCode: pyerror.CodeNotFound,
		},
		{
			name:     "empty path",
			path:     func(t *testing.T) string { return " " },
			wantCode: pyerror.CodeInvalidInput,
		},
		{
			name:     "malformed toml",
			path:     func(t *testing.T) string { return writeFile(t, "bad.toml", "[console\nseparator =") },
			wantCode: pyerror.CodeInvalidFormat,
		},
		{
			name:     "unknown toml key",
			path:     func(t *testing.T) string { return writeFile(t, "typo.toml", "[console]\nseperator = \",\"\n") },
			wantCode: pyerror.CodeInvalidFormat,
		},
		{
			name:     "unknown yaml key",
			path:     func(t *testing.T) string { return writeFile(t, "typo.yaml", "strip:\n  char: x\n") },
			wantCode: pyerror.CodeInvalidFormat,
		},
		{
			name:     "invalid level",
			path:     func(t *testing.T) string { return writeFile(t, "level.toml", "[log]\nlevel = \"loud\"\n") },
			wantCode: pyerror.CodeInvalidConfig,
		},
		{
			name:     "invalid log format",
			path:     func(t *testing.T) string { return writeFile(t, "format.yaml", "log:\n  format: xml\n") },
			wantCode: pyerror.CodeInvalidConfig,
		},
		{
			name:     "empty strip set",
			path:     func(t *testing.T) string { return writeFile(t, "strip.toml", "[strip]\nchars = \"\"\n") },
			wantCode: pyerror.CodeInvalidConfig,
		},
		{
			name:     "missing work dir",
			path:     func(t *testing.T) string { return writeFile(t, "demo.toml", "[demo]\nwork_dir = \"/does/not/exist\"\n") },
			wantCode: pyerror.CodeInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			if got := pyerror.GetCode(err); got != tt.wantCode {
				t.Errorf("Load() code = %s, want %s (%v)", got, tt.wantCode, err)
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	opts := DiscoveryOptions{
		Paths:      []string{dir},
		Filenames:  []string{"pyutils"},
		Extensions: []string{".toml", ".yaml"},
	}

	t.Run("nothing found", func(t *testing.T) {
		s, path, err := Discover(opts)
		if err != nil || path != "" {
			t.Fatalf("Discover() = %q, %v", path, err)
		}
		if *s != *Default() {
			t.Errorf("Discover() settings = %+v, want defaults", s)
		}
		if _, err := FindConfigFile(opts); !pyerror.HasCode(err, pyerror.CodeNotFound) {
			t.Errorf("FindConfigFile() error = %v", err)
		}
	})

	t.Run("yaml found", func(t *testing.T) {
		want := filepath.Join(dir, "pyutils.yaml")
		if err := os.WriteFile(want, []byte(yamlDoc), 0o644); err != nil {
			t.Fatal(err)
		}

		s, path, err := Discover(opts)
		if err != nil {
			t.Fatalf("Discover() error = %v", err)
		}
		if path != want || s.Strip.Chars != "*" {
			t.Errorf("Discover() = %q, %+v", path, s)
		}
	})

	t.Run("broken file", func(t *testing.T) {
		if err := os.WriteFile(filepath.Join(dir, "pyutils.toml"), []byte("[["), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, _, err := Discover(opts); !pyerror.HasCode(err, pyerror.CodeInvalidFormat) {
			t.Errorf("Discover() error = %v", err)
		}
	})

	if got := ListPossibleConfigFiles(opts); len(got) != 2 {
		t.Errorf("ListPossibleConfigFiles() = %v", got)
	}
}
