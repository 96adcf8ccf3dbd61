// File: config.go
// Title: Settings Loading
// Description: Implements the Settings type and its loading from TOML and
//              YAML documents. Values absent from a document keep their
//              defaults; unknown keys are rejected so that typos surface as
//              errors instead of being ignored.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	pyerror "github.com/msto63/pyutils/core/error"
	pyerrors "github.com/msto63/pyutils/core/errors"
	"github.com/msto63/pyutils/utils/consolex"
	"github.com/msto63/pyutils/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto detects the format from the file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// Settings holds every option the command line tool reads from a file
type Settings struct {
	Console ConsoleSettings `toml:"console" yaml:"console"`
	Strip   StripSettings   `toml:"strip" yaml:"strip"`
	Log     LogSettings     `toml:"log" yaml:"log"`
	Demo    DemoSettings    `toml:"demo" yaml:"demo"`
}

// ConsoleSettings configures print formatting
type ConsoleSettings struct {
	Separator  string `toml:"separator" yaml:"separator"`
	Terminator string `toml:"terminator" yaml:"terminator"`
}

// StripSettings configures the byte set removed by the strip command
type StripSettings struct {
	Chars string `toml:"chars" yaml:"chars"`
}

// LogSettings configures the logger
type LogSettings struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// DemoSettings configures the demo walkthrough
type DemoSettings struct {
	WorkDir   string `toml:"work_dir" yaml:"work_dir"`
	KeepFiles bool   `toml:"keep_files" yaml:"keep_files"`
}

// Default returns the settings used when no file is given
func Default() *Settings {
	return &Settings{
		Console: ConsoleSettings{
			Separator:  consolex.DefaultSeparator,
			Terminator: consolex.DefaultTerminator,
		},
		Strip: StripSettings{Chars: stringx.DefaultStripChars},
		Log:   LogSettings{Level: "warn", Format: "text"},
	}
}

// ConsoleOptions converts the console section into consolex options
func (s *Settings) ConsoleOptions() consolex.Options {
	return consolex.Options{
		Separator:  s.Console.Separator,
		Terminator: s.Console.Terminator,
	}
}

// Load reads settings from filePath, detecting the format from the
// extension. The result is validated before it is returned.
func Load(filePath string) (*Settings, error) {
	return LoadWithFormat(filePath, FormatAuto)
}

// LoadWithFormat reads settings from filePath in the given format
func LoadWithFormat(filePath string, format Format) (*Settings, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, pyerrors.InvalidInput(pyerrors.ModuleConfig, "Load", filePath, "non-empty file path")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, pyerrors.NotFound(pyerrors.ModuleConfig, "Load", filePath).
				WithDetail("filePath", filePath)
		}
		return nil, pyerror.Wrap(err, "failed to read config file").
			WithCode(pyerror.CodeConfigError).
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	settings, err := decode(content, format)
	if err != nil {
		return nil, pyerror.Wrap(err, "failed to parse config file").
			WithOperation("config.Load").
			WithDetail("filePath", filePath)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// LoadFromString parses settings from content. FormatAuto is treated as
// TOML.
func LoadFromString(content string, format Format) (*Settings, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	settings, err := decode([]byte(content), format)
	if err != nil {
		return nil, err
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// decode parses content over the defaults
func decode(content []byte, format Format) (*Settings, error) {
	settings := Default()

	switch format {
	case FormatTOML:
		meta, err := toml.Decode(string(content), settings)
		if err != nil {
			return nil, pyerrors.InvalidFormat(pyerrors.ModuleConfig, "decode", err, format.String())
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, pyerrors.InvalidFormat(pyerrors.ModuleConfig, "decode",
				fmt.Errorf("unknown keys: %s", strings.Join(keys, ", ")), format.String())
		}

	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(settings); err != nil && !errors.Is(err, io.EOF) {
			return nil, pyerrors.InvalidFormat(pyerrors.ModuleConfig, "decode", err, format.String())
		}

	default:
		return nil, pyerrors.InvalidInput(pyerrors.ModuleConfig, "decode", format.String(), "toml or yaml")
	}

	return settings, nil
}
