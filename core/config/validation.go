// File: validation.go
// Title: Settings Validation
// Description: Implements validation of loaded settings. Every violation is
//              reported as an INVALID_CONFIG error naming the offending
//              field.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package config

import (
	"os"

	pyerrors "github.com/msto63/pyutils/core/errors"
	"github.com/msto63/pyutils/core/log"
)

// Validate checks the settings for values the tool cannot use
func (s *Settings) Validate() error {
	if s.Strip.Chars == "" {
		return pyerrors.InvalidConfig("strip.chars", s.Strip.Chars, "must name at least one character")
	}

	if _, err := log.ParseLevel(s.Log.Level); err != nil {
		return pyerrors.InvalidConfig("log.level", s.Log.Level, err.Error())
	}

	if _, err := log.ParseFormat(s.Log.Format); err != nil {
		return pyerrors.InvalidConfig("log.format", s.Log.Format, err.Error())
	}

	if s.Demo.WorkDir != "" {
		info, err := os.Stat(s.Demo.WorkDir)
		if err != nil || !info.IsDir() {
			return pyerrors.InvalidConfig("demo.work_dir", s.Demo.WorkDir, "must be an existing directory")
		}
	}

	return nil
}
