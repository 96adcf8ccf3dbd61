// File: discovery.go
// Title: Settings File Discovery
// Description: Implements lookup of a settings file across a list of
//              directories, base names and extensions so that the command
//              line tool works without an explicit --config flag.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation of file discovery

package config

import (
	"os"
	"path/filepath"

	pyerror "github.com/msto63/pyutils/core/error"
)

// DiscoveryOptions defines where Discover looks for a settings file
type DiscoveryOptions struct {
	Paths      []string // Directories to search, in order
	Filenames  []string // Base filenames without extension
	Extensions []string // Extensions to try, in order
}

// DefaultDiscoveryOptions searches the working directory and the user
// configuration directory for pyutils.toml, pyutils.yaml and pyutils.yml.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "pyutils"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"pyutils"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}

// FindConfigFile returns the first candidate that is a regular file
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, configPath := range candidates {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", pyerror.New("configuration file not found").
		WithCode(pyerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// Discover loads the first settings file found. When none exists the
// defaults are returned together with an empty path.
func Discover(options DiscoveryOptions) (*Settings, string, error) {
	configPath, err := FindConfigFile(options)
	if err != nil {
		return Default(), "", nil
	}

	settings, err := Load(configPath)
	if err != nil {
		return nil, configPath, pyerror.Wrap(err, "found config file but failed to load").
			WithOperation("config.Discover").
			WithDetail("configPath", configPath)
	}
	return settings, configPath, nil
}
