// File: discovery.go
// Title: Configuration File Discovery
// Description: Locates a settings file in a list of directories when no
//              explicit path is given.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package config

import (
	"os"
	"path/filepath"

	mdwerror "github.com/dipakw/inside/foundation/core/error"
)

// DiscoveryOptions defines where Discover looks for a settings file
type DiscoveryOptions struct {
	Paths      []string
	Filenames  []string
	Extensions []string
	EnvPrefix  string
	Defaults   map[string]interface{}
	Required   bool
}

// DefaultDiscoveryOptions searches the working directory and the user
// config directory for inside.toml, inside.yaml or inside.yml
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "inside"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"inside"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "INSIDE",
	}
}

// Discover loads the first settings file found. Without a match it returns
// an empty configuration, or a NotFound error when Required is set.
func Discover(options DiscoveryOptions) (*Config, error) {
	loadOptions := LoadOptions{EnvPrefix: options.EnvPrefix, Defaults: options.Defaults}

	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return New(loadOptions), nil
	}

	cfg, err := LoadWithOptions(path, loadOptions)
	if err != nil {
		return nil, mdwerror.Wrap(err, "found config file but failed to load it").
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}

// FindConfigFile returns the first existing candidate path
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}
