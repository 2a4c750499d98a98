// Package config loads the optional .browsergrid.yaml application
// configuration: theme selection, symbol/color overrides for the grid, and
// extra normalization entries layered over the built-in tables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is searched for in the working directory, then the home
// directory.
const ConfigFileName = ".browsergrid.yaml"

// AppConfig is the on-disk configuration. Every field is optional.
type AppConfig struct {
	Theme string `yaml:"theme,omitempty"`

	// Symbols and Colors override the grid's status display per status
	// key. Recognized keys are exactly ok, error and none.
	Symbols map[string]string `yaml:"symbols,omitempty"`
	Colors  map[string]int    `yaml:"colors,omitempty"`

	// Browsers and Platforms are merged over the built-in normalization
	// tables, raw name -> canonical name.
	Browsers  map[string]string `yaml:"browsers,omitempty"`
	Platforms map[string]string `yaml:"platforms,omitempty"`
}

var statusKeys = map[string]bool{"ok": true, "error": true, "none": true}

// Load reads the config file from the standard search path. A missing
// file yields the zero config; a malformed one is an error.
func Load() (*AppConfig, error) {
	for _, dir := range searchDirs() {
		path := filepath.Join(dir, ConfigFileName)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return Parse(data, path)
	}
	return &AppConfig{}, nil
}

// Parse decodes and validates config data. path is used in error messages
// only.
func Parse(data []byte, path string) (*AppConfig, error) {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *AppConfig) validate() error {
	for key := range c.Symbols {
		if !statusKeys[key] {
			return fmt.Errorf("unknown symbol key %q (want ok, error or none)", key)
		}
	}
	for key := range c.Colors {
		if !statusKeys[key] {
			return fmt.Errorf("unknown color key %q (want ok, error or none)", key)
		}
	}
	return nil
}

func searchDirs() []string {
	dirs := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return dirs
}

// MergeNames overlays config entries onto a base normalization table,
// returning a new map. The base is never mutated.
func MergeNames(base, overlay map[string]string) map[string]string {
	merged := make(map[string]string, len(base)+len(overlay))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range overlay {
		merged[k] = v
	}
	return merged
}
