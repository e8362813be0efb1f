// Package config handles global configuration for the paper catalog.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"papergraph/internal/paper"
)

// Config represents configuration stored in ~/.config/papergraph/config.yml.
type Config struct {
	DBPath             string `yaml:"db_path,omitempty"`
	GraphDir           string `yaml:"graph_dir,omitempty"`
	BibDir             string `yaml:"bib_dir,omitempty"`
	PDFDir             string `yaml:"pdf_dir,omitempty"`
	MatchCaseSensitive bool   `yaml:"match_case_sensitive,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "papergraph"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// EnvDBPath overrides db_path when set.
	EnvDBPath = "PAPERGRAPH_DB"
)

// configCache caches the loaded config.
var configCache *Config

// Path returns the path to the global config file.
// Respects XDG_CONFIG_HOME, defaults to ~/.config/papergraph/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load loads the global configuration file.
// Returns a default config (not an error) if the file doesn't exist.
func Load() (*Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	cfg := &Config{}
	path := Path()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// defaults below
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	cfg.DBPath = ExpandTilde(cfg.DBPath)
	cfg.GraphDir = ExpandTilde(cfg.GraphDir)
	cfg.BibDir = ExpandTilde(cfg.BibDir)
	cfg.PDFDir = ExpandTilde(cfg.PDFDir)
	applyDefaults(cfg)

	configCache = cfg
	return cfg, nil
}

// ResetCache clears the cached config. Useful for testing.
func ResetCache() {
	configCache = nil
}

// applyDefaults fills unset paths from the data directory and the
// PAPERGRAPH_DB environment override.
func applyDefaults(cfg *Config) {
	if env := os.Getenv(EnvDBPath); env != "" {
		cfg.DBPath = ExpandTilde(env)
	}

	dataDir := defaultDataDir()
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(dataDir, "papers.db")
	}
	if cfg.GraphDir == "" {
		cfg.GraphDir = filepath.Join(dataDir, "graphs")
	}
	if cfg.BibDir == "" {
		cfg.BibDir = filepath.Join(dataDir, "bib")
	}
	if cfg.PDFDir == "" {
		cfg.PDFDir = filepath.Join(dataDir, "pdfs")
	}
}

// defaultDataDir resolves the data directory.
// Respects XDG_DATA_HOME, defaults to ~/.local/share/papergraph.
func defaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, ConfigDir)
}

// MatchPolicy maps the case-sensitivity setting to the attribute
// matching policy used by discovery and export.
func (c *Config) MatchPolicy() paper.MatchPolicy {
	if c.MatchCaseSensitive {
		return paper.MatchExactCase
	}
	return paper.MatchFoldCase
}

// ExpandTilde expands a leading ~/ to the user's home directory.
func ExpandTilde(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
