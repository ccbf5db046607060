// Package config handles intcode.toml configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the name of the configuration file.
const FileName = "intcode.toml"

// Config represents an intcode.toml configuration.
type Config struct {
	Log     Log     `toml:"log"`
	Machine Machine `toml:"machine"`
	Search  Search  `toml:"search"`
	Probe   Probe   `toml:"probe"`

	// Path is the file the configuration was read from (set at load time).
	Path string `toml:"-"`
}

// Log configures commonlog.
type Log struct {
	Verbosity int    `toml:"verbosity"`
	Path      string `toml:"path"`
}

// Machine configures every machine the CLI creates.
type Machine struct {
	Trace bool `toml:"trace"`
}

// Search configures amplifier phase searches.
type Search struct {
	Workers int `toml:"workers"`
}

// Probe configures probe result caching.
type Probe struct {
	CacheSize int `toml:"cache-size"`
}

// DefaultVerbosity logs at info level and above.
const DefaultVerbosity = 1

// Default returns the configuration used when no file is found.
func Default() *Config {
	c := &Config{Log: Log{Verbosity: DefaultVerbosity}}
	c.applyDefaults()
	return c
}

// Load parses intcode.toml from the given directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, FileName))
}

// LoadFile parses the configuration file at path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	// keys missing from the file keep their defaults
	c := Default()
	if err := toml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}

	c.Path, err = filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve path %s: %w", path, err)
	}
	c.applyDefaults()
	return c, nil
}

// FindAndLoad walks up from startDir to find an intcode.toml file,
// then loads and returns it. Returns nil if no file is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return Load(dir)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return nil, nil
		}
		dir = parent
	}
}

// LogPath returns the log file path, or nil to log to stderr.
func (c *Config) LogPath() *string {
	if c.Log.Path == "" {
		return nil
	}
	return &c.Log.Path
}

func (c *Config) applyDefaults() {
	if c.Search.Workers <= 0 {
		c.Search.Workers = 4
	}
	if c.Probe.CacheSize <= 0 {
		c.Probe.CacheSize = 4096
	}
}
