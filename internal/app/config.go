package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional .adco/config.yaml. Every field has a default, so a
// missing file is the same as an empty one.
type Config struct {
	InputsDir string      `yaml:"inputs_dir"`
	Cache     CacheConfig `yaml:"cache"`
	Log       LogConfig   `yaml:"log"`
}

// CacheConfig controls the persisted answer cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LogConfig feeds commonlog.Configure. An empty File logs to stderr.
type LogConfig struct {
	Verbosity int    `yaml:"verbosity"`
	File      string `yaml:"file"`
}

// DefaultConfig is used for anything the config file leaves out.
func DefaultConfig(p *Paths) *Config {
	return &Config{
		InputsDir: p.Resolve("inputs"),
		Cache:     CacheConfig{Enabled: true, Path: p.DB},
	}
}

// LoadConfig reads path over the defaults. Relative paths in the file are
// resolved against the project root.
func LoadConfig(path string, p *Paths) (*Config, error) {
	cfg := DefaultConfig(p)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Log.Verbosity < 0 {
		return nil, fmt.Errorf("%s: log.verbosity must not be negative", path)
	}

	cfg.InputsDir = p.Resolve(cfg.InputsDir)
	cfg.Cache.Path = p.Resolve(cfg.Cache.Path)
	if cfg.Cache.Path == "" {
		cfg.Cache.Path = p.DB
	}
	cfg.Log.File = p.Resolve(cfg.Log.File)
	return cfg, nil
}

// Dump renders the resolved configuration as YAML.
func (c *Config) Dump() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
