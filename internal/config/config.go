// Package config loads the optional .wirestack-tui YAML file. It only
// configures how the collaborators are reached (binary path, service
// manager, runner limits) — never what they do.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MajdKZ1/WireStack/internal/service"
)

// FileName is the dotfile looked up in the config directory.
const FileName = ".wirestack-tui"

// Default values for runner configuration.
const (
	DefaultTimeout   = 5 * time.Minute
	DefaultMaxOutput = 1 << 20 // 1 MB
)

// DefaultServiceName is the base unit name probed by the Tor controller.
const DefaultServiceName = "tor"

// Config holds the parsed .wirestack-tui configuration.
// All fields are optional; zero values represent defaults.
type Config struct {
	RawTimeout   string        `yaml:"timeout"`    // e.g. "5m", "30s"
	RawMaxOutput int           `yaml:"max_output"` // bytes per stream
	Binary       string        `yaml:"binary"`     // binary path; $WIRESTACK_BIN still wins
	Service      ServiceConfig `yaml:"service"`
}

// ServiceConfig selects the service-manager backend and probe list.
type ServiceConfig struct {
	Manager    []string `yaml:"manager"`    // argv prefix, default ["systemctl"]
	Name       string   `yaml:"name"`       // base unit name, default "tor"
	Candidates []string `yaml:"candidates"` // full probe list override
}

// Timeout returns the configured invocation timeout or the default.
func (c *Config) Timeout() time.Duration {
	if c.RawTimeout != "" {
		d, err := time.ParseDuration(c.RawTimeout)
		if err == nil && d > 0 {
			return d
		}
	}
	return DefaultTimeout
}

// MaxOutputBytes returns the configured output cap or the default.
func (c *Config) MaxOutputBytes() int {
	if c.RawMaxOutput > 0 {
		return c.RawMaxOutput
	}
	return DefaultMaxOutput
}

// ServiceManager returns the service manager argv prefix.
func (c *Config) ServiceManager() []string {
	if len(c.Service.Manager) > 0 {
		return c.Service.Manager
	}
	return service.DefaultManager
}

// ServiceCandidates returns the ordered probe list for the Tor service.
func (c *Config) ServiceCandidates() []string {
	if len(c.Service.Candidates) > 0 {
		return c.Service.Candidates
	}
	name := c.Service.Name
	if name == "" {
		name = DefaultServiceName
	}
	return service.Candidates(name)
}

// Load reads the .wirestack-tui file from dir. A missing file is not an
// error; a default Config is returned.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading %s: %w", FileName, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", FileName, err)
	}
	return cfg, nil
}
