// Package ideadateconfig handles loading and saving ideadatectl's CLI
// configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config: ~/.config/ideadatectl/config.yaml
//   - State:  ~/.local/state/ideadatectl/ (resolved by StateDir;
//     ideadatectl writes nothing there)
package ideadateconfig

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ideadate/journey-engine/pkg/ideadate/model"
)

// ResolverConfig names which candidate resolver ideadatectl should wire up.
type ResolverConfig struct {
	Kind string `yaml:"kind,omitempty"` // "mock" or "empty"
}

// EngineConfig holds tunables passed straight through to compute.Engine.
type EngineConfig struct {
	TravelCacheTTLMinutes int `yaml:"travel_cache_ttl_minutes,omitempty"`
	MaxTravelEdgeMinutes  int `yaml:"max_travel_edge_minutes,omitempty"`
}

// Config is the top-level configuration for ideadatectl.
type Config struct {
	DefaultVibeID model.VibeID   `yaml:"default_vibe_id,omitempty"`
	DefaultMode   model.IdeaDateMode `yaml:"default_mode,omitempty"`
	Resolver      ResolverConfig `yaml:"resolver,omitempty"`
	Engine        EngineConfig   `yaml:"engine,omitempty"`
	Debug         bool           `yaml:"debug,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DefaultVibeID: model.VibeAnniversaryIntimate,
		DefaultMode:   model.ModeDefault,
		Resolver:      ResolverConfig{Kind: "mock"},
		Engine: EngineConfig{
			TravelCacheTTLMinutes: 24 * 60,
			MaxTravelEdgeMinutes:  25,
		},
	}
}

// ConfigDir returns the XDG config directory for ideadatectl.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "ideadatectl")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ideadatectl")
}

// StateDir returns the XDG state directory for ideadatectl.
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "ideadatectl")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local", "state", "ideadatectl")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory, returning
// DefaultConfig if it doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path, returning DefaultConfig if it
// doesn't exist.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the XDG config directory.
func Save(cfg Config) error {
	path := ConfigPath()
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	return SaveTo(cfg, path)
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
