package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the config.toml file.
type Config struct {
	General GeneralConfig `toml:"general"`
}

// GeneralConfig holds the engine choices. DefaultEngine is used by the
// plain Enter search; AltEngine by the alternate search binding.
type GeneralConfig struct {
	DefaultEngine string `toml:"default_engine"`
	AltEngine     string `toml:"alt_engine"`
}

// DefaultConfig returns a new config with default values.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			DefaultEngine: "Google",
			AltEngine:     "Perplexity",
		},
	}
}

// Load reads config.toml from path. A missing or malformed file falls back
// to defaults, and empty fields are filled in, so the caller always gets a
// usable config.
func Load(path string) *Config {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return DefaultConfig()
	}

	defaults := DefaultConfig()
	if cfg.General.DefaultEngine == "" {
		cfg.General.DefaultEngine = defaults.General.DefaultEngine
	}
	if cfg.General.AltEngine == "" {
		cfg.General.AltEngine = defaults.General.AltEngine
	}
	return cfg
}

// Save writes the config file. Callers changing the default engine from the
// UI treat a failure here as non-fatal; the in-memory session continues.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// EnsureDefaultFiles creates engines.toml and config.toml under dir when
// they do not exist yet, mirroring what the program would load anyway.
// Errors are returned but safe to ignore; loading falls back to defaults.
func EnsureDefaultFiles(dir string) error {
	enginesPath := EnginesPath(dir)
	if _, err := os.Stat(enginesPath); os.IsNotExist(err) {
		if err := SaveEngines(DefaultEngines(), enginesPath); err != nil {
			return err
		}
	}

	configPath := ConfigPath(dir)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := DefaultConfig().Save(configPath); err != nil {
			return err
		}
	}
	return nil
}
