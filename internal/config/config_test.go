package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg := Load(filepath.Join(t.TempDir(), "config.toml"))
	if cfg.General.DefaultEngine != "Google" {
		t.Errorf("default engine = %q, want Google", cfg.General.DefaultEngine)
	}
	if cfg.General.AltEngine != "Perplexity" {
		t.Errorf("alt engine = %q, want Perplexity", cfg.General.AltEngine)
	}
}

func TestLoadFillsEmptyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[general]\ndefault_engine = \"Bing\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := Load(path)
	if cfg.General.DefaultEngine != "Bing" {
		t.Errorf("default engine = %q, want Bing", cfg.General.DefaultEngine)
	}
	if cfg.General.AltEngine != "Perplexity" {
		t.Errorf("alt engine not defaulted: %q", cfg.General.AltEngine)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "config.toml")

	cfg := DefaultConfig()
	cfg.General.DefaultEngine = "DuckDuckGo"
	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}

	again := Load(path)
	if again.General.DefaultEngine != "DuckDuckGo" {
		t.Errorf("round trip default engine = %q", again.General.DefaultEngine)
	}
}

func TestEnsureDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	if err := EnsureDefaultFiles(dir); err != nil {
		t.Fatal(err)
	}

	if _, err := os.Stat(ConfigPath(dir)); err != nil {
		t.Errorf("config.toml not created: %v", err)
	}
	if _, err := os.Stat(EnginesPath(dir)); err != nil {
		t.Errorf("engines.toml not created: %v", err)
	}

	// Existing files are left alone.
	custom := "[general]\ndefault_engine = \"Bing\"\n"
	if err := os.WriteFile(ConfigPath(dir), []byte(custom), 0644); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDefaultFiles(dir); err != nil {
		t.Fatal(err)
	}
	cfg := Load(ConfigPath(dir))
	if cfg.General.DefaultEngine != "Bing" {
		t.Error("EnsureDefaultFiles overwrote an existing config")
	}
}
