package ideadateconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ideadate/journey-engine/pkg/ideadate/model"
)

func TestDefaultConfigValues(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DefaultVibeID != model.VibeAnniversaryIntimate {
		t.Errorf("DefaultVibeID = %v, want %v", cfg.DefaultVibeID, model.VibeAnniversaryIntimate)
	}
	if cfg.Resolver.Kind != "mock" {
		t.Errorf("Resolver.Kind = %q, want mock", cfg.Resolver.Kind)
	}
	if cfg.Engine.TravelCacheTTLMinutes != 24*60 {
		t.Errorf("TravelCacheTTLMinutes = %d, want %d", cfg.Engine.TravelCacheTTLMinutes, 24*60)
	}
}

func TestLoadFromMissingFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadFrom(filepath.Join(dir, "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadFrom error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadFrom(missing) = %+v, want DefaultConfig()", cfg)
	}
}

func TestSaveToThenLoadFromRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Debug = true
	cfg.DefaultMode = model.ModeFamily
	cfg.Resolver.Kind = "empty"

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file to exist: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom error: %v", err)
	}
	if loaded != cfg {
		t.Errorf("LoadFrom(SaveTo(cfg)) = %+v, want %+v", loaded, cfg)
	}
}

func TestLoadFromRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("default_vibe_id: [not a scalar"), 0o644); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected an error for malformed YAML")
	}
}

func TestConfigDirHonorsXDGConfigHome(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/xdg")
	got := ConfigDir()
	want := filepath.Join("/custom/xdg", "ideadatectl")
	if got != want {
		t.Errorf("ConfigDir() = %q, want %q", got, want)
	}
}

func TestStateDirHonorsXDGStateHome(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	got := StateDir()
	want := filepath.Join("/custom/state", "ideadatectl")
	if got != want {
		t.Errorf("StateDir() = %q, want %q", got, want)
	}
}

func TestConfigPathJoinsConfigDirAndFilename(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/xdg")
	got := ConfigPath()
	want := filepath.Join("/custom/xdg", "ideadatectl", "config.yaml")
	if got != want {
		t.Errorf("ConfigPath() = %q, want %q", got, want)
	}
}
