package config

import (
	"path/filepath"
	"testing"
)

func TestLoadMissingReturnsNil(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with no config file: %v", err)
	}
	if cfg != nil {
		t.Errorf("Load() = %+v, want nil when no config exists", cfg)
	}
	if Exists() {
		t.Error("Exists() = true with no config file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	orig := DefaultConfig()
	orig.Profile = "improver"
	orig.AI.Enabled = true
	orig.AI.Model = "qwen2.5:3b"

	if err := orig.Save(); err != nil {
		t.Fatalf("Save(): %v", err)
	}
	if !Exists() {
		t.Fatal("Exists() = false after Save")
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if loaded == nil {
		t.Fatal("Load() = nil after Save")
	}
	if loaded.Profile != "improver" {
		t.Errorf("Profile = %q, want improver", loaded.Profile)
	}
	if loaded.AI == nil || !loaded.AI.Enabled || loaded.AI.Model != "qwen2.5:3b" {
		t.Errorf("AI = %+v, want enabled with model qwen2.5:3b", loaded.AI)
	}
}

func TestLoadDefaultsEmptyProfile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := &Config{}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save(): %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load(): %v", err)
	}
	if loaded.Profile != "reasoning" {
		t.Errorf("Profile = %q, want reasoning default", loaded.Profile)
	}
}

func TestConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath(): %v", err)
	}
	want := filepath.Join(home, ".config", "cot", "config.yaml")
	if path != want {
		t.Errorf("ConfigPath() = %q, want %q", path, want)
	}
}
