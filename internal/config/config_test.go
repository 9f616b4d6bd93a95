package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config")

	content := `[defaults]
profile = sensitive
format = json
color = off

[check.room]
all = yes
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	tests := []struct {
		key  string
		want string
	}{
		{"defaults.profile", "sensitive"},
		{"defaults.format", "json"},
		{"check.room.all", "yes"},
		{"defaults.missing", ""},
		{"nosection.key", ""},
		{"nodot", ""},
	}
	for _, tt := range tests {
		if got := cfg.GetString(tt.key); got != tt.want {
			t.Errorf("GetString(%q) = %q, want %q", tt.key, got, tt.want)
		}
	}

	if !cfg.HasKey("defaults.profile") {
		t.Error("HasKey(defaults.profile) = false, want true")
	}
	if cfg.HasKey("defaults.missing") {
		t.Error("HasKey(defaults.missing) = true, want false")
	}
	if !cfg.GetBool("check.room.all") {
		t.Error("GetBool(check.room.all) = false, want true")
	}
	if cfg.GetBool("defaults.color") {
		t.Error("GetBool(defaults.color) = true, want false")
	}
	if got := cfg.GetStringWithFallback("defaults.missing", "terminal"); got != "terminal" {
		t.Errorf("GetStringWithFallback = %q, want terminal", got)
	}
	if cfg.File() != path {
		t.Errorf("File() = %q, want %q", cfg.File(), path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope"))
	if err != nil {
		t.Fatalf("LoadFile on missing file should not fail: %v", err)
	}
	if cfg.HasKey("defaults.profile") {
		t.Error("empty config should have no keys")
	}
}

func TestPathFromEnv(t *testing.T) {
	t.Setenv(EnvPath, "/tmp/custom-chatfmt")

	got, err := Path()
	if err != nil {
		t.Fatalf("Path failed: %v", err)
	}
	if got != "/tmp/custom-chatfmt" {
		t.Errorf("Path() = %q, want /tmp/custom-chatfmt", got)
	}
}

func TestReadingMissingKeyKeepsFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	if err := os.WriteFile(path, []byte("[defaults]\nprofile = sensitive\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	for i := 0; i < 2; i++ {
		if got := cfg.GetString("defaults.format"); got != "" {
			t.Errorf("GetString(defaults.format) = %q, want empty", got)
		}
		if cfg.GetBool("check.all") {
			t.Error("GetBool(check.all) = true, want false")
		}
		if cfg.HasKey("defaults.format") {
			t.Error("reading defaults.format created the key")
		}
		if got := cfg.GetStringWithFallback("defaults.format", "terminal"); got != "terminal" {
			t.Errorf("GetStringWithFallback(defaults.format) = %q, want terminal", got)
		}
	}
}
