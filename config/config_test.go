package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Server.Port != 8080 || cfg.LogLevel != "verbose" {
		t.Errorf("got defaults %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := "log_level = \"silent\"\n\n[server]\nhost = \"0.0.0.0\"\nport = 9000\n"
	if err := os.WriteFile(filepath.Join(dir, "soluna.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.LogLevel != "silent" || cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 9000 {
		t.Errorf("got %+v", cfg)
	}
	// untouched fields keep their defaults
	if cfg.Server.MaxSourceLen != 1<<20 {
		t.Errorf("got max source len %d", cfg.Server.MaxSourceLen)
	}
}

func TestLoadRejectsBadPort(t *testing.T) {
	dir := t.TempDir()
	content := "[server]\nport = -1\n"
	if err := os.WriteFile(filepath.Join(dir, "soluna.toml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(dir); err == nil {
		t.Fatal("expected an error for an invalid port")
	}
}
