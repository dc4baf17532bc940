package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Shell.Prompt != "> " {
		t.Errorf("Prompt = %q, want %q", cfg.Shell.Prompt, "> ")
	}
	if cfg.Metrics.Addr != "" {
		t.Errorf("Metrics.Addr = %q, want disabled", cfg.Metrics.Addr)
	}
	if !cfg.Screen.ClearOnStart {
		t.Error("ClearOnStart should default to true")
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charizard.toml")
	body := `
[log]
level = "debug"

[metrics]
addr = ":9100"

[screen]
clear_on_start = false

[shell]
prompt = "$ "
banner = false
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CHARIZARD_PROMPT", "# ")
	t.Setenv("CHARIZARD_BANNER", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want default json", cfg.Log.Format)
	}
	if cfg.Metrics.Addr != ":9100" {
		t.Errorf("Metrics.Addr = %q, want :9100", cfg.Metrics.Addr)
	}
	if cfg.Shell.Prompt != "# " {
		t.Errorf("Prompt = %q, want env override", cfg.Shell.Prompt)
	}
	if cfg.Screen.ClearOnStart {
		t.Error("ClearOnStart should come from the file")
	}
	if !cfg.Shell.Banner {
		t.Error("Banner should be overridden to true")
	}
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	os.WriteFile(path, []byte("[log\nlevel ="), 0o644)
	if _, err := Load(path); err == nil {
		t.Error("Load(bad.toml) should fail")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load(missing.toml) should fail")
	}
}
