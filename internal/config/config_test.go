package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolateHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Open {
		t.Error("open should default to true")
	}
	if !cfg.Color {
		t.Error("color should default to true")
	}
	if cfg.SampleRows != 5 {
		t.Errorf("sample_rows = %d, want 5", cfg.SampleRows)
	}
	if !cfg.History.Enabled {
		t.Error("history.enabled should default to true")
	}
	if filepath.Base(cfg.History.File) != "history.jsonl" {
		t.Errorf("history.file = %q", cfg.History.File)
	}
}

func TestLoadFromFile(t *testing.T) {
	home := isolateHome(t)
	dir := filepath.Join(home, ".xlstack")
	if err := os.MkdirAll(dir, 0700); err != nil {
		t.Fatal(err)
	}
	content := "open: false\nsample_rows: 10\nhistory:\n  enabled: false\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Open {
		t.Error("open should be false from file")
	}
	if cfg.SampleRows != 10 {
		t.Errorf("sample_rows = %d, want 10", cfg.SampleRows)
	}
	if cfg.History.Enabled {
		t.Error("history.enabled should be false from file")
	}
	// Unset keys keep their defaults.
	if !cfg.Color {
		t.Error("color should keep its default")
	}
}

func TestEnvOverride(t *testing.T) {
	isolateHome(t)
	t.Setenv("XLSTACK_SAMPLE_ROWS", "9")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.SampleRows != 9 {
		t.Errorf("sample_rows = %d, want 9 from environment", cfg.SampleRows)
	}
}

func TestConfigPath(t *testing.T) {
	isolateHome(t)

	path := ConfigPath()
	if !strings.Contains(path, ".xlstack") || !strings.HasSuffix(path, "config.yaml") {
		t.Errorf("unexpected path: %q", path)
	}
}
