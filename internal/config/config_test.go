package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingDefaultFile(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if cfg.RequireText || cfg.Verbose || cfg.OutputDir != "." {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty", cfg.Path())
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "srtkit.yaml")
	content := "require_text: true\noutput_dir: \" out/subs/ \"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.RequireText {
		t.Error("RequireText should be true")
	}
	if cfg.Verbose {
		t.Error("Verbose should keep its default")
	}
	if cfg.OutputDir != filepath.Join("out", "subs") {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("require_text: [oops"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestResolveOutput(t *testing.T) {
	cfg := &Config{OutputDir: "out"}
	abs := filepath.Join(t.TempDir(), "abs.srt")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"a.srt", filepath.Join("out", "a.srt")},
		{abs, abs},
	}
	for _, tt := range tests {
		if got := cfg.ResolveOutput(tt.in); got != tt.want {
			t.Errorf("ResolveOutput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
