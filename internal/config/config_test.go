package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `project_path = "~/work/app"
editor = "nvim"

[ui]
accent = "39"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.ProjectPath != "~/work/app" {
		t.Errorf("ProjectPath = %q, want ~/work/app", cfg.ProjectPath)
	}
	if cfg.Editor != "nvim" {
		t.Errorf("Editor = %q, want nvim", cfg.Editor)
	}
	if cfg.UI.Accent != "39" {
		t.Errorf("UI.Accent = %q, want 39", cfg.UI.Accent)
	}
}

func TestLoadFromInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("editor = [not closed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("expected parse error for invalid TOML")
	}
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ProjectPath != "" || cfg.Editor != "" || cfg.UI.Accent != "" {
		t.Errorf("Load() without a file = %+v, want zero config", cfg)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	in := &Config{
		ProjectPath: "/work/app",
		Editor:      "vim",
		UI:          UIConfig{Accent: "#7D56F4"},
	}
	if err := SaveTo(path, in); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	out, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if out.ProjectPath != in.ProjectPath {
		t.Errorf("ProjectPath = %q, want %q", out.ProjectPath, in.ProjectPath)
	}
	if out.Editor != in.Editor {
		t.Errorf("Editor = %q, want %q", out.Editor, in.Editor)
	}
	if out.UI.Accent != in.UI.Accent {
		t.Errorf("UI.Accent = %q, want %q", out.UI.Accent, in.UI.Accent)
	}
}

func TestSaveToOmitsEmptyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := SaveTo(path, &Config{Editor: "vim"}); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	content := string(raw)
	if strings.Contains(content, "project_path") {
		t.Errorf("empty project_path serialized:\n%s", content)
	}
	if strings.Contains(content, "[ui]") {
		t.Errorf("empty ui section serialized:\n%s", content)
	}
	if !strings.Contains(content, `editor = "vim"`) {
		t.Errorf("editor missing:\n%s", content)
	}
}

func TestSaveToCreatesParentDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "claudia", "config.toml")

	if err := SaveTo(path, &Config{Editor: "vim"}); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config not written: %v", err)
	}
}

func TestSaveToRequiresPath(t *testing.T) {
	if err := SaveTo("  ", &Config{}); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestCreateDefaultAt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claudia", "config.toml")

	got, err := CreateDefaultAt(path)
	if err != nil {
		t.Fatalf("CreateDefaultAt() error = %v", err)
	}
	if got != path {
		t.Errorf("returned path = %q, want %q", got, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(raw), "# Claudia Configuration") {
		t.Errorf("default config missing header:\n%s", raw)
	}

	// The template is commented out; it must parse as an empty config.
	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom(default) error = %v", err)
	}
	if cfg.ProjectPath != "" || cfg.Editor != "" {
		t.Errorf("default config sets values: %+v", cfg)
	}
}

func TestCreateDefaultAtKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`editor = "vim"`), 0o644); err != nil {
		t.Fatalf("seed config: %v", err)
	}

	if _, err := CreateDefaultAt(path); err != nil {
		t.Fatalf("CreateDefaultAt() error = %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if string(raw) != `editor = "vim"` {
		t.Errorf("existing config was overwritten:\n%s", raw)
	}
}

func TestGetEditorFallsBackToEnv(t *testing.T) {
	t.Setenv("EDITOR", "emacs")

	cfg := &Config{}
	if got := cfg.GetEditor(); got != "emacs" {
		t.Errorf("GetEditor() = %q, want emacs from $EDITOR", got)
	}

	cfg.Editor = "vim"
	if got := cfg.GetEditor(); got != "vim" {
		t.Errorf("GetEditor() = %q, want configured vim", got)
	}
}

func TestResolveConfigPath(t *testing.T) {
	if got := ResolveConfigPath("/explicit/config.toml"); got != "/explicit/config.toml" {
		t.Errorf("ResolveConfigPath(explicit) = %q", got)
	}
	if got := ResolveConfigPath("  "); got == "  " || got == "" {
		t.Errorf("ResolveConfigPath(blank) = %q, want a default path", got)
	}
}
