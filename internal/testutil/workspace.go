// Package testutil provides reusable test utilities for claudia integration tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TestWorkspace represents a temporary project directory plus an isolated
// home directory for testing. User-scoped commands live under an overridden
// CLAUDE_CONFIG_DIR so tests never touch the real ~/.claude.
type TestWorkspace struct {
	Root       string // temp root holding everything below
	ProjectDir string // project directory (commands under .claude/commands)
	HomeDir    string // isolated $HOME
	ConfigDir  string // isolated $CLAUDE_CONFIG_DIR (commands under commands/)

	t            *testing.T
	projectFiles map[string]string
	userFiles    map[string]string
	config       string
}

// NewTestWorkspace creates a new workspace builder.
// Call Build() to create the directories and files.
func NewTestWorkspace(t *testing.T) *TestWorkspace {
	t.Helper()
	return &TestWorkspace{
		t:            t,
		projectFiles: make(map[string]string),
		userFiles:    make(map[string]string),
	}
}

// WithProjectCommand adds a command file under <project>/.claude/commands.
// The path is relative to the commands root, e.g. "git/commit.md".
func (w *TestWorkspace) WithProjectCommand(relPath, content string) *TestWorkspace {
	w.projectFiles[relPath] = content
	return w
}

// WithUserCommand adds a command file under <config dir>/commands.
func (w *TestWorkspace) WithUserCommand(relPath, content string) *TestWorkspace {
	w.userFiles[relPath] = content
	return w
}

// WithConfig sets the content of ~/.config/claudia/config.toml in the
// isolated home.
func (w *TestWorkspace) WithConfig(toml string) *TestWorkspace {
	w.config = toml
	return w
}

// Build creates the workspace directories and all configured files, and
// points HOME, XDG_CONFIG_HOME, and CLAUDE_CONFIG_DIR at the isolated tree
// for the duration of the test.
func (w *TestWorkspace) Build() *TestWorkspace {
	w.t.Helper()

	w.Root = w.t.TempDir()
	w.ProjectDir = filepath.Join(w.Root, "project")
	w.HomeDir = filepath.Join(w.Root, "home")
	w.ConfigDir = filepath.Join(w.HomeDir, ".claude")

	for _, dir := range []string{w.ProjectDir, w.ConfigDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			w.t.Fatalf("failed to create directory %s: %v", dir, err)
		}
	}

	for relPath, content := range w.projectFiles {
		w.writeFile(filepath.Join(w.ProjectCommandsDir(), relPath), content)
	}
	for relPath, content := range w.userFiles {
		w.writeFile(filepath.Join(w.UserCommandsDir(), relPath), content)
	}
	if w.config != "" {
		w.writeFile(filepath.Join(w.HomeDir, ".config", "claudia", "config.toml"), w.config)
	}

	w.t.Setenv("HOME", w.HomeDir)
	w.t.Setenv("XDG_CONFIG_HOME", filepath.Join(w.HomeDir, ".config"))
	w.t.Setenv("CLAUDE_CONFIG_DIR", w.ConfigDir)

	return w
}

// ProjectCommandsDir returns the project commands root.
func (w *TestWorkspace) ProjectCommandsDir() string {
	return filepath.Join(w.ProjectDir, ".claude", "commands")
}

// UserCommandsDir returns the user commands root.
func (w *TestWorkspace) UserCommandsDir() string {
	return filepath.Join(w.ConfigDir, "commands")
}

// ProjectCommandPath returns the absolute path of a project command file.
func (w *TestWorkspace) ProjectCommandPath(relPath string) string {
	return filepath.Join(w.ProjectCommandsDir(), relPath)
}

// UserCommandPath returns the absolute path of a user command file.
func (w *TestWorkspace) UserCommandPath(relPath string) string {
	return filepath.Join(w.UserCommandsDir(), relPath)
}

// writeFile writes a file, creating parent directories as needed.
func (w *TestWorkspace) writeFile(fullPath, content string) {
	w.t.Helper()

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		w.t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		w.t.Fatalf("failed to write file %s: %v", fullPath, err)
	}
}

// ReadFile reads a file by absolute path, failing the test on error.
func (w *TestWorkspace) ReadFile(fullPath string) string {
	w.t.Helper()
	content, err := os.ReadFile(fullPath)
	if err != nil {
		w.t.Fatalf("failed to read file %s: %v", fullPath, err)
	}
	return string(content)
}

// FileExists checks whether a file exists.
func (w *TestWorkspace) FileExists(fullPath string) bool {
	w.t.Helper()
	_, err := os.Stat(fullPath)
	return err == nil
}
