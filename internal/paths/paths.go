// Package paths resolves the on-disk layout Claude Code uses for slash
// command storage: a commands tree under each project's .claude directory
// and one under the user's Claude configuration directory.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	claudeDirName   = ".claude"
	commandsDirName = "commands"
)

// UserClaudeDir returns the per-user Claude configuration directory.
// CLAUDE_CONFIG_DIR overrides the default ~/.claude.
func UserClaudeDir() (string, error) {
	if base := strings.TrimSpace(os.Getenv("CLAUDE_CONFIG_DIR")); base != "" {
		return filepath.Clean(base), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, claudeDirName), nil
}

// UserCommandsRoot returns the user-scoped slash command root
// (~/.claude/commands by default).
func UserCommandsRoot() (string, error) {
	dir, err := UserClaudeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, commandsDirName), nil
}

// ProjectCommandsRoot returns the project-scoped slash command root
// (<project>/.claude/commands).
func ProjectCommandsRoot(projectPath string) string {
	return filepath.Join(projectPath, claudeDirName, commandsDirName)
}

// ExpandHome expands a leading "~" in p to the current user's home
// directory. Paths that do not start with "~" are returned unchanged,
// as is "~someone" (per-user lookup is not supported).
func ExpandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	if p == "~" {
		return home
	}
	return filepath.Join(home, p[2:])
}
