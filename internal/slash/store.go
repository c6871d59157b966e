package slash

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/TotoroFxx/claudia-backup/internal/atomicfile"
	"github.com/TotoroFxx/claudia-backup/internal/paths"
)

// LoadWarning records a file that could not be fully loaded during a
// bulk scan. Warnings never abort a listing.
type LoadWarning struct {
	Path string
	Err  error
}

func (w LoadWarning) String() string {
	return fmt.Sprintf("%s: %v", w.Path, w.Err)
}

// List returns every known command: built-ins first in table order,
// then project commands when projectPath is non-empty, then user
// commands, each group in walk order. Nothing is sorted or
// deduplicated, so a project command and a user command may share a
// name. Per-file failures come back as warnings.
func List(projectPath string) ([]Command, []LoadWarning) {
	commands := DefaultCommands()
	var warnings []LoadWarning

	if projectPath != "" {
		cmds, warns := loadRoot(paths.ProjectCommandsRoot(projectPath), ScopeProject)
		commands = append(commands, cmds...)
		warnings = append(warnings, warns...)
	}

	// A machine without a resolvable home directory simply has no user
	// commands.
	if userRoot, err := paths.UserCommandsRoot(); err == nil {
		cmds, warns := loadRoot(userRoot, ScopeUser)
		commands = append(commands, cmds...)
		warnings = append(warnings, warns...)
	}

	return commands, warnings
}

// loadRoot loads every command file under one scan root.
func loadRoot(root string, scope Scope) ([]Command, []LoadWarning) {
	files, err := FindCommandFiles(root)
	if err != nil {
		return nil, []LoadWarning{{Path: root, Err: err}}
	}

	var cmds []Command
	var warns []LoadWarning
	for _, file := range files {
		cmd, warn, err := loadFile(file, root, scope)
		if err != nil {
			warns = append(warns, LoadWarning{Path: file, Err: err})
			continue
		}
		if warn != nil {
			warns = append(warns, LoadWarning{Path: file, Err: warn})
		}
		cmds = append(cmds, *cmd)
	}
	return cmds, warns
}

// Get returns the command with the given id.
//
// The listing behind it runs without project context, so only built-in
// and user commands are reachable here; project ids come back not
// found. Callers that need project commands must List with the project
// path and filter.
func Get(id string) (*Command, error) {
	if len(strings.Split(id, "-")) < 2 {
		return nil, errors.New("Invalid command ID")
	}

	commands, _ := List("")
	for i := range commands {
		if commands[i].ID == id {
			return &commands[i], nil
		}
	}
	return nil, fmt.Errorf("Command not found: %s", id)
}

// SaveOptions describes a command file to write.
type SaveOptions struct {
	Scope        Scope
	Name         string
	Namespace    string // colon-separated segments; empty for none
	Content      string
	Description  string // empty for none
	AllowedTools []string
	ProjectPath  string // required for project scope
}

// Save writes the command file (creating namespace directories as
// needed, replacing any existing file) and returns the freshly loaded
// record so derived fields reflect what is actually on disk.
func Save(opts SaveOptions) (*Command, error) {
	if opts.Name == "" {
		return nil, errors.New("Command name cannot be empty")
	}
	if opts.Scope != ScopeProject && opts.Scope != ScopeUser {
		return nil, errors.New("Invalid scope. Must be 'project' or 'user'")
	}

	var baseDir string
	if opts.Scope == ScopeProject {
		if opts.ProjectPath == "" {
			return nil, errors.New("Project path required for project scope")
		}
		baseDir = paths.ProjectCommandsRoot(opts.ProjectPath)
	} else {
		root, err := paths.UserCommandsRoot()
		if err != nil {
			return nil, err
		}
		baseDir = root
	}

	dir := baseDir
	if opts.Namespace != "" {
		for _, segment := range strings.Split(opts.Namespace, ":") {
			dir = filepath.Join(dir, segment)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create command directories: %w", err)
	}

	filePath := filepath.Join(dir, opts.Name+".md")
	data := serialize(opts.Description, opts.AllowedTools, opts.Content)
	if err := atomicfile.WriteFile(filePath, []byte(data), 0o644); err != nil {
		return nil, fmt.Errorf("write command file: %w", err)
	}

	cmd, _, err := loadFile(filePath, baseDir, opts.Scope)
	if err != nil {
		return nil, fmt.Errorf("load saved command: %w", err)
	}
	return cmd, nil
}

// Delete removes the backing file for id and prunes any directories the
// removal left empty, walking upward but never past the commands root.
// Directory pruning is best-effort; its failures are ignored.
func Delete(id, projectPath string) (string, error) {
	if strings.HasPrefix(id, "project-") && projectPath == "" {
		return "", errors.New("Project path required to delete project commands")
	}

	commands, _ := List(projectPath)
	var target *Command
	for i := range commands {
		if commands[i].ID == id {
			target = &commands[i]
			break
		}
	}
	if target == nil {
		return "", fmt.Errorf("Command not found: %s", id)
	}

	// Built-ins have no backing file; removing "" fails here, which is
	// the contract for attempting to delete one.
	if err := os.Remove(target.FilePath); err != nil {
		return "", fmt.Errorf("delete command file: %w", err)
	}

	if root, err := scanRoot(target.Scope, projectPath); err == nil {
		removeEmptyDirs(filepath.Dir(target.FilePath), root)
	}

	return "Deleted command: " + target.FullCommand, nil
}

// scanRoot returns the commands root a scope's files live under.
func scanRoot(scope Scope, projectPath string) (string, error) {
	if scope == ScopeProject {
		return paths.ProjectCommandsRoot(projectPath), nil
	}
	return paths.UserCommandsRoot()
}

// removeEmptyDirs removes dir and each successive empty ancestor,
// stopping at root. Any read or remove failure ends the walk.
func removeEmptyDirs(dir, root string) {
	dir = filepath.Clean(dir)
	root = filepath.Clean(root)

	for dir != root && strings.HasPrefix(dir, root+string(filepath.Separator)) {
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) > 0 {
			return
		}
		if err := os.Remove(dir); err != nil {
			return
		}
		dir = filepath.Dir(dir)
	}
}
