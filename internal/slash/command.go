// Package slash implements the slash command store: discovery of
// markdown command files under the project and user command roots, the
// built-in command set, and the save/delete lifecycle. Every operation
// reads the file system fresh; no state survives between calls.
package slash

import (
	"errors"
	"strings"
)

// Scope identifies where a command comes from.
type Scope string

const (
	ScopeDefault Scope = "default"
	ScopeProject Scope = "project"
	ScopeUser    Scope = "user"
)

// ParseScope parses a user-supplied scope for save operations. Only the
// file-backed scopes are accepted; built-ins cannot be written.
func ParseScope(raw string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(raw))) {
	case ScopeProject:
		return ScopeProject, nil
	case ScopeUser:
		return ScopeUser, nil
	default:
		return "", errors.New("Invalid scope. Must be 'project' or 'user'")
	}
}

// Command is one slash command definition. The JSON field names are the
// wire format of the hosting UI and must stay stable.
type Command struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	FullCommand       string   `json:"full_command"`
	Scope             Scope    `json:"scope"`
	Namespace         *string  `json:"namespace"`
	FilePath          string   `json:"file_path"`
	Content           string   `json:"content"`
	Description       *string  `json:"description"`
	AllowedTools      []string `json:"allowed_tools"`
	HasBashCommands   bool     `json:"has_bash_commands"`
	HasFileReferences bool     `json:"has_file_references"`
	AcceptsArguments  bool     `json:"accepts_arguments"`
}
