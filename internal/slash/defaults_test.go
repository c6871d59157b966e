package slash

import (
	"strings"
	"testing"
)

func TestDefaultCommandsTable(t *testing.T) {
	commands := DefaultCommands()
	if len(commands) != 58 {
		t.Fatalf("got %d built-ins, want 58", len(commands))
	}

	seen := make(map[string]struct{}, len(commands))
	for _, cmd := range commands {
		if !strings.HasPrefix(cmd.ID, "default-") {
			t.Errorf("id %q missing default- prefix", cmd.ID)
		}
		if _, dup := seen[cmd.ID]; dup {
			t.Errorf("duplicate id %q", cmd.ID)
		}
		seen[cmd.ID] = struct{}{}

		if cmd.ID != "default-"+cmd.Name {
			t.Errorf("id %q does not match name %q", cmd.ID, cmd.Name)
		}
		if cmd.FullCommand != "/"+cmd.Name {
			t.Errorf("invocation %q does not match name %q", cmd.FullCommand, cmd.Name)
		}
		if cmd.Scope != ScopeDefault {
			t.Errorf("%s scope = %q, want default", cmd.ID, cmd.Scope)
		}
		if cmd.FilePath != "" {
			t.Errorf("%s has a file path %q, built-ins have none", cmd.ID, cmd.FilePath)
		}
		if cmd.Namespace != nil {
			t.Errorf("%s has a namespace %q, built-ins have none", cmd.ID, *cmd.Namespace)
		}
		if cmd.Description == nil || *cmd.Description == "" {
			t.Errorf("%s has no description", cmd.ID)
		}
		if cmd.AllowedTools == nil {
			t.Errorf("%s AllowedTools is nil, want empty slice", cmd.ID)
		}
	}
}

func TestDefaultCommandsKnownEntries(t *testing.T) {
	byID := make(map[string]Command)
	for _, cmd := range DefaultCommands() {
		byID[cmd.ID] = cmd
	}

	commit, ok := byID["default-commit"]
	if !ok {
		t.Fatal("default-commit missing")
	}
	if commit.FullCommand != "/commit" {
		t.Errorf("commit invocation = %q, want /commit", commit.FullCommand)
	}
	if commit.AcceptsArguments {
		t.Error("commit should not accept arguments")
	}

	reviewPR, ok := byID["default-review-pr"]
	if !ok {
		t.Fatal("default-review-pr missing")
	}
	if !reviewPR.AcceptsArguments {
		t.Error("review-pr should accept arguments")
	}
}

func TestDefaultCommandsReturnsFreshCopies(t *testing.T) {
	first := DefaultCommands()
	first[0].Name = "mutated"
	if desc := first[0].Description; desc != nil {
		*desc = "mutated"
	}

	second := DefaultCommands()
	if second[0].Name == "mutated" {
		t.Error("mutating a returned record leaked into the table")
	}
	if second[0].Description != nil && *second[0].Description == "mutated" {
		t.Error("mutating a returned description leaked into the table")
	}
}
