package slash

import (
	"fmt"
	"strings"

	"github.com/TotoroFxx/claudia-backup/internal/slugs"
)

// NotFoundError reports a reference that matches no command.
type NotFoundError struct {
	Ref string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no command matches %q", e.Ref)
}

// AmbiguousError reports a reference that matches several commands.
type AmbiguousError struct {
	Ref     string
	Matches []string // candidate ids
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous command %q: matches %s", e.Ref, strings.Join(e.Matches, ", "))
}

// Resolve finds a single command for a user-supplied reference, which
// may be an exact id, an invocation with or without the leading slash,
// a bare name, or a slug-normalized variant of an invocation. Rules are
// tried in that order; the first rule that matches anything decides,
// and a rule matching several commands is an ambiguity, not a
// fall-through.
func Resolve(ref, projectPath string) (*Command, []LoadWarning, error) {
	commands, warnings := List(projectPath)
	cmd, err := resolveIn(commands, ref)
	return cmd, warnings, err
}

func resolveIn(commands []Command, ref string) (*Command, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, &NotFoundError{Ref: ref}
	}

	// Ids are unique; no ambiguity possible here.
	for i := range commands {
		if commands[i].ID == ref {
			return &commands[i], nil
		}
	}

	inv := "/" + strings.TrimPrefix(ref, "/")
	if cmd, done, err := pickMatches(commands, ref, func(c *Command) bool { return c.FullCommand == inv }); done {
		return cmd, err
	}

	if cmd, done, err := pickMatches(commands, ref, func(c *Command) bool { return c.Name == ref }); done {
		return cmd, err
	}

	want := slugs.Invocation(ref)
	if cmd, done, err := pickMatches(commands, ref, func(c *Command) bool { return slugs.Invocation(c.FullCommand) == want }); done {
		return cmd, err
	}

	return nil, &NotFoundError{Ref: ref}
}

// pickMatches applies one matching rule. done reports whether the rule
// reached a decision: a single match or an ambiguity.
func pickMatches(commands []Command, ref string, match func(*Command) bool) (cmd *Command, done bool, err error) {
	var found []*Command
	for i := range commands {
		if match(&commands[i]) {
			found = append(found, &commands[i])
		}
	}

	switch len(found) {
	case 0:
		return nil, false, nil
	case 1:
		return found[0], true, nil
	default:
		ids := make([]string, len(found))
		for i, c := range found {
			ids[i] = c.ID
		}
		return nil, true, &AmbiguousError{Ref: ref, Matches: ids}
	}
}
