package slash

import (
	"fmt"
	"os"
	"strings"

	"github.com/TotoroFxx/claudia-backup/internal/parser"
)

// LoadFile loads a single command file found under root with the given
// scope label. Frontmatter problems degrade to "the whole file is the
// body"; only read and path derivation failures are errors.
func LoadFile(filePath, root string, scope Scope) (*Command, error) {
	cmd, _, err := loadFile(filePath, root, scope)
	return cmd, err
}

// loadFile additionally reports a recovered frontmatter problem through
// warn so bulk scans can surface it.
func loadFile(filePath, root string, scope Scope) (cmd *Command, warn, err error) {
	raw, err := os.ReadFile(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("read command file: %w", err)
	}

	meta, body, warn := parser.Split(string(raw))

	name, namespace, err := deriveInfo(filePath, root)
	if err != nil {
		return nil, warn, fmt.Errorf("derive command info: %w", err)
	}

	cmd = &Command{
		ID:                CommandID(scope, filePath),
		Name:              name,
		FullCommand:       invocation(name, namespace),
		Scope:             scope,
		Namespace:         namespace,
		FilePath:          filePath,
		Content:           body,
		AllowedTools:      []string{},
		HasBashCommands:   strings.Contains(body, "!`"),
		HasFileReferences: strings.Contains(body, "@"),
		AcceptsArguments:  strings.Contains(body, "$ARGUMENTS"),
	}
	if meta != nil {
		cmd.Description = meta.Description
		if meta.AllowedTools != nil {
			cmd.AllowedTools = meta.AllowedTools
		}
	}
	return cmd, warn, nil
}
