package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/TotoroFxx/claudia-backup/internal/commands"
)

// syncRegistryMetadata appends registry usage examples to each command's
// long help. Commands read Short and Long straight from the registry at
// declaration; examples live only in registry metadata, so they are
// stitched in here once the tree is assembled.
func syncRegistryMetadata(root *cobra.Command) {
	var walk func(cmd *cobra.Command, path string)
	walk = func(cmd *cobra.Command, path string) {
		if path != "" {
			appendRegistryExamples(cmd, path)
		}

		for _, child := range cmd.Commands() {
			childPath := child.Name()
			if path != "" {
				childPath = path + " " + child.Name()
			}
			walk(child, childPath)
		}
	}

	walk(root, "")
}

func appendRegistryExamples(cmd *cobra.Command, path string) {
	id, ok := commands.ResolveCommandID(path)
	if !ok {
		return
	}
	meta, ok := commands.GetCommandMeta(id)
	if !ok || len(meta.Examples) == 0 {
		return
	}

	long := cmd.Long
	if long == "" {
		long = cmd.Short
	}

	var b strings.Builder
	b.WriteString(strings.TrimRight(long, "\n"))
	b.WriteString("\n\nExamples:\n")
	for _, ex := range meta.Examples {
		b.WriteString("  ")
		b.WriteString(ex)
		b.WriteString("\n")
	}
	cmd.Long = strings.TrimRight(b.String(), "\n")
}
