package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Handler is a function that executes a command.
// It receives the project path, parsed args, and flag values.
type Handler func(projectPath string, args []string, flags map[string]interface{}) error

// GenerateCobraCommand creates a Cobra command from registry metadata.
// This reduces boilerplate by generating Use, Short, Long, Args, and flags
// from the registry, while keeping the handler logic separate.
func GenerateCobraCommand(name string, handler Handler) *cobra.Command {
	meta, ok := Registry[name]
	if !ok {
		return nil
	}

	// Build Use string
	use := meta.Name
	for _, arg := range meta.Args {
		if arg.Required {
			use += fmt.Sprintf(" <%s>", arg.Name)
		} else {
			use += fmt.Sprintf(" [%s]", arg.Name)
		}
	}

	// Build Long description
	longDesc := meta.Description
	if meta.LongDesc != "" {
		longDesc = meta.LongDesc
	}
	if len(meta.Examples) > 0 {
		longDesc += "\n\nExamples:\n"
		for _, ex := range meta.Examples {
			longDesc += "  " + ex + "\n"
		}
	}

	// Calculate min/max args
	minArgs := 0
	maxArgs := len(meta.Args)
	for _, arg := range meta.Args {
		if arg.Required {
			minArgs++
		}
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: meta.Description,
		Long:  longDesc,
	}

	// Set args validation
	if minArgs == maxArgs {
		if minArgs == 0 {
			cmd.Args = cobra.NoArgs
		} else {
			cmd.Args = cobra.ExactArgs(minArgs)
		}
	} else {
		cmd.Args = cobra.RangeArgs(minArgs, maxArgs)
	}

	// Add flags
	for _, flag := range meta.Flags {
		switch flag.Type {
		case FlagTypeBool:
			defaultBool := flag.Default == "true"
			cmd.Flags().Bool(flag.Name, defaultBool, flag.Description)
		case FlagTypeInt:
			var defaultInt int
			fmt.Sscanf(flag.Default, "%d", &defaultInt)
			cmd.Flags().Int(flag.Name, defaultInt, flag.Description)
		case FlagTypeStringSlice:
			cmd.Flags().StringArray(flag.Name, nil, flag.Description)
		default:
			cmd.Flags().String(flag.Name, flag.Default, flag.Description)
		}

		// Add short flag if specified
		if flag.Short != "" {
			cmd.Flags().Lookup(flag.Name).Shorthand = flag.Short
		}
	}

	// Add shell completion for static arg completions
	if len(meta.Args) > 0 {
		cmd.ValidArgsFunction = generateCompletionFunc(meta.Args)
	}

	// Set RunE if handler provided
	if handler != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error {
			// Get project path from parent command context
			projectPath, _ := cmd.Flags().GetString("project")
			if projectPath == "" {
				if parent := cmd.Parent(); parent != nil {
					projectPath, _ = parent.PersistentFlags().GetString("project")
				}
			}

			// Collect flag values
			flags := make(map[string]interface{})
			for _, flag := range meta.Flags {
				switch flag.Type {
				case FlagTypeBool:
					val, _ := cmd.Flags().GetBool(flag.Name)
					flags[flag.Name] = val
				case FlagTypeInt:
					val, _ := cmd.Flags().GetInt(flag.Name)
					flags[flag.Name] = val
				case FlagTypeStringSlice:
					val, _ := cmd.Flags().GetStringArray(flag.Name)
					flags[flag.Name] = val
				default:
					val, _ := cmd.Flags().GetString(flag.Name)
					flags[flag.Name] = val
				}
			}

			return handler(projectPath, args, flags)
		}
	}

	return cmd
}

// generateCompletionFunc creates a shell completion function based on arg metadata.
func generateCompletionFunc(args []ArgMeta) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, completedArgs []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		argIndex := len(completedArgs)
		if argIndex >= len(args) {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		arg := args[argIndex]
		if len(arg.Completions) > 0 {
			var matches []string
			for _, c := range arg.Completions {
				if strings.HasPrefix(c, toComplete) {
					matches = append(matches, c)
				}
			}
			return matches, cobra.ShellCompDirectiveNoFileComp
		}

		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

// GetCommandMeta returns the metadata for a command.
func GetCommandMeta(name string) (Meta, bool) {
	meta, ok := Registry[name]
	return meta, ok
}

// ResolveCommandID resolves a CLI command path to a registry command ID.
// Example: "config set" -> "config_set"
func ResolveCommandID(path string) (string, bool) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", false
	}

	if _, ok := Registry[trimmed]; ok {
		return trimmed, true
	}

	underscored := strings.ReplaceAll(trimmed, " ", "_")
	if _, ok := Registry[underscored]; ok {
		return underscored, true
	}

	return "", false
}
