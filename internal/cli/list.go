package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/TotoroFxx/claudia-backup/internal/commands"
	"github.com/TotoroFxx/claudia-backup/internal/slash"
	"github.com/TotoroFxx/claudia-backup/internal/ui"
)

var listScopeFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: commands.Registry["list"].Description,
	Long:  commands.Registry["list"].LongDesc,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		// Handle --pipe/--no-pipe flags
		if pipeFlag, _ := cmd.Flags().GetBool("pipe"); pipeFlag {
			t := true
			SetPipeFormat(&t)
		} else if noPipeFlag, _ := cmd.Flags().GetBool("no-pipe"); noPipeFlag {
			f := false
			SetPipeFormat(&f)
		}

		scope, err := parseListScope(listScopeFlag)
		if err != nil {
			return handleErrorMsg(ErrInvalidScope, err.Error(),
				"Valid scopes: project, user, default")
		}

		cmds, warnings := slash.List(getProjectPath())
		if scope != "" {
			filtered := cmds[:0]
			for _, c := range cmds {
				if c.Scope == scope {
					filtered = append(filtered, c)
				}
			}
			cmds = filtered
		}

		elapsed := time.Since(start).Milliseconds()

		if isJSONOutput() {
			outputSuccessWithWarnings(map[string]interface{}{
				"commands": cmds,
			}, envelopeWarnings(warnings), &Meta{Count: len(cmds), QueryTimeMs: elapsed})
			return nil
		}

		printWarnings(warnings)

		if ShouldUsePipeFormat() {
			pipeItems := make([]PipeableItem, 0, len(cmds))
			for i, c := range cmds {
				desc := ""
				if c.Description != nil {
					desc = *c.Description
				}
				pipeItems = append(pipeItems, PipeableItem{
					Num:      i + 1,
					ID:       c.ID,
					Content:  TruncateContent(c.FullCommand+" "+desc, 60),
					Location: string(c.Scope),
				})
			}
			WritePipeableList(os.Stdout, pipeItems)
			return nil
		}

		if len(cmds) == 0 {
			fmt.Println(ui.Info("No commands found"))
			if getProjectPath() == "" && scope == slash.ScopeProject {
				fmt.Println(ui.Hint("Set a project with --project or config 'project_path' to see project commands"))
			}
			return nil
		}

		fmt.Printf("%s %s\n", ui.Header("Slash commands"), ui.Hint(ui.Count(len(cmds), "command", "commands")))
		printCommandGroup(cmds, slash.ScopeDefault, "Built-in")
		printCommandGroup(cmds, slash.ScopeProject, "Project")
		printCommandGroup(cmds, slash.ScopeUser, "User")
		return nil
	},
}

// parseListScope validates the --scope filter. Empty means no filter.
func parseListScope(raw string) (slash.Scope, error) {
	switch slash.Scope(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return "", nil
	case slash.ScopeProject:
		return slash.ScopeProject, nil
	case slash.ScopeUser:
		return slash.ScopeUser, nil
	case slash.ScopeDefault:
		return slash.ScopeDefault, nil
	default:
		return "", fmt.Errorf("invalid scope: %s", raw)
	}
}

// printCommandGroup prints the commands of one scope under a heading.
func printCommandGroup(cmds []slash.Command, scope slash.Scope, heading string) {
	var group []slash.Command
	for _, c := range cmds {
		if c.Scope == scope {
			group = append(group, c)
		}
	}
	if len(group) == 0 {
		return
	}

	nameWidth := 0
	for _, c := range group {
		if len(c.FullCommand) > nameWidth {
			nameWidth = len(c.FullCommand)
		}
	}

	fmt.Println()
	fmt.Printf("%s %s\n", ui.Header(heading), ui.Hint(ui.Count(len(group), "command", "commands")))
	for _, c := range group {
		desc := ""
		if c.Description != nil {
			desc = *c.Description
		}
		line := fmt.Sprintf("  %-*s  %s", nameWidth, c.FullCommand, desc)
		if badges := commandBadges(c); badges != "" {
			line += "  " + ui.Muted.Render(badges)
		}
		fmt.Println(strings.TrimRight(line, " "))
	}
}

// commandBadges summarizes the markers detected in a command body.
func commandBadges(c slash.Command) string {
	var badges []string
	if c.AcceptsArguments {
		badges = append(badges, "$ARGS")
	}
	if c.HasBashCommands {
		badges = append(badges, "!sh")
	}
	if c.HasFileReferences {
		badges = append(badges, "@file")
	}
	return strings.Join(badges, " ")
}

func init() {
	listCmd.Flags().StringVar(&listScopeFlag, "scope", "", "Filter by scope (project, user, default)")
	listCmd.Flags().Bool("pipe", false, "Force pipe-friendly output format")
	listCmd.Flags().Bool("no-pipe", false, "Force human-readable output format")

	rootCmd.AddCommand(listCmd)
}
